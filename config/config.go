package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	DB       DBConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Upstream UpstreamConfig
	Payment  PaymentConfig
	Session  SessionConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// JWTConfig only carries what is needed to verify tokens issued by the
// auth provider. AccessExpiry is used when minting tokens in tests and tools.
type JWTConfig struct {
	Secret       string
	AccessExpiry time.Duration
}

// UpstreamConfig points at the doctors service.
type UpstreamConfig struct {
	BaseURL string
	Timeout time.Duration
}

type PaymentConfig struct {
	BaseURL string
	Timeout time.Duration
}

// SessionConfig controls directory view lifetimes and the in-flight guard.
type SessionConfig struct {
	IdleTTL     time.Duration
	InflightTTL time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// Running from plain environment variables is fine.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	config := &Config{
		App: AppConfig{
			Port: stringOr("APP_PORT", "8080"),
			Env:  stringOr("APP_ENV", "development"),
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:       viper.GetString("JWT_SECRET"),
			AccessExpiry: durationOr("JWT_ACCESS_EXPIRY", 15*time.Minute),
		},
		Upstream: UpstreamConfig{
			BaseURL: viper.GetString("UPSTREAM_BASE_URL"),
			Timeout: durationOr("UPSTREAM_TIMEOUT", 10*time.Second),
		},
		Payment: PaymentConfig{
			BaseURL: stringOr("PAYMENT_BASE_URL", viper.GetString("UPSTREAM_BASE_URL")),
			Timeout: durationOr("PAYMENT_TIMEOUT", 15*time.Second),
		},
		Session: SessionConfig{
			IdleTTL:     durationOr("SESSION_IDLE_TTL", 30*time.Minute),
			InflightTTL: durationOr("INFLIGHT_TTL", 30*time.Second),
		},
	}

	if config.Upstream.BaseURL == "" {
		return nil, errors.New("UPSTREAM_BASE_URL is required")
	}

	return config, nil
}

func stringOr(key, fallback string) string {
	if v := viper.GetString(key); v != "" {
		return v
	}
	return fallback
}

// durationOr mirrors the JWT expiry handling: unparsable values fall back.
func durationOr(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(viper.GetString(key))
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
