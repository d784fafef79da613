package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"doctor-directory-bff/pkg/jwt"
	"doctor-directory-bff/pkg/response"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

type contextKey string

const (
	UserIDKey    contextKey = "user_id"
	UserEmailKey contextKey = "user_email"
	TokenIDKey   contextKey = "token_id"
)

// ErrTokenCheckUnavailable means the revocation store could not be reached,
// so the token could be neither accepted nor rejected.
var ErrTokenCheckUnavailable = errors.New("Failed to validate token")

type AuthMiddleware struct {
	jwtService  *jwt.JWTService
	redisClient *redis.Client
	log         *logrus.Logger
}

func NewAuthMiddleware(jwtService *jwt.JWTService, redisClient *redis.Client, log *logrus.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:  jwtService,
		redisClient: redisClient,
		log:         log,
	}
}

// Authenticate rejects requests without a valid, unrevoked bearer token.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Authorization header is required")
			return
		}

		claims, err := m.resolve(r.Context(), authHeader)
		if errors.Is(err, ErrTokenCheckUnavailable) {
			response.ServiceUnavailable(w, err.Error())
			return
		}
		if err != nil {
			response.Unauthorized(w, err.Error())
			return
		}

		next.ServeHTTP(w, r.WithContext(withClaims(r.Context(), claims)))
	})
}

// Identify attaches the user when a valid token is present and lets anonymous
// requests through untouched. Usecases decide what needs a user. A token that
// cannot be checked fails the request rather than downgrading it.
func (m *AuthMiddleware) Identify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		claims, err := m.resolve(r.Context(), authHeader)
		if errors.Is(err, ErrTokenCheckUnavailable) {
			response.ServiceUnavailable(w, err.Error())
			return
		}
		if err != nil {
			m.log.Debugf("Treating request as anonymous: %v", err)
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(withClaims(r.Context(), claims)))
	})
}

func (m *AuthMiddleware) resolve(ctx context.Context, authHeader string) (*jwt.Claims, error) {
	// Extract token from "Bearer <token>"
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, errors.New("Invalid authorization header format")
	}

	claims, err := m.jwtService.ValidateToken(parts[1])
	if err != nil {
		return nil, errors.New("Invalid or expired token")
	}

	if claims.TokenType != jwt.AccessToken {
		return nil, errors.New("Invalid token type")
	}

	// Check if token exists in Redis (not revoked)
	tokenKey := fmt.Sprintf("access_token:%s:%s", claims.UserID.String(), claims.TokenID)
	exists, err := m.redisClient.Exists(ctx, tokenKey).Result()
	if err != nil {
		m.log.Warnf("Failed to check token revocation: %+v", err)
		return nil, ErrTokenCheckUnavailable
	}
	if exists == 0 {
		return nil, errors.New("Token has been revoked")
	}

	return claims, nil
}

func withClaims(ctx context.Context, claims *jwt.Claims) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, claims.UserID)
	ctx = context.WithValue(ctx, UserEmailKey, claims.Email)
	ctx = context.WithValue(ctx, TokenIDKey, claims.TokenID)
	return ctx
}

// WithUserEmail attaches an authenticated user's email to ctx.
func WithUserEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, UserEmailKey, email)
}

// GetUserEmailFromContext extracts user email from context. An empty email
// counts as no user.
func GetUserEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(UserEmailKey).(string)
	return email, ok && email != ""
}
