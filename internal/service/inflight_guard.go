package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// ErrActionInFlight is returned when an identical action has not resolved yet.
var ErrActionInFlight = errors.New("an identical action is already in flight")

// releaseScript deletes the guard key only if it still holds our token, so a
// slow holder whose key already expired cannot release someone else's guard.
var releaseScript = redis.NewScript(`
	if redis.call('GET', KEYS[1]) == ARGV[1] then
		return redis.call('DEL', KEYS[1])
	end
	return 0
`)

const (
	// Redis key prefix for in-flight markers
	RedisInflightKeyPrefix = "inflight:"

	// Timeout for the release round-trip, detached from the request context
	inflightReleaseTimeout = 5 * time.Second
)

// InflightGuard rejects duplicate submissions of the same action on the same
// target until the first one resolves.
type InflightGuard interface {
	// Acquire marks (action, target) as in flight. The returned release func
	// must be called once the action resolves.
	Acquire(ctx context.Context, action string, target ...string) (release func(), err error)
}

type redisInflightGuard struct {
	redisClient *redis.Client
	ttl         time.Duration
	log         *logrus.Logger
}

// NewRedisInflightGuard creates a guard backed by SET NX with a TTL. The TTL
// bounds how long a crashed holder can block retries.
func NewRedisInflightGuard(redisClient *redis.Client, ttl time.Duration, log *logrus.Logger) InflightGuard {
	return &redisInflightGuard{
		redisClient: redisClient,
		ttl:         ttl,
		log:         log,
	}
}

func (g *redisInflightGuard) Acquire(ctx context.Context, action string, target ...string) (func(), error) {
	key := inflightKey(action, target...)
	token := uuid.NewString()

	ok, err := g.redisClient.SetNX(ctx, key, token, g.ttl).Result()
	if err != nil {
		g.log.Warnf("Failed to acquire in-flight guard %s: %+v", key, err)
		return nil, fmt.Errorf("acquire in-flight guard %s: %w", key, err)
	}
	if !ok {
		return nil, ErrActionInFlight
	}

	release := func() {
		releaseCtx, cancel := context.WithTimeout(context.Background(), inflightReleaseTimeout)
		defer cancel()
		if err := releaseScript.Run(releaseCtx, g.redisClient, []string{key}, token).Err(); err != nil {
			// The TTL will clear it
			g.log.Warnf("Failed to release in-flight guard %s: %+v", key, err)
		}
	}
	return release, nil
}

func inflightKey(action string, target ...string) string {
	return RedisInflightKeyPrefix + action + ":" + strings.Join(target, ":")
}
