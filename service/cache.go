// file: service/cache.go

package service

import (
	"context"
	"fmt"
	"go-social-api/logger"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// ICacheClient defines the subset of the Redis client the login limiter uses.
// *redis.Client satisfies it.
type ICacheClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// LoginLimiter throttles repeated failed logins for one username.
type LoginLimiter interface {
	Allow(ctx context.Context, username string) bool
	RecordFailure(ctx context.Context, username string)
	Reset(ctx context.Context, username string)
}

// NoopLoginLimiter never blocks. It is used when Redis is disabled.
type NoopLoginLimiter struct{}

func (NoopLoginLimiter) Allow(context.Context, string) bool   { return true }
func (NoopLoginLimiter) RecordFailure(context.Context, string) {}
func (NoopLoginLimiter) Reset(context.Context, string)         {}

// RedisLoginLimiter counts failed logins per username in a fixed window.
// Redis errors never block a login.
type RedisLoginLimiter struct {
	cache       ICacheClient
	maxAttempts int
	window      time.Duration
}

func NewRedisLoginLimiter(cache ICacheClient, maxAttempts int, window time.Duration) *RedisLoginLimiter {
	return &RedisLoginLimiter{cache: cache, maxAttempts: maxAttempts, window: window}
}

func attemptsKey(username string) string {
	return fmt.Sprintf("login_attempts:%s", username)
}

func (l *RedisLoginLimiter) Allow(ctx context.Context, username string) bool {
	if l.maxAttempts <= 0 {
		return true
	}
	n, err := l.cache.Get(ctx, attemptsKey(username)).Int()
	if err != nil {
		if err != redis.Nil {
			logger.Log.WithError(err).Warn("Login limiter unavailable, allowing attempt")
		}
		return true
	}
	return n < l.maxAttempts
}

func (l *RedisLoginLimiter) RecordFailure(ctx context.Context, username string) {
	key := attemptsKey(username)
	n, err := l.cache.Incr(ctx, key).Result()
	if err != nil {
		logger.Log.WithError(err).Warn("Failed to record login failure")
		return
	}
	if n == 1 {
		if err := l.cache.Expire(ctx, key, l.window).Err(); err != nil {
			logger.Log.WithError(err).Warn("Failed to set login attempt window")
		}
	}
	logger.Log.WithFields(logrus.Fields{
		"username": username,
		"attempts": n,
	}).Info("Failed login recorded")
}

func (l *RedisLoginLimiter) Reset(ctx context.Context, username string) {
	if err := l.cache.Del(ctx, attemptsKey(username)).Err(); err != nil {
		logger.Log.WithError(err).Warn("Failed to reset login attempts")
	}
}
