package auth

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// LoginLimiter throttles failed login attempts per email using a Redis
// counter with a sliding expiry window. With no Redis client configured it
// degrades to always-allow.
type LoginLimiter struct {
	client      *redis.Client
	maxAttempts int
	window      time.Duration
}

// NewLoginLimiter builds a limiter. client may be nil.
func NewLoginLimiter(client *redis.Client, maxAttempts int, window time.Duration) *LoginLimiter {
	if maxAttempts <= 0 {
		maxAttempts = 10
	}
	if window <= 0 {
		window = 5 * time.Minute
	}
	return &LoginLimiter{client: client, maxAttempts: maxAttempts, window: window}
}

// Allow reports whether another attempt for the email is permitted.
func (l *LoginLimiter) Allow(ctx context.Context, email string) bool {
	if l == nil || l.client == nil {
		return true
	}
	count, err := l.client.Get(ctx, l.key(email)).Int()
	if err != nil {
		// Treat missing key or unreachable Redis as open; login still
		// requires valid credentials either way.
		return true
	}
	return count < l.maxAttempts
}

// RecordFailure counts a failed attempt, starting the window on the first.
func (l *LoginLimiter) RecordFailure(ctx context.Context, email string) {
	if l == nil || l.client == nil {
		return
	}
	key := l.key(email)
	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return
	}
	if count == 1 {
		l.client.Expire(ctx, key, l.window)
	}
}

// Reset clears the attempt counter after a successful login.
func (l *LoginLimiter) Reset(ctx context.Context, email string) {
	if l == nil || l.client == nil {
		return
	}
	l.client.Del(ctx, l.key(email))
}

func (l *LoginLimiter) key(email string) string {
	return "auth:login_attempts:" + email
}
