package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const loginWindow = time.Minute

// LoginLimiter applies a fixed-window attempt limit to login requests,
// keyed by username and client IP. It fails open: when Redis is unreachable
// the attempt is allowed rather than locking every user out.
// Key format: login:<username>:<ip>
type LoginLimiter struct {
	client *redis.Client
	max    int64
}

// NewLoginLimiter wraps the given Redis client. maxAttempts <= 0 disables
// the limiter entirely.
func NewLoginLimiter(client *redis.Client, maxAttempts int) *LoginLimiter {
	return &LoginLimiter{client: client, max: int64(maxAttempts)}
}

// Allow records one attempt and reports whether it is within the window
// budget.
func (l *LoginLimiter) Allow(ctx context.Context, username, ip string) bool {
	if l.max <= 0 || l.client == nil {
		return true
	}

	key := fmt.Sprintf("login:%s:%s", username, ip)

	pipe := l.client.TxPipeline()
	count := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, loginWindow)
	if _, err := pipe.Exec(ctx); err != nil {
		return true
	}

	return count.Val() <= l.max
}
