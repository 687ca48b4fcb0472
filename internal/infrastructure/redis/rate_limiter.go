package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const rateLimitPrefix = "ratelimit:login:"

// LoginRateLimiter limita intentos de login por clave (IP) con ventana fija:
// INCR por intento y EXPIRE al abrir la ventana.
type LoginRateLimiter struct {
	client *redis.Client
	max    int
	window time.Duration
}

// NewLoginRateLimiter construye el limitador. max intentos por window.
func NewLoginRateLimiter(client *redis.Client, max int, window time.Duration) *LoginRateLimiter {
	return &LoginRateLimiter{client: client, max: max, window: window}
}

// Allow registra un intento para la clave y devuelve false si la ventana
// actual ya agotó el cupo.
func (l *LoginRateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := rateLimitPrefix + key

	count, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, fmt.Errorf("rate limit incr: %w", err)
	}
	if count == 1 {
		// Primera petición de la ventana: fijar expiración
		if err := l.client.Expire(ctx, redisKey, l.window).Err(); err != nil {
			return false, fmt.Errorf("rate limit expire: %w", err)
		}
	}
	return count <= int64(l.max), nil
}
