package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const blacklistPrefix = "token:blacklist:jti:"

// TokenBlacklist revoca tokens JWT antes de su expiración (logout).
// La entrada vive en Redis solo el tiempo que le quedaba al token (TTL).
type TokenBlacklist struct {
	client *redis.Client
}

// NewTokenBlacklist construye la blacklist sobre un cliente Redis existente.
func NewTokenBlacklist(client *redis.Client) *TokenBlacklist {
	return &TokenBlacklist{client: client}
}

// Add registra el jti del token como revocado con el TTL restante del token.
func (b *TokenBlacklist) Add(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil // token ya vencido, nada que revocar
	}
	if err := b.client.Set(ctx, blacklistPrefix+jti, "1", ttl).Err(); err != nil {
		return fmt.Errorf("blacklist token: %w", err)
	}
	return nil
}

// IsBlacklisted indica si el jti está revocado.
func (b *TokenBlacklist) IsBlacklisted(ctx context.Context, jti string) (bool, error) {
	exists, err := b.client.Exists(ctx, blacklistPrefix+jti).Result()
	if err != nil {
		return false, fmt.Errorf("check blacklist: %w", err)
	}
	return exists > 0, nil
}
