package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const blacklistPrefix = "blacklist:"

// TokenBlacklist records revoked token IDs in Redis with a TTL matching the
// token's remaining lifetime.
type TokenBlacklist struct {
	rdb *redis.Client
}

// NewTokenBlacklist returns nil when rdb is nil.
func NewTokenBlacklist(rdb *redis.Client) *TokenBlacklist {
	if rdb == nil {
		return nil
	}
	return &TokenBlacklist{rdb: rdb}
}

func (b *TokenBlacklist) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	return b.rdb.Set(ctx, blacklistPrefix+jti, "1", ttl).Err()
}

func (b *TokenBlacklist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := b.rdb.Exists(ctx, blacklistPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
