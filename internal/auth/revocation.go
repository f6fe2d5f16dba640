package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RevocationStore tracks revoked token IDs until they would have
// expired anyway.
type RevocationStore interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// NewRedisRevocationStore creates a Redis-backed revocation store.
func NewRedisRevocationStore(client *redis.Client) *RedisRevocationStore {
	return &RedisRevocationStore{client: client}
}

// RedisRevocationStore keeps revoked token IDs in Redis with a TTL
// matching the token's remaining lifetime.
type RedisRevocationStore struct {
	client *redis.Client
}

func (r *RedisRevocationStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if err := r.client.Set(ctx, revocationKey(tokenID), "1", ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (r *RedisRevocationStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	err := r.client.Get(ctx, revocationKey(tokenID)).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis get failed: %w", err)
	}
	return true, nil
}

func revocationKey(tokenID string) string {
	return fmt.Sprintf("revoked:%s", tokenID)
}

// NoopRevocationStore is used when Redis is not configured: logout
// still clears the client token but nothing is tracked server-side.
type NoopRevocationStore struct{}

func (NoopRevocationStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	return nil
}

func (NoopRevocationStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	return false, nil
}
