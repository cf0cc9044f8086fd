package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/redis/go-redis/v9"
)

const revocationKeyPrefix = "revoked:"

// RedisRevocationStore stores a key per revoked token whose TTL is the
// token's remaining lifetime. Keys hold a SHA-256 of the token, never the
// token itself.
type RedisRevocationStore struct {
	client redis.UniversalClient
	prefix string
	now    func() time.Time
}

func NewRedisRevocationStore(client redis.UniversalClient, keyPrefix string) *RedisRevocationStore {
	return &RedisRevocationStore{client: client, prefix: keyPrefix + revocationKeyPrefix, now: time.Now}
}

func (s *RedisRevocationStore) key(token string) string {
	sum := sha256.Sum256([]byte(token))
	return s.prefix + hex.EncodeToString(sum[:])
}

func (s *RedisRevocationStore) Revoke(ctx context.Context, token string, expiresAt time.Time) error {
	ttl := expiresAt.Sub(s.now())
	if ttl <= 0 {
		return nil
	}
	return s.client.Set(ctx, s.key(token), s.now().UTC().Unix(), ttl).Err()
}

func (s *RedisRevocationStore) IsRevoked(ctx context.Context, token string) (bool, error) {
	n, err := s.client.Exists(ctx, s.key(token)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
