package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// TokenStore keeps issued token ids so that tokens can be revoked before expiry.
// Token kinds are "access" and "refresh".
type TokenStore interface {
	Store(ctx context.Context, kind string, userID uuid.UUID, tokenID string, ttl time.Duration) error
	Exists(ctx context.Context, kind string, userID uuid.UUID, tokenID string) (bool, error)
	// Consume deletes the token and reports whether this call removed it.
	// Only one of several concurrent callers can get true.
	Consume(ctx context.Context, kind string, userID uuid.UUID, tokenID string) (bool, error)
	Revoke(ctx context.Context, kind string, userID uuid.UUID, tokenID string) error
	RevokeAll(ctx context.Context, kind string, userID uuid.UUID) error
}

const tokenScanBatch = 100

type redisTokenStore struct {
	client *redis.Client
}

func NewRedisTokenStore(client *redis.Client) TokenStore {
	return &redisTokenStore{client: client}
}

func tokenKey(kind string, userID uuid.UUID, tokenID string) string {
	return fmt.Sprintf("%s_token:%s:%s", kind, userID.String(), tokenID)
}

func (s *redisTokenStore) Store(ctx context.Context, kind string, userID uuid.UUID, tokenID string, ttl time.Duration) error {
	return s.client.Set(ctx, tokenKey(kind, userID, tokenID), "valid", ttl).Err()
}

func (s *redisTokenStore) Exists(ctx context.Context, kind string, userID uuid.UUID, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, tokenKey(kind, userID, tokenID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *redisTokenStore) Consume(ctx context.Context, kind string, userID uuid.UUID, tokenID string) (bool, error) {
	n, err := s.client.Del(ctx, tokenKey(kind, userID, tokenID)).Result()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (s *redisTokenStore) Revoke(ctx context.Context, kind string, userID uuid.UUID, tokenID string) error {
	return s.client.Del(ctx, tokenKey(kind, userID, tokenID)).Err()
}

// RevokeAll walks the user's keys with SCAN rather than KEYS to avoid blocking Redis.
func (s *redisTokenStore) RevokeAll(ctx context.Context, kind string, userID uuid.UUID) error {
	iter := s.client.Scan(ctx, 0, tokenKey(kind, userID, "*"), tokenScanBatch).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return s.client.Del(ctx, keys...).Err()
}
