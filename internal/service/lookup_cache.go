package service

import (
	"context"
	"errors"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Cache keys of the lookup lists served to form dropdowns.
const (
	LookupKeySpecialties = "lookup:specialties"
	LookupKeyStatuses    = "lookup:statuses"
)

// LookupCache stores small, rarely changing lists as JSON.
type LookupCache interface {
	// Get decodes the cached value into dest and reports whether it was present.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error
	Invalidate(ctx context.Context, keys ...string) error
}

type redisLookupCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *logrus.Logger
}

func NewRedisLookupCache(client *redis.Client, ttl time.Duration, log *logrus.Logger) LookupCache {
	return &redisLookupCache{client: client, ttl: ttl, log: log}
}

func (c *redisLookupCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		// A corrupt entry is treated as a miss and dropped.
		c.log.Warnf("Discarding undecodable cache entry %s: %+v", key, err)
		c.client.Del(ctx, key)
		return false, nil
	}
	return true, nil
}

func (c *redisLookupCache) Set(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, raw, c.ttl).Err()
}

func (c *redisLookupCache) Invalidate(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}
