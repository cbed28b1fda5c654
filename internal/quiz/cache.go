package quiz

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache stores generated question sets keyed by topic and difficulty.
// A miss is reported as (nil, false, nil).
type Cache interface {
	Get(ctx context.Context, topic string, d Difficulty) ([]Question, bool, error)
	Set(ctx context.Context, topic string, d Difficulty, qs []Question) error
}

// RedisCache is a Cache backed by Redis string keys with a TTL.
type RedisCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisCache creates a RedisCache. A non-positive ttl keeps entries
// until evicted.
func NewRedisCache(rdb *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{rdb: rdb, ttl: ttl}
}

// CacheKey is the Redis key for a topic and difficulty.
func CacheKey(topic string, d Difficulty) string {
	return fmt.Sprintf("proteinlab:quiz:%s:%s", d, normalize(topic))
}

func (c *RedisCache) Get(ctx context.Context, topic string, d Difficulty) ([]Question, bool, error) {
	raw, err := c.rdb.Get(ctx, CacheKey(topic, d)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get cached quiz: %w", err)
	}
	var qs []Question
	if err := json.Unmarshal(raw, &qs); err != nil {
		return nil, false, fmt.Errorf("decode cached quiz: %w", err)
	}
	return qs, true, nil
}

func (c *RedisCache) Set(ctx context.Context, topic string, d Difficulty, qs []Question) error {
	raw, err := json.Marshal(qs)
	if err != nil {
		return fmt.Errorf("encode quiz: %w", err)
	}
	ttl := c.ttl
	if ttl < 0 {
		ttl = 0
	}
	if err := c.rdb.Set(ctx, CacheKey(topic, d), raw, ttl).Err(); err != nil {
		return fmt.Errorf("set cached quiz: %w", err)
	}
	return nil
}
