package locale

import (
	"context"
	"strconv"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-codex/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-codex/internal/redis"
)

const (
	// Key pattern: locale:en:{hash}
	keyPrefix  = "locale:en:"
	defaultTTL = 24 * time.Hour
)

// RedisConfig holds the configuration for the Redis cache
type RedisConfig struct {
	Client redisclient.Client
	// TTL of cached entries; 0 uses a day
	TTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.TTL < 0 {
		return errors.InvalidArgument("ttl must not be negative")
	}
	return nil
}

type redisCache struct {
	client redisclient.Client
	ttl    time.Duration
}

// NewRedisCache creates a Redis-backed locale cache
func NewRedisCache(cfg *RedisConfig) (Cache, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = defaultTTL
	}

	return &redisCache{client: cfg.Client, ttl: ttl}, nil
}

// Ensure redisCache implements Cache
var _ Cache = (*redisCache)(nil)

func (c *redisCache) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	text, err := c.client.Get(ctx, buildKey(input.Hash)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("locale entry %d not cached", input.Hash)
		}
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read locale cache")
	}

	return &GetOutput{Entry: &Entry{Hash: input.Hash, Text: text}}, nil
}

// Put stores every entry in one pipeline
func (c *redisCache) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	if len(input.Entries) == 0 {
		return &PutOutput{}, nil
	}

	_, err := c.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, entry := range input.Entries {
			pipe.Set(ctx, buildKey(entry.Hash), entry.Text, c.ttl)
		}
		return nil
	})
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to write locale cache")
	}

	return &PutOutput{}, nil
}

func buildKey(hash uint64) string {
	return keyPrefix + strconv.FormatUint(hash, 10)
}
