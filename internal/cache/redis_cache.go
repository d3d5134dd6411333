package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/cypherlabdev/odds-devig-service/internal/models"
)

// RedisCache caches devigged market results in Redis
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

// RedisCacheConfig holds Redis cache configuration
type RedisCacheConfig struct {
	Addr     string // e.g., "localhost:6379"
	Password string
	DB       int
	TTL      time.Duration // e.g., 15 * time.Minute
}

// NewRedisCache creates a new Redis cache
func NewRedisCache(config RedisCacheConfig, logger zerolog.Logger) *RedisCache {
	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	return &RedisCache{
		client: client,
		ttl:    config.TTL,
		logger: logger.With().Str("component", "redis_cache").Logger(),
	}
}

// Set caches a devig result
func (c *RedisCache) Set(ctx context.Context, result *models.DevigResult) error {
	// Create Redis key: devig:{event_id}:{market}:{book}
	key := fmt.Sprintf("devig:%s:%s:%s", result.EventID, result.Market, result.Book)

	// Serialize to JSON
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal devig result: %w", err)
	}

	// Set in Redis with TTL
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set in Redis: %w", err)
	}

	c.logger.Debug().
		Str("key", key).
		Dur("ttl", c.ttl).
		Msg("cached devig result")

	return nil
}

// Get retrieves a cached devig result
func (c *RedisCache) Get(ctx context.Context, eventID, market, book string) (*models.DevigResult, error) {
	key := fmt.Sprintf("devig:%s:%s:%s", eventID, market, book)

	// Get from Redis
	data, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, fmt.Errorf("devig result not found in cache")
	} else if err != nil {
		return nil, fmt.Errorf("failed to get from Redis: %w", err)
	}

	// Deserialize
	var result models.DevigResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal devig result: %w", err)
	}

	return &result, nil
}

// SetBatch caches multiple devig results
func (c *RedisCache) SetBatch(ctx context.Context, results []*models.DevigResult) error {
	if len(results) == 0 {
		return nil
	}

	// Use pipeline for batch operations
	pipe := c.client.Pipeline()

	for _, result := range results {
		key := fmt.Sprintf("devig:%s:%s:%s", result.EventID, result.Market, result.Book)
		data, err := json.Marshal(result)
		if err != nil {
			c.logger.Error().Err(err).Msg("failed to marshal devig result")
			continue
		}
		pipe.Set(ctx, key, data, c.ttl)
	}

	// Execute pipeline
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to execute pipeline: %w", err)
	}

	c.logger.Info().
		Int("count", len(results)).
		Msg("cached batch of devig results")

	return nil
}

// GetByEvent retrieves all cached devig results for an event
func (c *RedisCache) GetByEvent(ctx context.Context, eventID string) ([]*models.DevigResult, error) {
	pattern := fmt.Sprintf("devig:%s:*", eventID)

	// Scan for keys matching pattern
	var cursor uint64
	var keys []string

	for {
		var scanKeys []string
		var err error
		scanKeys, cursor, err = c.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to scan keys: %w", err)
		}

		keys = append(keys, scanKeys...)

		if cursor == 0 {
			break
		}
	}

	// Get all values
	results := make([]*models.DevigResult, 0, len(keys))
	for _, key := range keys {
		data, err := c.client.Get(ctx, key).Bytes()
		if err != nil {
			c.logger.Warn().Err(err).Str("key", key).Msg("failed to get key")
			continue
		}

		var result models.DevigResult
		if err := json.Unmarshal(data, &result); err != nil {
			c.logger.Warn().Err(err).Str("key", key).Msg("failed to unmarshal devig result")
			continue
		}

		results = append(results, &result)
	}

	return results, nil
}

// Ping checks Redis connection
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (c *RedisCache) Close() error {
	return c.client.Close()
}
