package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Mbewe2000/Metrilabs-metribooks/internal/application/report"
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/infrastructure/config"
)

const generationPrefix = "report:gen:"

// RedisSnapshotCache implements the report snapshot cache on Redis.
// Every operation is best-effort: Redis being down degrades to cache
// misses, never to report errors.
type RedisSnapshotCache struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedisSnapshotCache connects to Redis and returns the snapshot cache
func NewRedisSnapshotCache(cfg config.RedisConfig, logger *zap.Logger) (*RedisSnapshotCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisSnapshotCache{client: client, logger: logger}, nil
}

// NewRedisSnapshotCacheWithClient wraps an existing client
func NewRedisSnapshotCacheWithClient(client *redis.Client, logger *zap.Logger) *RedisSnapshotCache {
	return &RedisSnapshotCache{client: client, logger: logger}
}

// Get returns a cached payload and whether it was present
func (c *RedisSnapshotCache) Get(ctx context.Context, key string) ([]byte, bool) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("Report cache read failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	return payload, true
}

// Set stores a payload with a TTL
func (c *RedisSnapshotCache) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) {
	if err := c.client.Set(ctx, key, payload, ttl).Err(); err != nil {
		c.logger.Warn("Report cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// Generation returns the owner's current invalidation generation.
// A missing counter reads as zero; a Redis failure also reads as zero,
// which only risks serving nothing (the payload keys miss too).
func (c *RedisSnapshotCache) Generation(ctx context.Context, ownerID uuid.UUID) int64 {
	gen, err := c.client.Get(ctx, generationPrefix+ownerID.String()).Int64()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("Report generation read failed", zap.String("owner_id", ownerID.String()), zap.Error(err))
		}
		return 0
	}
	return gen
}

// Invalidate bumps the owner's generation counter, orphaning all of
// their cached snapshots
func (c *RedisSnapshotCache) Invalidate(ctx context.Context, ownerID uuid.UUID) {
	if err := c.client.Incr(ctx, generationPrefix+ownerID.String()).Err(); err != nil {
		c.logger.Warn("Report cache invalidation failed", zap.String("owner_id", ownerID.String()), zap.Error(err))
	}
}

// Close closes the Redis client
func (c *RedisSnapshotCache) Close() error {
	return c.client.Close()
}

var (
	_ report.SnapshotCache = (*RedisSnapshotCache)(nil)
	_ report.Invalidator   = (*RedisSnapshotCache)(nil)
)
