package infrastructure

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"portfolio-server/internal/config"

	"github.com/redis/go-redis/v9"
)

// RedisCache stores JSON values in Redis. With no address configured, or when
// the server does not answer at start-up, every call is a no-op miss.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration

	warnedUnavailable atomic.Bool
}

func NewRedisCache(ctx context.Context, cfg config.CacheConfig) *RedisCache {
	if cfg.RedisAddr == "" {
		slog.Info("Redis not configured, profile cache disabled")
		return &RedisCache{ttl: cfg.TTL}
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		slog.Warn("Redis unavailable, bypassing cache", "addr", cfg.RedisAddr, "error", err)
		_ = client.Close()
		return &RedisCache{ttl: cfg.TTL}
	}
	return &RedisCache{client: client, ttl: cfg.TTL}
}

func (r *RedisCache) Enabled() bool {
	return r != nil && r.client != nil
}

func (r *RedisCache) warnUnavailableOnce(err error) {
	if r.warnedUnavailable.CompareAndSwap(false, true) {
		slog.Warn("Redis unavailable, bypassing cache", "error", err)
	}
}

func (r *RedisCache) GetJSON(ctx context.Context, key string, out any) (bool, error) {
	if !r.Enabled() {
		return false, nil
	}
	b, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		r.warnUnavailableOnce(err)
		return false, err
	}
	if len(b) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false, err
	}
	return true, nil
}

func (r *RedisCache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	if !r.Enabled() {
		return nil
	}
	if ttl <= 0 {
		ttl = r.ttl
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, key, b, ttl).Err(); err != nil {
		r.warnUnavailableOnce(err)
		return err
	}
	return nil
}

// DeleteByPattern drops matching keys, used by the seeder after a write.
func (r *RedisCache) DeleteByPattern(ctx context.Context, pattern string) error {
	if !r.Enabled() {
		return nil
	}
	iter := r.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := r.client.Del(ctx, iter.Val()).Err(); err != nil {
			slog.Warn("Redis delete failed", "key", iter.Val(), "error", err)
		}
	}
	return iter.Err()
}

func (r *RedisCache) Close() error {
	if !r.Enabled() {
		return nil
	}
	return r.client.Close()
}
