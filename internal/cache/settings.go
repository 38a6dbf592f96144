package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/localnerve/propertyhub/internal/logger"
	"github.com/localnerve/propertyhub/internal/models"
	"go.uber.org/zap"
)

// SettingsKey is the redis key holding the cached settings row
const SettingsKey = "propertyhub:settings"

// NewRedisClient connects to REDIS_URL, which may be a redis:// URL or a bare host:port
func NewRedisClient(redisURL string) (*redis.Client, error) {
	if strings.Contains(redisURL, "://") {
		opts, err := redis.ParseURL(redisURL)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
		}
		return redis.NewClient(opts), nil
	}
	return redis.NewClient(&redis.Options{Addr: redisURL}), nil
}

// RedisSettings caches the settings row as JSON in redis.
// Cache failures are logged and treated as misses.
type RedisSettings struct {
	Client *redis.Client
	TTL    time.Duration
}

// NewRedisSettings creates a settings cache over client
func NewRedisSettings(client *redis.Client, ttl time.Duration) *RedisSettings {
	return &RedisSettings{Client: client, TTL: ttl}
}

// Get returns the cached settings, if present
func (r *RedisSettings) Get(ctx context.Context) (*models.Settings, bool) {
	raw, err := r.Client.Get(ctx, SettingsKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.GetLogger().Warn("settings cache get failed", zap.Error(err))
		}
		return nil, false
	}

	var s models.Settings
	if err := json.Unmarshal(raw, &s); err != nil {
		logger.GetLogger().Warn("settings cache entry unreadable", zap.Error(err))
		return nil, false
	}
	return &s, true
}

// Set replaces the cached settings for TTL. When the write fails the entry is
// dropped so an older value cannot outlive it.
func (r *RedisSettings) Set(ctx context.Context, s models.Settings) {
	raw, err := json.Marshal(s)
	if err == nil {
		err = r.Client.Set(ctx, SettingsKey, raw, r.TTL).Err()
	}
	if err != nil {
		logger.GetLogger().Warn("settings cache set failed", zap.Error(err))
		r.Invalidate(ctx)
	}
}

// Fill stores settings read from the database only when no entry exists, so a
// slow reader never overwrites a value written by a later update
func (r *RedisSettings) Fill(ctx context.Context, s models.Settings) {
	raw, err := json.Marshal(s)
	if err != nil {
		logger.GetLogger().Warn("settings cache encode failed", zap.Error(err))
		return
	}
	if err := r.Client.SetNX(ctx, SettingsKey, raw, r.TTL).Err(); err != nil {
		logger.GetLogger().Warn("settings cache fill failed", zap.Error(err))
	}
}

// Invalidate drops the cached settings
func (r *RedisSettings) Invalidate(ctx context.Context) {
	if err := r.Client.Del(ctx, SettingsKey).Err(); err != nil {
		logger.GetLogger().Warn("settings cache invalidate failed", zap.Error(err))
	}
}

// Ping checks the redis connection
func (r *RedisSettings) Ping(ctx context.Context) error {
	return r.Client.Ping(ctx).Err()
}
