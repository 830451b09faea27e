package utils

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Cache is a best-effort JSON cache over redis. A nil *Cache is valid and
// disables caching entirely; redis failures are logged and treated as
// misses, never surfaced to the request.
type Cache struct {
	client *redis.Client
	logger *zap.Logger
}

// NewCache returns nil when addr is empty, which disables caching.
func NewCache(addr, password string, logger *zap.Logger) *Cache {
	if addr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})
	return &Cache{client: client, logger: logger}
}

func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}

// Get reports whether the key was found and decoded into dest.
func (c *Cache) Get(ctx context.Context, key string, dest interface{}) bool {
	if c == nil {
		return false
	}
	data, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false
	}
	if err != nil {
		c.logger.Warn("cache get failed", zap.String("key", key), zap.Error(err))
		return false
	}
	if err := json.Unmarshal([]byte(data), dest); err != nil {
		c.logger.Warn("cache entry corrupt", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (c *Cache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if c == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("cache marshal failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		c.logger.Warn("cache set failed", zap.String("key", key), zap.Error(err))
	}
}

func (c *Cache) Delete(ctx context.Context, keys ...string) {
	if c == nil || len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.logger.Warn("cache delete failed", zap.Error(err))
	}
}

// Version returns the current version of a key namespace. Writers bump it so
// previously cached query results fall out of addressing.
func (c *Cache) Version(ctx context.Context, namespace string) int64 {
	if c == nil {
		return 0
	}
	v, err := c.client.Get(ctx, namespace+":version").Int64()
	if err != nil && err != redis.Nil {
		c.logger.Warn("cache version read failed", zap.String("namespace", namespace), zap.Error(err))
	}
	return v
}

func (c *Cache) BumpVersion(ctx context.Context, namespace string) {
	if c == nil {
		return
	}
	if err := c.client.Incr(ctx, namespace+":version").Err(); err != nil {
		c.logger.Warn("cache version bump failed", zap.String("namespace", namespace), zap.Error(err))
	}
}

// QueryKey builds a stable cache key from query parameters: parameters are
// sorted, joined, and hashed so equivalent queries share an entry.
func QueryKey(prefix string, version int64, params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var builder strings.Builder
	for i, k := range keys {
		if i > 0 {
			builder.WriteString(":")
		}
		builder.WriteString(k)
		builder.WriteString("=")
		builder.WriteString(params[k])
	}

	hash := md5.Sum([]byte(builder.String()))
	return fmt.Sprintf("%s:v%d:%s", prefix, version, hex.EncodeToString(hash[:]))
}
