package cache

import (
	"log/slog"
	"time"
)

// New selects the cache backend. With a Redis URL configured it returns
// a RedisCache; when the connection fails the server still has to come
// up, so it logs the failure and falls back to the memory backend.
func New(redisURL, prefix string, defaultTTL time.Duration) Cache {
	if redisURL != "" {
		c, err := NewRedisCache(redisURL, prefix, defaultTTL)
		if err == nil {
			slog.Info("using redis cache", "prefix", prefix)
			return c
		}
		slog.Warn("redis cache unavailable, falling back to memory", "error", err)
	}
	return NewMemoryCache(defaultTTL)
}
