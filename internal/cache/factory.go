// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package cache

import (
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// Backend identifies a cache implementation.
type Backend string

// Supported backends.
const (
	CacheBackendMemory Backend = "memory"
	CacheBackendRedis  Backend = "redis"
)

// CacheConfig holds configuration for cache creation.
type CacheConfig struct {
	// Type is the cache backend type: "memory" or "redis"
	Type string

	// RedisURL is the Redis connection URL (only for redis type)
	// Example: redis://localhost:6379/0
	RedisURL string

	// Prefix is the key prefix for Redis (only for redis type)
	Prefix string

	DefaultTTL time.Duration

	// MaxSize is the maximum number of entries for memory cache (0 = unlimited)
	MaxSize int

	CleanupInterval time.Duration

	// FallbackToMemory uses a memory cache when Redis is unreachable.
	FallbackToMemory bool
}

// DefaultCacheConfig returns default cache configuration.
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{
		Type:             string(CacheBackendMemory),
		DefaultTTL:       time.Hour,
		MaxSize:          256,
		CleanupInterval:  time.Minute,
		FallbackToMemory: true,
	}
}

// Result is a created cache together with how it was created.
type Result struct {
	Cache       Cacher
	BackendType Backend
	IsFallback  bool
}

// NewCacheWithInfo creates a cache for cfg and reports the backend in use.
func NewCacheWithInfo(cfg CacheConfig) (*Result, error) {
	if cfg.Type == string(CacheBackendRedis) && cfg.RedisURL != "" {
		redisCache, err := NewRedisCache(cfg.RedisURL, cfg.Prefix, cfg.DefaultTTL)
		if err == nil {
			return &Result{Cache: redisCache, BackendType: CacheBackendRedis}, nil
		}
		if !cfg.FallbackToMemory {
			return nil, fmt.Errorf("connecting to redis at %s: %w", maskRedisURL(cfg.RedisURL), err)
		}
		slog.Warn("redis unavailable, falling back to memory cache",
			"url", maskRedisURL(cfg.RedisURL), "error", err)
		return &Result{Cache: newMemoryFromConfig(cfg), BackendType: CacheBackendMemory, IsFallback: true}, nil
	}

	return &Result{Cache: newMemoryFromConfig(cfg), BackendType: CacheBackendMemory}, nil
}

// NewCache creates a cache based on the provided configuration.
func NewCache(cfg CacheConfig) (Cacher, error) {
	res, err := NewCacheWithInfo(cfg)
	if err != nil {
		return nil, err
	}
	return res.Cache, nil
}

func newMemoryFromConfig(cfg CacheConfig) *MemoryCache {
	return NewMemoryCache(MemoryCacheOptions{
		DefaultTTL:      cfg.DefaultTTL,
		MaxSize:         cfg.MaxSize,
		CleanupInterval: cfg.CleanupInterval,
	})
}

// maskRedisURL hides credentials in a Redis URL for logging.
func maskRedisURL(url string) string {
	scheme, rest, ok := strings.Cut(url, "://")
	if !ok {
		return url
	}
	at := strings.LastIndex(rest, "@")
	if at < 0 {
		return url
	}
	return scheme + "://***" + rest[at:]
}
