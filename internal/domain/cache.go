package domain

import (
	"context"
	"time"
)

// CacheError represents an error originating from the cache.
type CacheError string

func (e CacheError) Error() string {
	return string(e)
}

// ErrCacheMiss is returned when a key is not found in the cache.
const ErrCacheMiss = CacheError("cache: key not found")

// Cache is the hash-based port the results cache stores reports in.
type Cache interface {
	// Delete is a no-op for a missing key.
	Delete(ctx context.Context, key string) error

	Ping(ctx context.Context) error

	// HGet returns ErrCacheMiss if the key or field is missing.
	HGet(ctx context.Context, key, field string) (string, error)

	HSet(ctx context.Context, key string, field string, value string) error

	Expire(ctx context.Context, key string, expiration time.Duration) error
}
