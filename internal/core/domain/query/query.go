// Package query defines the vocabulary of the client-side query cache: cache
// keys, entry status, and the caching policy.
package query

import (
	"context"
	"time"
)

// Status describes how current the data returned by a fetch is.
type Status string

const (
	// StatusFresh data completed a fetch within the freshness window.
	StatusFresh Status = "fresh"
	// StatusStale data is served from cache while a refetch runs (or after a
	// refetch failed).
	StatusStale Status = "stale"
	// StatusLoading means no cached data exists yet for the key.
	StatusLoading Status = "loading"
)

// FetchFunc loads the value for a cache key from the backend.
type FetchFunc func(ctx context.Context) (any, error)

// Policy holds the named knobs of the stale-while-revalidate cache.
type Policy struct {
	// FreshFor is how long a successful fetch result is served without
	// triggering a background refetch.
	FreshFor time.Duration
	// RetainFor is how long an entry with no observers is kept before
	// eviction. Longer than FreshFor so a brief remount reuses the cache.
	RetainFor time.Duration
	// RetryCount is how many automatic retries a failed fetch gets before the
	// error is surfaced.
	RetryCount int
	// ReapInterval is how often the background reaper scans for evictable
	// entries.
	ReapInterval time.Duration
}

// DefaultPolicy mirrors the panel's historical defaults: 1 minute fresh,
// 5 minutes retained, one retry.
func DefaultPolicy() Policy {
	return Policy{
		FreshFor:     time.Minute,
		RetainFor:    5 * time.Minute,
		RetryCount:   1,
		ReapInterval: 30 * time.Second,
	}
}

// Cache keys are composite strings: entity kind, operation, parameters.
// Prefix invalidation relies on this shape, so every key for an entity kind
// starts with the kind's base prefix.
const (
	ProductsPrefix = "products"
	UsersPrefix    = "users"

	ProductListPrefix = ProductsPrefix + "/list"
	UserListPrefix    = UsersPrefix + "/list"
)

func ProductListKey(search, category string) string {
	return ProductsPrefix + "/list/" + search + "/" + category
}

func ProductDetailKey(id string) string {
	return ProductsPrefix + "/detail/" + id
}

func UserListKey() string {
	return UsersPrefix + "/list"
}

func UserDetailKey(id string) string {
	return UsersPrefix + "/detail/" + id
}
