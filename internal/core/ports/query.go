package ports

import (
	"context"

	"github.com/storefront-labs/admin-console/internal/core/domain/query"
)

// QueryCache is the client-side stale-while-revalidate cache. One instance is
// shared process-wide; concurrent fetches for the same key are deduplicated.
type QueryCache interface {
	// Fetch returns the cached value for key, loading it with fn on a miss.
	// The status reports freshness; a stale status may be accompanied by both
	// cached data and the error of the last failed refetch.
	Fetch(ctx context.Context, key string, fn query.FetchFunc) (any, query.Status, error)
	// Subscribe registers an observer for key and returns its release
	// function. The retention window counts from the last release.
	Subscribe(key string) (release func())
	// Invalidate marks every entry whose key starts with prefix as stale and
	// refetches the ones that currently have observers.
	Invalidate(prefix string)
}
