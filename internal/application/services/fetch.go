package services

import (
	"context"
	"fmt"

	"github.com/storefront-labs/admin-console/internal/core/domain/query"
	"github.com/storefront-labs/admin-console/internal/core/ports"
)

// fetchAs runs a typed fetch through the query cache. The caller observes the
// key for the duration of the request, so the retention window counts from the
// last request that touched it. Stale results may carry both a value and the
// error of the last failed refetch.
func fetchAs[T any](ctx context.Context, cache ports.QueryCache, key string, fn func(ctx context.Context) (T, error)) (T, query.Status, error) {
	release := cache.Subscribe(key)
	defer release()

	value, status, err := cache.Fetch(ctx, key, func(ctx context.Context) (any, error) {
		return fn(ctx)
	})
	if value == nil {
		var zero T
		return zero, status, err
	}
	typed, ok := value.(T)
	if !ok {
		var zero T
		return zero, status, fmt.Errorf("unexpected type for cache key %s", key)
	}
	return typed, status, err
}
