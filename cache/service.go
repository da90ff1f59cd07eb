package cache

import "context"

// KeySerializer builds a cache key from a method name + arbitrary args.
// It is responsible for producing stable keys across calls.
type KeySerializer interface {
	SerializeKey(method string, args ...any) string
}

// FetchFn is the function signature CacheService expects when fetching from the source of truth.
type FetchFn[T any] func(ctx context.Context) (T, error)

// CacheService exposes the lookup-cache operations the data-access facades need.
// It is exported so that other packages can reuse the default serializer or
// provide alternate cache backends.
type CacheService interface {
	// Get returns the value cached under key, or false when absent.
	Get(ctx context.Context, key string) (any, bool)

	// Set stores value under key, replacing any previous entry.
	Set(ctx context.Context, key string, value any)

	// GetOrFetch returns the cached value for key, falling back to fetchFn
	// for a miss. fetchFn must be a FetchFn[T].
	GetOrFetch(ctx context.Context, key string, fetchFn any) (any, error)

	// Delete removes the entry stored under key.
	Delete(ctx context.Context, key string) error
}

// Get is a type-safe wrapper over CacheService.Get. A cached value of an
// unexpected type is treated as a miss rather than a panic.
func Get[T any](ctx context.Context, service CacheService, key string) (T, bool) {
	value, ok := service.Get(ctx, key)
	if !ok {
		var zero T
		return zero, false
	}
	typed, ok := value.(T)
	if !ok {
		var zero T
		return zero, false
	}
	return typed, true
}

// GetOrFetch is a type-safe wrapper function that provides generic support for CacheService.
func GetOrFetch[T any](ctx context.Context, service CacheService, key string, fetchFn FetchFn[T]) (T, error) {
	result, err := service.GetOrFetch(ctx, key, fetchFn)
	if err != nil {
		var zero T
		return zero, err
	}
	return result.(T), nil
}
