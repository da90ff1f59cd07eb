package cacheinfra

import (
	"context"
	"reflect"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/viccon/sturdyc"
)

// Config holds the configuration for the sturdyc cache adapter.
type Config struct {
	// Capacity defines the maximum number of entries that the cache can store.
	// Must be greater than 0.
	Capacity int

	// NumShards determines the number of cache shards for concurrent access.
	// Higher values improve concurrency but increase memory overhead.
	// Must be greater than 0. Default: 64
	NumShards int

	// TTL is the default time-to-live for cached entries.
	// After this duration, entries are considered expired.
	// Must be greater than 0.
	TTL time.Duration

	// EvictionPercentage specifies what percentage of entries to evict
	// when the cache reaches its capacity. Must be between 1-100.
	// Default: 10 (evict 10% of entries)
	EvictionPercentage int

	// MissingRecordStorage enables storage for missing record flags.
	// When enabled, the cache will remember keys that returned no results
	// to prevent repeated source queries for non-existent records.
	MissingRecordStorage bool

	// EvictionInterval sets how often the cache checks for expired entries.
	// Zero value uses the default interval.
	EvictionInterval time.Duration
}

// DefaultConfig returns a Config with sensible defaults for most use cases.
//
// Early refreshes stay disabled on purpose: a background refresh would call
// the fetch function again behind the caller's back, breaking the
// at-most-once fetch contract of the bounded facade.
func DefaultConfig() Config {
	return Config{
		Capacity:             10000,
		NumShards:            64,
		TTL:                  5 * time.Minute,
		EvictionPercentage:   10,
		MissingRecordStorage: false,
		EvictionInterval:     0, // Use default
	}
}

// ToSturdycOptions converts the Config to a sturdyc.Option slice.
// Capacity, NumShards, TTL, and EvictionPercentage are passed directly
// to sturdyc.New() and are not included in the options.
func (c Config) ToSturdycOptions() []sturdyc.Option {
	var options []sturdyc.Option

	if c.MissingRecordStorage {
		options = append(options, sturdyc.WithMissingRecordStorage())
	}

	if c.EvictionInterval > 0 {
		options = append(options, sturdyc.WithEvictionInterval(c.EvictionInterval))
	}

	return options
}

// Validate checks if the configuration values are valid.
// Returns an error if any configuration parameter is invalid.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Capacity, validation.Required, validation.Min(1)),
		validation.Field(&c.NumShards, validation.Required, validation.Min(1)),
		validation.Field(&c.TTL, validation.Required, validation.Min(time.Duration(1))),
		validation.Field(&c.EvictionPercentage, validation.Required, validation.Min(1), validation.Max(100)),
		validation.Field(&c.EvictionInterval, validation.Min(time.Duration(0))),
	)
}

// sturdycService wraps a sturdyc client providing caching behaviour.
type sturdycService struct {
	client *sturdyc.Client[any]
}

// NewSturdycService creates a new sturdyc cache service adapter.
// It validates the configuration and initializes a sturdyc client with the
// provided settings.
//
// Version compatibility note: this implementation assumes the sturdyc v1.x
// API. Monitor sturdyc version upgrades for potential option mapping changes.
func NewSturdycService(cfg Config) (*sturdycService, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client := sturdyc.New[any](
		cfg.Capacity,
		cfg.NumShards,
		cfg.TTL,
		cfg.EvictionPercentage,
		cfg.ToSturdycOptions()...,
	)

	return &sturdycService{client: client}, nil
}

// Get implements cache.CacheService.Get.
func (s *sturdycService) Get(ctx context.Context, key string) (any, bool) {
	return s.client.Get(key)
}

// Set implements cache.CacheService.Set.
func (s *sturdycService) Set(ctx context.Context, key string, value any) {
	s.client.Set(key, value)
}

// GetOrFetch implements cache.CacheService.GetOrFetch.
// It attempts to retrieve a value from the cache using the provided key.
// If the key is not found or expired, it executes fetchFn to get a fresh
// value, stores it in the cache, and returns it.
//
// fetchFn must have the shape func(context.Context) (T, error); the generic
// signature is bridged with reflection so that a single any-typed client can
// serve every record type.
func (s *sturdycService) GetOrFetch(ctx context.Context, key string, fetchFn any) (any, error) {
	if err := validateFetchFn(fetchFn); err != nil {
		return nil, err
	}

	return s.client.GetOrFetch(ctx, key, func(ctx context.Context) (any, error) {
		return callFetchFn(ctx, fetchFn)
	})
}

// Delete implements cache.CacheService.Delete.
// Removes a single entry from the cache so that subsequent reads fetch fresh
// data from the source.
func (s *sturdycService) Delete(ctx context.Context, key string) error {
	s.client.Delete(key)
	return nil
}

// FetchFnError reports a fetch function that does not match the expected
// func(context.Context) (T, error) shape.
type FetchFnError struct {
	Message string
}

// Error implements the error interface.
func (e *FetchFnError) Error() string {
	return "invalid fetch function: " + e.Message
}

// validateFetchFn ensures fetchFn matches func(context.Context) (T, error).
func validateFetchFn(fetchFn any) error {
	if fetchFn == nil {
		return &FetchFnError{Message: "cannot be nil"}
	}

	fnType := reflect.TypeOf(fetchFn)
	if fnType.Kind() != reflect.Func {
		return &FetchFnError{Message: "must be a function"}
	}

	if fnType.NumIn() != 1 || fnType.NumOut() != 2 {
		return &FetchFnError{Message: "must have signature func(context.Context) (T, error)"}
	}

	contextType := reflect.TypeOf((*context.Context)(nil)).Elem()
	if !fnType.In(0).Implements(contextType) {
		return &FetchFnError{Message: "first parameter must be context.Context"}
	}

	errorType := reflect.TypeOf((*error)(nil)).Elem()
	if !fnType.Out(1).Implements(errorType) {
		return &FetchFnError{Message: "second return value must be error"}
	}

	return nil
}

// callFetchFn invokes a pre-validated fetch function through reflection.
func callFetchFn(ctx context.Context, fetchFn any) (any, error) {
	// Direct assertion covers the common non-generic case.
	if fn, ok := fetchFn.(func(context.Context) (any, error)); ok {
		return fn(ctx)
	}

	results := reflect.ValueOf(fetchFn).Call([]reflect.Value{reflect.ValueOf(ctx)})

	var result any
	if v := results[0]; v.IsValid() && v.CanInterface() {
		result = v.Interface()
	}

	var err error
	if v := results[1]; v.IsValid() && !v.IsNil() {
		err = v.Interface().(error)
	}

	return result, err
}
