// Package cache provides the caching interfaces and key serialization used by
// the data-access facades.
//
// # Overview
//
// The package exports two main interfaces and their default implementations:
//
//   - CacheService: a generic lookup cache with read-through support
//   - KeySerializer: builds stable cache keys from method names and arguments
//
// The default CacheService implementation is backed by sturdyc and constructed
// through NewCacheService. The datastore package uses it as the per-key lookup
// tier of the bounded facade: record lookups are memoized under keys produced
// by the serializer, and invalidation deletes those keys again.
//
// # Basic Usage
//
//	serializer := cache.NewDefaultKeySerializer()
//	key := serializer.SerializeKey("GetByKey", 42)
//
//	svc, err := cache.NewCacheService(cache.DefaultConfig())
//	if err != nil {
//		// invalid configuration
//	}
//
//	record, err := cache.GetOrFetch(ctx, svc, key, func(ctx context.Context) (Record, error) {
//		return fetchRecord(ctx, 42)
//	})
//
// # Key Serialization Strategy
//
// The default serializer joins the method name and each argument with "::".
// Integer keys and strings serialize directly; slices serialize recursively;
// everything else falls back to JSON. Keys are deterministic for value-type
// arguments, which is all the facades ever pass.
//
// # Custom Key Serializers
//
// Implement KeySerializer when a different key layout is needed, for example
// to namespace several datasets sharing one cache backend:
//
//	type prefixSerializer struct{ prefix string }
//
//	func (s *prefixSerializer) SerializeKey(method string, args ...any) string {
//		return s.prefix + "::" + method // plus serialized args
//	}
//
// # Error Handling
//
// The package prioritizes stability over perfection. When JSON marshaling
// fails, the key serializer falls back to type information rather than
// panicking, so cache operations continue even with problematic data types.
package cache
