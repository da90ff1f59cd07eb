package datastore

import (
	"context"
	"fmt"

	"github.com/puzpuzpuz/xsync/v3"

	"github.com/goliatone/go-viewstore/cache"
)

// Bounded caches an entire finite collection after the first full fetch. It
// is meant for datasets known to be small enough to hold in memory whole.
//
// A Bounded instance exclusively owns its cached collection. Point lookups
// are memoized in a shared cache.CacheService so that several datasets can
// share one backend; the keys a Bounded writes there are tracked and removed
// again on Invalidate.
//
// Methods are not safe for concurrent use from multiple goroutines; each
// instance expects a single owning caller, matching the view-model layer
// built on top of it.
type Bounded[T any] struct {
	fetchAll   FetchAllFunc[T]
	fetchByKey FetchByKeyFunc[T]
	keyOf      KeyFunc[T]

	cache         cache.CacheService
	keySerializer cache.KeySerializer
	trackedKeys   *xsync.MapOf[string, struct{}]

	// loaded distinguishes "never fetched" from a legitimately empty
	// collection; records is never partially populated.
	loaded  bool
	records []T
}

// NewBounded creates a bounded data-access facade over the provided fetch
// functions. keyOf reports each record's unique integer key.
func NewBounded[T any](
	fetchAll FetchAllFunc[T],
	fetchByKey FetchByKeyFunc[T],
	keyOf KeyFunc[T],
	cacheService cache.CacheService,
	keySerializer cache.KeySerializer,
) *Bounded[T] {
	return &Bounded[T]{
		fetchAll:      fetchAll,
		fetchByKey:    fetchByKey,
		keyOf:         keyOf,
		cache:         cacheService,
		keySerializer: keySerializer,
		trackedKeys:   xsync.NewMapOf[string, struct{}](),
	}
}

// GetAll returns the cached collection when present; otherwise it performs
// one full fetch, stores the result, and returns it. A fetch failure leaves
// the cache absent so that no partial state is ever served.
//
// Interleaved GetAll calls while a fetch is in flight are not deduplicated;
// once populated, no further call fetches until Invalidate.
func (b *Bounded[T]) GetAll(ctx context.Context) ([]T, error) {
	if b.loaded {
		return b.records, nil
	}

	records, err := b.fetchAll(ctx)
	if err != nil {
		b.loaded = false
		b.records = nil
		return nil, fmt.Errorf("fetch collection: %w", err)
	}

	b.loaded = true
	b.records = records
	return b.records, nil
}

// GetByKey resolves a record through three explicit tiers: the per-key lookup
// cache, a scan of the bounded collection when populated, and finally a
// targeted fetch. A hit at any tier memoizes the key; a source miss fails
// with ErrNotFound and leaves other keys untouched.
func (b *Bounded[T]) GetByKey(ctx context.Context, key int) (T, error) {
	cacheKey := b.keySerializer.SerializeKey("GetByKey", key)

	if record, ok := cache.Get[T](ctx, b.cache, cacheKey); ok {
		return record, nil
	}

	if b.loaded {
		for _, record := range b.records {
			if b.keyOf(record) == key {
				b.memoize(ctx, cacheKey, record)
				return record, nil
			}
		}
	}

	record, err := b.fetchByKey(ctx, key)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("fetch record %d: %w", key, err)
	}

	b.memoize(ctx, cacheKey, record)
	return record, nil
}

// Invalidate clears the collection cache and every tracked lookup key
// unconditionally. It never triggers a fetch; the next GetAll does.
func (b *Bounded[T]) Invalidate(ctx context.Context) {
	b.loaded = false
	b.records = nil
	b.trackedKeys.Range(func(key string, _ struct{}) bool {
		_ = b.cache.Delete(ctx, key)
		b.trackedKeys.Delete(key)
		return true
	})
}

// HasData reports whether the cached collection holds any records. It is
// derived from the collection itself rather than kept as a separate flag, so
// an empty dataset counts as no data even though it is cached.
func (b *Bounded[T]) HasData() bool {
	return len(b.records) > 0
}

func (b *Bounded[T]) memoize(ctx context.Context, cacheKey string, record T) {
	b.cache.Set(ctx, cacheKey, record)
	b.trackedKeys.Store(cacheKey, struct{}{})
}
