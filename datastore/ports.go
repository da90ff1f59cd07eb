package datastore

import "context"

// KeyFunc reports the unique integer key of a record. The facades treat every
// other field as opaque payload.
type KeyFunc[T any] func(record T) int

// FetchAllFunc retrieves the full collection of a bounded dataset.
type FetchAllFunc[T any] func(ctx context.Context) ([]T, error)

// FetchByKeyFunc retrieves a single record by its key. A source that has no
// record for key fails with an error matching ErrNotFound.
type FetchByKeyFunc[T any] func(ctx context.Context, key int) (T, error)

// FetchPageFunc retrieves up to limit records starting at the zero-based
// offset start. It returns fewer than limit records only at or near the end
// of the source's collection.
type FetchPageFunc[T any] func(ctx context.Context, start, limit int) ([]T, error)
