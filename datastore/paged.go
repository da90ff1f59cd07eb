package datastore

import (
	"context"
	"fmt"
)

// Paged accumulates records fetched page by page for datasets too large to
// load whole. Records grow contiguously from offset zero regardless of which
// page index callers request, so the cache is always a consistent prefix of
// the source collection.
//
// The instance exclusively owns its record sequence. Like Bounded, it expects
// a single owning caller.
type Paged[T any] struct {
	fetchPage FetchPageFunc[T]

	// declaredCapacity is the server-declared total the instance was
	// constructed with; capacity is the effective total, shrunk when the
	// source turns out to be shorter. ClearCache restores the declared value.
	declaredCapacity int
	capacity         int

	records []T
}

// NewPaged creates a paged data-access facade over fetchPage with the given
// total capacity. Capacity is the dataset's server-declared total size.
func NewPaged[T any](fetchPage FetchPageFunc[T], capacity int) *Paged[T] {
	return &Paged[T]{
		fetchPage:        fetchPage,
		declaredCapacity: capacity,
		capacity:         capacity,
	}
}

// GetPage returns the records for the zero-based pageIndex at the given page
// size.
//
// A page fully held in cache returns without a fetch. A request at or past
// the effective capacity, or once the cache holds the entire capacity,
// returns an empty page without error to signal exhaustion. Otherwise the
// facade fetches exactly pageSize records starting at the current cached
// length, appends them, and returns the requested range clamped to what is
// now cached; the final page of an unevenly divisible dataset is therefore
// partial.
func (p *Paged[T]) GetPage(ctx context.Context, pageIndex, pageSize int) ([]T, error) {
	if pageSize <= 0 {
		return nil, fmt.Errorf("%w: page size must be positive, got %d", ErrInvalidArgument, pageSize)
	}
	if pageIndex < 0 {
		return nil, fmt.Errorf("%w: page index must not be negative, got %d", ErrInvalidArgument, pageIndex)
	}

	start := pageIndex * pageSize

	if start >= p.capacity {
		return nil, nil
	}

	if len(p.records) >= start+pageSize {
		return p.slice(start, pageSize), nil
	}

	if len(p.records) >= p.capacity {
		return nil, nil
	}

	fetched, err := p.fetchPage(ctx, len(p.records), pageSize)
	if err != nil {
		return nil, fmt.Errorf("fetch page at offset %d: %w", len(p.records), err)
	}

	p.records = append(p.records, fetched...)

	// Reconcile capacity drift: a short page means the source ended early,
	// an over-long source never grows past the declared total.
	if len(p.records) > p.capacity {
		p.records = p.records[:p.capacity]
	} else if len(fetched) < pageSize && len(p.records) < p.capacity {
		p.capacity = len(p.records)
	}

	return p.slice(start, pageSize), nil
}

// HasMore reports whether the source still holds records beyond the cached
// prefix.
func (p *Paged[T]) HasMore() bool {
	return len(p.records) < p.capacity
}

// TotalLoaded returns the number of records fetched so far.
func (p *Paged[T]) TotalLoaded() int {
	return len(p.records)
}

// Capacity returns the effective total size of the dataset.
func (p *Paged[T]) Capacity() int {
	return p.capacity
}

// ClearCache empties the record sequence and restores the declared capacity
// in one step.
func (p *Paged[T]) ClearCache() {
	p.records = nil
	p.capacity = p.declaredCapacity
}

// slice copies the cached range [start, start+pageSize) clamped to the cached
// length, so callers can hold the page across later appends.
func (p *Paged[T]) slice(start, pageSize int) []T {
	if start >= len(p.records) {
		return nil
	}
	end := start + pageSize
	if end > len(p.records) {
		end = len(p.records)
	}
	return append([]T(nil), p.records[start:end]...)
}
