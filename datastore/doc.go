// Package datastore provides the data-access facades that sit between a
// remote paged data source and the view-model layer.
//
// # Overview
//
// Two facades cover the two dataset shapes the UI consumes:
//
//   - Bounded[T]: datasets small enough to fetch and cache in full. One full
//     fetch populates the collection; point lookups resolve through a per-key
//     lookup cache, a collection scan, and a targeted fetch, in that order.
//   - Paged[T]: datasets fetched in fixed-size chunks on demand. Records
//     accumulate contiguously from offset zero, so the cache is always a
//     consistent prefix of the source collection.
//
// Both facades consume the remote source through injected fetch functions
// (FetchAllFunc, FetchByKeyFunc, FetchPageFunc) and never construct their own
// transport. See the fetchhttp package for HTTP-backed implementations.
//
// # Caching Contract
//
// The defining property of Bounded is that the backing full fetch runs at
// most once, regardless of call count, until Invalidate. Likewise a key
// lookup fetches at most once per key, and a Paged page that was already
// fetched is served from memory on every later request.
//
// # Error Handling
//
// The facades never swallow errors: fetch failures propagate wrapped, with
// the collection cache reset to absent (Bounded) or the record prefix left at
// its last consistent state (Paged). Callers match failure categories with
// errors.Is and errors.As against ErrNotFound, ErrInvalidArgument,
// NetworkError, and ServerError.
//
// # Concurrency
//
// Each facade instance expects a single owning caller; guards are plain state
// checks, not locks. The view-model layer upholds that contract by design.
package datastore
