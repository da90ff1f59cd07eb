// Package viewstate turns asynchronous data-access calls into the small set
// of observable UI states {Idle, Loading, LoadingMore, Success, Error}.
//
// ListViewModel consumes a datastore.Bounded facade and covers datasets
// loaded whole; PagedViewModel consumes a datastore.Paged facade and loads
// incrementally. Both expose Subscribe/Unsubscribe; every state transition is
// delivered synchronously to all current subscribers exactly once, after the
// field mutations that define the new state.
//
// The view models are the error boundary for their UI: facade errors are
// converted to human-readable messages on the Error state and never
// propagate further.
//
// Instances are single-owner. Operations are meant to be invoked sequentially
// by one UI context (one user gesture or scroll-threshold crossing at a
// time); re-entrancy guards are state checks, not locks. Loads that overlap
// anyway are arbitrated by a generation counter: the most recently started
// initial load or refresh wins and stale completions apply nothing.
package viewstate
