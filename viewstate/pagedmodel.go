package viewstate

import (
	"context"

	"github.com/goliatone/go-viewstore/datastore"
)

// PagedViewModel drives the incremental-dataset view: an initial load brings
// in page zero, LoadMore appends one further page at a time, and refresh
// clears the facade's cache before starting over.
//
// States move Idle -> Loading -> {Success, Error} for the initial load and
// Success -> LoadingMore -> {Success, Error} for incremental loads. The
// LoadingMore guard makes redundant scroll-threshold triggers and loads past
// exhaustion silent no-ops: no fetch, no transition, no notification.
//
// A PagedViewModel expects a single owning caller, one operation at a time.
type PagedViewModel[T any] struct {
	notifier

	store    *datastore.Paged[T]
	pageSize int

	state      State
	records    []T
	page       int
	errMessage string
	generation int
}

// NewPagedViewModel creates a view model over the paged facade with the given
// page size.
func NewPagedViewModel[T any](store *datastore.Paged[T], pageSize int) *PagedViewModel[T] {
	return &PagedViewModel[T]{
		store:    store,
		pageSize: pageSize,
		state:    StateIdle,
	}
}

// State returns the currently active state.
func (m *PagedViewModel[T]) State() State {
	return m.state
}

// Records returns every record accumulated so far, in fetch order.
func (m *PagedViewModel[T]) Records() []T {
	return m.records
}

// ErrorMessage returns the message stored by the most recent failed load, or
// the empty string.
func (m *PagedViewModel[T]) ErrorMessage() string {
	return m.errMessage
}

// HasMore reports whether the facade still has unfetched records.
func (m *PagedViewModel[T]) HasMore() bool {
	return m.store.HasMore()
}

// LoadInitial resets the page cursor and record sequence, transitions to
// Loading, and requests page zero. The cursor advances only on success.
func (m *PagedViewModel[T]) LoadInitial(ctx context.Context) {
	m.generation++
	generation := m.generation

	m.page = 0
	m.records = nil
	m.setState(StateLoading)

	pageRecords, err := m.store.GetPage(ctx, 0, m.pageSize)
	if generation != m.generation {
		// Superseded by a newer initial load or refresh.
		return
	}

	if err != nil {
		m.errMessage = errorMessage(err)
		m.setState(StateError)
		return
	}

	m.records = append([]T(nil), pageRecords...)
	m.errMessage = ""
	m.page = 1
	m.setState(StateSuccess)
}

// LoadMore requests the next page and appends it to the held records. It
// returns immediately, without any transition or notification, while a
// LoadMore is already running or once the dataset is exhausted. A failed
// LoadMore transitions to Error but keeps every previously loaded record; an
// empty page is a legitimate end-of-data outcome and settles in Success.
func (m *PagedViewModel[T]) LoadMore(ctx context.Context) {
	if m.state == StateLoadingMore || !m.store.HasMore() {
		return
	}

	generation := m.generation
	m.setState(StateLoadingMore)

	pageRecords, err := m.store.GetPage(ctx, m.page, m.pageSize)
	if generation != m.generation {
		// A refresh raced this page load; discard the stale completion.
		return
	}

	if err != nil {
		m.errMessage = errorMessage(err)
		m.setState(StateError)
		return
	}

	m.records = append(m.records, pageRecords...)
	m.errMessage = ""
	m.page++
	m.setState(StateSuccess)
}

// Refresh clears the facade's cache, resetting the pagination cursor, then
// behaves exactly like LoadInitial.
func (m *PagedViewModel[T]) Refresh(ctx context.Context) {
	m.store.ClearCache()
	m.LoadInitial(ctx)
}

func (m *PagedViewModel[T]) setState(state State) {
	m.state = state
	m.notify(state)
}
