package viewstate

import (
	"context"
	"strings"

	"github.com/goliatone/go-viewstore/datastore"
)

// SearchTextFunc extracts the text fields of a record that Search matches
// against, typically a name and a secondary descriptive field.
type SearchTextFunc[T any] func(record T) []string

// ListViewModel drives the bounded-dataset view: one load fetches the whole
// collection, refresh invalidates and re-fetches, and Search filters the held
// records locally without touching the network.
//
// States move Idle -> Loading -> {Success, Error}, and back through Loading
// on refresh. Every transition notifies subscribers exactly once, so a load
// produces two notifications: entering Loading and entering the terminal
// state.
//
// A ListViewModel expects a single owning caller, one operation at a time.
type ListViewModel[T any] struct {
	notifier

	store      *datastore.Bounded[T]
	searchText SearchTextFunc[T]

	state      State
	records    []T
	errMessage string
	generation int
}

// NewListViewModel creates a view model over the bounded facade. searchText
// designates the record fields Search matches against.
func NewListViewModel[T any](store *datastore.Bounded[T], searchText SearchTextFunc[T]) *ListViewModel[T] {
	return &ListViewModel[T]{
		store:      store,
		searchText: searchText,
		state:      StateIdle,
	}
}

// State returns the currently active state.
func (m *ListViewModel[T]) State() State {
	return m.state
}

// Records returns the records held by the most recent successful load.
func (m *ListViewModel[T]) Records() []T {
	return m.records
}

// ErrorMessage returns the message stored by the most recent failed load, or
// the empty string.
func (m *ListViewModel[T]) ErrorMessage() string {
	return m.errMessage
}

// Load transitions to Loading, fetches the full collection through the
// facade, and settles in Success or Error. Facade errors are converted to a
// message here and never propagate further.
func (m *ListViewModel[T]) Load(ctx context.Context) {
	m.generation++
	generation := m.generation

	m.setState(StateLoading)

	records, err := m.store.GetAll(ctx)
	if generation != m.generation {
		// A newer load or refresh superseded this one; its completion wins.
		return
	}

	if err != nil {
		m.records = nil
		m.errMessage = errorMessage(err)
		m.setState(StateError)
		return
	}

	m.records = append([]T(nil), records...)
	m.errMessage = ""
	m.setState(StateSuccess)
}

// Refresh invalidates the facade's cache and loads again, guaranteeing a live
// re-fetch even when cached data was present.
func (m *ListViewModel[T]) Refresh(ctx context.Context) {
	m.store.Invalidate(ctx)
	m.Load(ctx)
}

// Search filters the currently held records by a case-insensitive substring
// match over the designated text fields. An empty query returns the full
// current set. Search is pure: no state change, no notification, no fetch.
func (m *ListViewModel[T]) Search(query string) []T {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return append([]T(nil), m.records...)
	}

	needle := strings.ToLower(trimmed)
	var matches []T
	for _, record := range m.records {
		for _, field := range m.searchText(record) {
			if strings.Contains(strings.ToLower(field), needle) {
				matches = append(matches, record)
				break
			}
		}
	}
	return matches
}

func (m *ListViewModel[T]) setState(state State) {
	m.state = state
	m.notify(state)
}
