package viewstate

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/goliatone/go-viewstore/datastore"
)

// pagedHarness wires a real paged facade over a fake page source.
type pagedHarness struct {
	store   *datastore.Paged[person]
	total   int
	fetches int
	err     error
}

func newPagedHarness(total, capacity int) *pagedHarness {
	h := &pagedHarness{total: total}
	fetchPage := func(ctx context.Context, start, limit int) ([]person, error) {
		h.fetches++
		if h.err != nil {
			return nil, h.err
		}
		if start >= h.total {
			return nil, nil
		}
		end := start + limit
		if end > h.total {
			end = h.total
		}
		records := make([]person, 0, end-start)
		for i := start; i < end; i++ {
			records = append(records, person{Key: i, Name: fmt.Sprintf("person-%d", i)})
		}
		return records, nil
	}
	h.store = datastore.NewPaged(fetchPage, capacity)
	return h
}

func TestPagedViewModelLoadInitial(t *testing.T) {
	ctx := context.Background()
	h := newPagedHarness(45, 45)
	model := NewPagedViewModel(h.store, 20)

	if model.State() != StateIdle {
		t.Fatalf("fresh model should be idle, got %s", model.State())
	}

	var states []State
	model.Subscribe(func(s State) { states = append(states, s) })

	model.LoadInitial(ctx)

	if model.State() != StateSuccess {
		t.Fatalf("expected success, got %s", model.State())
	}
	if len(model.Records()) != 20 {
		t.Fatalf("got %d records, want 20", len(model.Records()))
	}
	if !model.HasMore() {
		t.Error("expected more records after the first page")
	}
	if want := []State{StateLoading, StateSuccess}; !statesEqual(states, want) {
		t.Errorf("got notifications %v, want %v", states, want)
	}
}

func TestPagedViewModelLoadMoreWalk(t *testing.T) {
	ctx := context.Background()
	h := newPagedHarness(45, 45)
	model := NewPagedViewModel(h.store, 20)

	model.LoadInitial(ctx)
	if got := len(model.Records()); got != 20 {
		t.Fatalf("after initial load: %d records, want 20", got)
	}

	model.LoadMore(ctx)
	if got := len(model.Records()); got != 40 {
		t.Fatalf("after first load-more: %d records, want 40", got)
	}
	if !model.HasMore() {
		t.Fatal("expected more records at 40 of 45")
	}

	model.LoadMore(ctx)
	if got := len(model.Records()); got != 45 {
		t.Fatalf("after final load-more: %d records, want 45", got)
	}
	if model.HasMore() {
		t.Error("expected exhaustion at 45 of 45")
	}
	if model.State() != StateSuccess {
		t.Errorf("expected success, got %s", model.State())
	}
}

func TestPagedViewModelLoadMoreAfterExhaustionIsNoOp(t *testing.T) {
	ctx := context.Background()
	h := newPagedHarness(45, 45)
	model := NewPagedViewModel(h.store, 20)

	model.LoadInitial(ctx)
	model.LoadMore(ctx)
	model.LoadMore(ctx)

	fetches := h.fetches
	var notified int
	model.Subscribe(func(State) { notified++ })

	model.LoadMore(ctx)

	if h.fetches != fetches {
		t.Errorf("load-more past exhaustion fetched %d times", h.fetches-fetches)
	}
	if notified != 0 {
		t.Errorf("load-more past exhaustion notified %d times", notified)
	}
	if len(model.Records()) != 45 {
		t.Errorf("records changed to %d", len(model.Records()))
	}
}

func TestPagedViewModelLoadMoreWhileLoadingMoreIsNoOp(t *testing.T) {
	ctx := context.Background()
	h := newPagedHarness(100, 100)
	model := NewPagedViewModel(h.store, 20)
	model.LoadInitial(ctx)

	// Simulate a redundant scroll trigger arriving while the first
	// load-more is still in flight: re-enter from the LoadingMore
	// notification itself.
	var notifications []State
	reentered := false
	model.Subscribe(func(s State) {
		notifications = append(notifications, s)
		if s == StateLoadingMore && !reentered {
			reentered = true
			model.LoadMore(ctx)
		}
	})

	model.LoadMore(ctx)

	if want := []State{StateLoadingMore, StateSuccess}; !statesEqual(notifications, want) {
		t.Errorf("got notifications %v, want %v", notifications, want)
	}
	if len(model.Records()) != 40 {
		t.Errorf("got %d records, want 40 (one page appended once)", len(model.Records()))
	}
	if h.fetches != 2 {
		t.Errorf("expected 2 fetches total, got %d", h.fetches)
	}
}

func TestPagedViewModelInitialLoadFailure(t *testing.T) {
	ctx := context.Background()
	h := newPagedHarness(45, 45)
	h.err = &datastore.ServerError{URL: "http://example.test/people", StatusCode: 500}
	model := NewPagedViewModel(h.store, 20)

	model.LoadInitial(ctx)

	if model.State() != StateError {
		t.Fatalf("expected error state, got %s", model.State())
	}
	if len(model.Records()) != 0 {
		t.Errorf("a failed initial load should leave no records, got %d", len(model.Records()))
	}
	if model.ErrorMessage() == "" {
		t.Error("expected a human-readable error message")
	}
}

func TestPagedViewModelLoadMoreFailureKeepsRecords(t *testing.T) {
	ctx := context.Background()
	h := newPagedHarness(45, 45)
	model := NewPagedViewModel(h.store, 20)

	model.LoadInitial(ctx)
	h.err = errors.New("boom")

	model.LoadMore(ctx)

	if model.State() != StateError {
		t.Fatalf("expected error state, got %s", model.State())
	}
	if len(model.Records()) != 20 {
		t.Errorf("a failed load-more must keep prior pages, got %d records", len(model.Records()))
	}

	// Retry is user-initiated: the next load-more picks up where we left off.
	h.err = nil
	model.LoadMore(ctx)
	if model.State() != StateSuccess {
		t.Fatalf("expected success after retry, got %s", model.State())
	}
	if len(model.Records()) != 40 {
		t.Errorf("got %d records after retry, want 40", len(model.Records()))
	}
}

func TestPagedViewModelRefreshResetsCursor(t *testing.T) {
	ctx := context.Background()
	h := newPagedHarness(45, 45)
	model := NewPagedViewModel(h.store, 20)

	model.LoadInitial(ctx)
	model.LoadMore(ctx)
	if got := h.store.TotalLoaded(); got != 40 {
		t.Fatalf("facade holds %d records, want 40", got)
	}

	model.Refresh(ctx)

	if len(model.Records()) != 20 {
		t.Errorf("refresh should restart from page zero, got %d records", len(model.Records()))
	}
	if got := h.store.TotalLoaded(); got != 20 {
		t.Errorf("refresh should clear the facade cache, it holds %d", got)
	}
	if h.fetches != 3 {
		t.Errorf("expected 3 fetches total (2 before refresh, 1 after), got %d", h.fetches)
	}
}

func TestPagedViewModelRefreshDuringLoadMoreWins(t *testing.T) {
	ctx := context.Background()
	h := newPagedHarness(45, 45)
	model := NewPagedViewModel(h.store, 20)
	model.LoadInitial(ctx)

	// A refresh racing an in-flight load-more: trigger it from the
	// LoadingMore notification so the page completion observes a stale
	// generation.
	refreshed := false
	model.Subscribe(func(s State) {
		if s == StateLoadingMore && !refreshed {
			refreshed = true
			model.Refresh(ctx)
		}
	})

	model.LoadMore(ctx)

	if model.State() != StateSuccess {
		t.Fatalf("expected success, got %s", model.State())
	}
	if len(model.Records()) != 20 {
		t.Errorf("the refresh outcome should win, got %d records", len(model.Records()))
	}
}
