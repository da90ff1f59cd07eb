package cache

import (
	"context"
	"errors"
	"testing"
)

// fakeService is a minimal CacheService that records interactions.
type fakeService struct {
	storage map[string]any
	getErr  error
}

func newFakeService() *fakeService {
	return &fakeService{storage: make(map[string]any)}
}

func (f *fakeService) Get(ctx context.Context, key string) (any, bool) {
	value, ok := f.storage[key]
	return value, ok
}

func (f *fakeService) Set(ctx context.Context, key string, value any) {
	f.storage[key] = value
}

func (f *fakeService) GetOrFetch(ctx context.Context, key string, fetchFn any) (any, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if value, ok := f.storage[key]; ok {
		return value, nil
	}
	fn := fetchFn.(FetchFn[string])
	value, err := fn(ctx)
	if err != nil {
		return nil, err
	}
	f.storage[key] = value
	return value, nil
}

func (f *fakeService) Delete(ctx context.Context, key string) error {
	delete(f.storage, key)
	return nil
}

func TestGetTypedWrapper(t *testing.T) {
	ctx := context.Background()
	service := newFakeService()
	service.storage["known"] = "value"
	service.storage["wrong-type"] = 42

	if value, ok := Get[string](ctx, service, "known"); !ok || value != "value" {
		t.Errorf("Get[string] = (%q, %v), want (value, true)", value, ok)
	}

	if _, ok := Get[string](ctx, service, "absent"); ok {
		t.Error("expected a miss for an absent key")
	}

	// A cached value of the wrong type is a miss, not a panic.
	if _, ok := Get[string](ctx, service, "wrong-type"); ok {
		t.Error("expected a miss for a mis-typed entry")
	}
}

func TestGetOrFetchTypedWrapper(t *testing.T) {
	ctx := context.Background()
	service := newFakeService()

	fetches := 0
	fetch := func(ctx context.Context) (string, error) {
		fetches++
		return "fetched", nil
	}

	value, err := GetOrFetch(ctx, service, "key", fetch)
	if err != nil {
		t.Fatalf("GetOrFetch failed: %v", err)
	}
	if value != "fetched" {
		t.Errorf("got %q, want fetched", value)
	}

	if _, err := GetOrFetch(ctx, service, "key", fetch); err != nil {
		t.Fatalf("second GetOrFetch failed: %v", err)
	}
	if fetches != 1 {
		t.Errorf("expected a single fetch, got %d", fetches)
	}
}

func TestGetOrFetchPropagatesError(t *testing.T) {
	ctx := context.Background()
	service := newFakeService()
	service.getErr = errors.New("backend down")

	value, err := GetOrFetch(ctx, service, "key", func(ctx context.Context) (string, error) {
		return "ignored", nil
	})
	if err == nil {
		t.Fatal("expected the service error to propagate")
	}
	if value != "" {
		t.Errorf("expected the zero value on error, got %q", value)
	}
}
