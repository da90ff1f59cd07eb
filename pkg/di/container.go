package di

import (
	"fmt"
	"net/http"

	"github.com/goliatone/go-viewstore/cache"
	"github.com/goliatone/go-viewstore/datastore"
	"github.com/goliatone/go-viewstore/fetchhttp"
	"github.com/goliatone/go-viewstore/internal/cacheinfra"
	"github.com/goliatone/go-viewstore/pkg/config"
	"github.com/goliatone/go-viewstore/viewstate"
)

// Container provides dependency wiring for the data-access components.
// It manages singleton instances of the shared cache service and key
// serializer, and provides factory functions for building facades and view
// models on top of them.
type Container struct {
	cacheService  cache.CacheService
	keySerializer cache.KeySerializer
	cacheConfig   cacheinfra.Config
	pageSize      int
}

// NewContainer creates a DI container with the provided cache configuration
// and page size. It initializes the cache service using the sturdyc adapter
// and sets up the default key serializer.
func NewContainer(cacheCfg cacheinfra.Config, pageSize int) (*Container, error) {
	cacheService, err := cacheinfra.NewSturdycService(cacheCfg)
	if err != nil {
		return nil, err
	}

	return &Container{
		cacheService:  cacheService,
		keySerializer: cache.NewDefaultKeySerializer(),
		cacheConfig:   cacheCfg,
		pageSize:      pageSize,
	}, nil
}

// NewContainerWithDefaults creates a DI container using default
// configuration. This is the convenience constructor for typical use cases.
func NewContainerWithDefaults() (*Container, error) {
	return NewContainer(cacheinfra.DefaultConfig(), 20)
}

// NewContainerFromConfig creates a DI container from an application config,
// typically one produced by config.Load.
func NewContainerFromConfig(cfg config.Config) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	cc := cfg.CacheConfig()
	return NewContainer(cacheinfra.Config{
		Capacity:             cc.Capacity,
		NumShards:            cc.NumShards,
		TTL:                  cc.TTL,
		EvictionPercentage:   cc.EvictionPercentage,
		MissingRecordStorage: cc.MissingRecordStorage,
		EvictionInterval:     cc.EvictionInterval,
	}, cfg.Paging.PageSize)
}

// CacheService returns the singleton cache service instance.
func (c *Container) CacheService() cache.CacheService {
	return c.cacheService
}

// KeySerializer returns the singleton key serializer instance.
func (c *Container) KeySerializer() cache.KeySerializer {
	return c.keySerializer
}

// PageSize returns the configured page size for incremental datasets.
func (c *Container) PageSize() int {
	return c.pageSize
}

// NewBoundedStore creates a bounded facade wired to the container's shared
// cache service and key serializer.
//
// Since Go methods cannot have type parameters, the factories are provided as
// package-level functions. Example: NewBoundedStore[User](container, ...).
func NewBoundedStore[T any](
	container *Container,
	fetchAll datastore.FetchAllFunc[T],
	fetchByKey datastore.FetchByKeyFunc[T],
	keyOf datastore.KeyFunc[T],
) *datastore.Bounded[T] {
	return datastore.NewBounded(fetchAll, fetchByKey, keyOf, container.cacheService, container.keySerializer)
}

// NewPagedStore creates a paged facade with the given declared capacity.
func NewPagedStore[T any](fetchPage datastore.FetchPageFunc[T], capacity int) *datastore.Paged[T] {
	return datastore.NewPaged(fetchPage, capacity)
}

// NewListViewModel creates a bounded view model over a facade produced by
// NewBoundedStore.
func NewListViewModel[T any](store *datastore.Bounded[T], searchText viewstate.SearchTextFunc[T]) *viewstate.ListViewModel[T] {
	return viewstate.NewListViewModel(store, searchText)
}

// NewPagedViewModel creates a paged view model using the container's
// configured page size.
func NewPagedViewModel[T any](container *Container, store *datastore.Paged[T]) *viewstate.PagedViewModel[T] {
	return viewstate.NewPagedViewModel(store, container.pageSize)
}

// NewHTTPClient builds a fetch client from the application config, applying
// the configured timeout and user agent.
func NewHTTPClient(cfg config.Config) (*fetchhttp.Client, error) {
	opts := []fetchhttp.Option{
		fetchhttp.WithHTTPClient(&http.Client{Timeout: cfg.API.Timeout()}),
	}
	if cfg.API.UserAgent != "" {
		opts = append(opts, fetchhttp.WithUserAgent(cfg.API.UserAgent))
	}
	return fetchhttp.NewClient(cfg.API.BaseURL, opts...)
}

// NewHTTPBoundedStore wires a bounded facade to HTTP fetchers on client.
// collectionPath serves the full dataset as a JSON array and individual
// records at collectionPath/{key}.
func NewHTTPBoundedStore[T any](
	container *Container,
	client *fetchhttp.Client,
	collectionPath string,
	keyOf datastore.KeyFunc[T],
) *datastore.Bounded[T] {
	return NewBoundedStore(
		container,
		fetchhttp.AllFetcher[T](client, collectionPath),
		fetchhttp.KeyFetcher[T](client, collectionPath),
		keyOf,
	)
}

// NewHTTPPagedStore wires a paged facade to an HTTP page fetcher on client.
func NewHTTPPagedStore[T any](
	client *fetchhttp.Client,
	collectionPath string,
	capacity int,
) *datastore.Paged[T] {
	return datastore.NewPaged(fetchhttp.PageFetcher[T](client, collectionPath), capacity)
}
