// Package fetchhttp implements the datastore fetch ports over a JSON HTTP
// API.
//
// AllFetcher, KeyFetcher, and PageFetcher adapt one shared Client into the
// function types the facades consume: collection endpoints return JSON
// arrays, key lookups GET path/{key}, and page fetches pass offset and limit
// query parameters. HTTP failures surface as the datastore error taxonomy:
// transport errors as *datastore.NetworkError, 404s as datastore.ErrNotFound,
// and other >= 400 statuses as *datastore.ServerError.
//
// The Client imposes the request timeout; the core data-access layer does
// not. Fetcher paths are absolute against the client's base URL host.
package fetchhttp
