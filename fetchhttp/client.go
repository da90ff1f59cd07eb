package fetchhttp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goliatone/go-viewstore/datastore"
)

const (
	defaultUserAgent = "go-viewstore/0.1"
	requestTimeout   = 10 * time.Second
)

// Client issues the JSON GET requests behind the datastore fetch functions.
// It maps transport and HTTP failures onto the datastore error taxonomy so
// the facades and view models never see raw net/http errors.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client, e.g. to adjust the
// timeout or install a test transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithUserAgent overrides the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// NewClient builds a Client for the given base URL. A bare host:port value
// is promoted to http://.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	c := &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Client) getJSON(ctx context.Context, rel *url.URL, dest any) error {
	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return &datastore.NetworkError{URL: reqURL.String(), Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s: %w", reqURL.String(), datastore.ErrNotFound)
	case resp.StatusCode >= 400:
		return &datastore.ServerError{URL: reqURL.String(), StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response from %s: %w", reqURL.String(), err)
	}
	return nil
}

// AllFetcher returns a FetchAllFunc that GETs path and decodes a JSON array
// of records.
func AllFetcher[T any](c *Client, path string) datastore.FetchAllFunc[T] {
	return func(ctx context.Context) ([]T, error) {
		var records []T
		rel := &url.URL{Path: path}
		if err := c.getJSON(ctx, rel, &records); err != nil {
			return nil, err
		}
		return records, nil
	}
}

// KeyFetcher returns a FetchByKeyFunc that GETs path/{key} and decodes a
// single record. A 404 from the source surfaces as datastore.ErrNotFound.
func KeyFetcher[T any](c *Client, path string) datastore.FetchByKeyFunc[T] {
	trimmed := strings.TrimRight(path, "/")
	return func(ctx context.Context, key int) (T, error) {
		var record T
		rel := &url.URL{Path: trimmed + "/" + strconv.Itoa(key)}
		if err := c.getJSON(ctx, rel, &record); err != nil {
			var zero T
			return zero, err
		}
		return record, nil
	}
}

// PageFetcher returns a FetchPageFunc that GETs path with offset and limit
// query parameters and decodes a JSON array of records.
func PageFetcher[T any](c *Client, path string) datastore.FetchPageFunc[T] {
	return func(ctx context.Context, start, limit int) ([]T, error) {
		values := url.Values{}
		values.Set("offset", strconv.Itoa(start))
		values.Set("limit", strconv.Itoa(limit))

		var records []T
		rel := &url.URL{Path: path, RawQuery: values.Encode()}
		if err := c.getJSON(ctx, rel, &records); err != nil {
			return nil, err
		}
		return records, nil
	}
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, fmt.Errorf("base url required")
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", raw, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
