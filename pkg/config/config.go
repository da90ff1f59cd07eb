package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/goliatone/go-viewstore/cache"
)

// Config captures the application-level settings the composition root needs:
// where the API lives, how the shared lookup cache is sized, and the page
// size used for incremental datasets.
type Config struct {
	API    APIConfig    `toml:"api"`
	Cache  CacheConfig  `toml:"cache"`
	Paging PagingConfig `toml:"paging"`
}

// APIConfig configures the HTTP fetch client.
type APIConfig struct {
	BaseURL        string `toml:"base_url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	UserAgent      string `toml:"user_agent"`
}

// CacheConfig configures the shared lookup cache.
type CacheConfig struct {
	Capacity   int `toml:"capacity"`
	NumShards  int `toml:"num_shards"`
	TTLSeconds int `toml:"ttl_seconds"`
}

// PagingConfig configures incremental datasets.
type PagingConfig struct {
	PageSize int `toml:"page_size"`
}

const (
	defaultBaseURL        = "http://127.0.0.1:8080"
	defaultTimeoutSeconds = 10
	defaultPageSize       = 20
)

// Default returns a Config populated with working defaults.
func Default() Config {
	cacheDefaults := cache.DefaultConfig()
	return Config{
		API: APIConfig{
			BaseURL:        defaultBaseURL,
			TimeoutSeconds: defaultTimeoutSeconds,
		},
		Cache: CacheConfig{
			Capacity:   cacheDefaults.Capacity,
			NumShards:  cacheDefaults.NumShards,
			TTLSeconds: int(cacheDefaults.TTL / time.Second),
		},
		Paging: PagingConfig{
			PageSize: defaultPageSize,
		},
	}
}

// Load parses the TOML config at path, falling back to defaults when the file
// is missing. Zero-valued fields in the file inherit their defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw Config
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.merge(raw)

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration values.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.API),
		validation.Field(&c.Cache),
		validation.Field(&c.Paging),
	)
}

// Validate checks the API settings.
func (c APIConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.BaseURL, validation.Required),
		validation.Field(&c.TimeoutSeconds, validation.Min(1)),
	)
}

// Validate checks the cache sizing.
func (c CacheConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Capacity, validation.Min(1)),
		validation.Field(&c.NumShards, validation.Min(1)),
		validation.Field(&c.TTLSeconds, validation.Min(1)),
	)
}

// Validate checks the paging settings.
func (c PagingConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.PageSize, validation.Min(1)),
	)
}

// CacheConfig converts the TOML shape into the cache package's Config.
func (c Config) CacheConfig() cache.Config {
	cfg := cache.DefaultConfig()
	cfg.Capacity = c.Cache.Capacity
	cfg.NumShards = c.Cache.NumShards
	cfg.TTL = time.Duration(c.Cache.TTLSeconds) * time.Second
	return cfg
}

// Timeout returns the API timeout as a duration.
func (c APIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func (c *Config) merge(raw Config) {
	if v := strings.TrimSpace(raw.API.BaseURL); v != "" {
		c.API.BaseURL = v
	}
	if raw.API.TimeoutSeconds > 0 {
		c.API.TimeoutSeconds = raw.API.TimeoutSeconds
	}
	if v := strings.TrimSpace(raw.API.UserAgent); v != "" {
		c.API.UserAgent = v
	}
	if raw.Cache.Capacity > 0 {
		c.Cache.Capacity = raw.Cache.Capacity
	}
	if raw.Cache.NumShards > 0 {
		c.Cache.NumShards = raw.Cache.NumShards
	}
	if raw.Cache.TTLSeconds > 0 {
		c.Cache.TTLSeconds = raw.Cache.TTLSeconds
	}
	if raw.Paging.PageSize > 0 {
		c.Paging.PageSize = raw.Paging.PageSize
	}
}
