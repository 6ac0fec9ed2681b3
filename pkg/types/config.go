package types

import "time"

// HTTPConfig holds shared HTTP settings used by components that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "archive-search/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`

	// MaxRetries bounds retries on HTTP 429/503 (0 uses the default of 5).
	MaxRetries int `json:"max_retries" yaml:"max_retries" mapstructure:"max_retries"`
}

// CacheConfig holds settings for the raw page cache.
type CacheConfig struct {
	// Enabled turns the cache on.
	Enabled bool `json:"enabled" yaml:"enabled" mapstructure:"enabled"`

	// Dir is the directory holding pages.db.
	Dir string `json:"dir" yaml:"dir" mapstructure:"dir"`

	// TTL is how long a cached page stays fresh. Zero or negative means
	// entries never expire.
	TTL time.Duration `json:"ttl" yaml:"ttl" mapstructure:"ttl"`
}

// ArchiveConfig holds settings for the aggregator client.
type ArchiveConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// BaseURL is the aggregator root (e.g. "https://annas-archive.org").
	BaseURL string `json:"base_url" yaml:"base_url" mapstructure:"base_url"`

	// MaxResults caps the number of search results returned (0 = no cap).
	MaxResults int `json:"max_results" yaml:"max_results" mapstructure:"max_results"`

	// Cache configures the raw page cache.
	Cache CacheConfig `json:"cache" yaml:"cache" mapstructure:"cache"`
}
