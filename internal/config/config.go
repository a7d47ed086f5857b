// Package config loads and validates quickfind configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigName is the config file looked up at the vault root.
const DefaultConfigName = ".quickfind.yaml"

// Config is the complete quickfind configuration.
type Config struct {
	Index  IndexConfig  `yaml:"index"`
	Search SearchConfig `yaml:"search"`
	Watch  WatchConfig  `yaml:"watch"`
	Log    LogConfig    `yaml:"log"`
}

// IndexConfig configures document eligibility and the background build.
type IndexConfig struct {
	// Extensions lists the file extensions (without dot) eligible for
	// content indexing.
	Extensions []string `yaml:"extensions"`

	// MaxFileSize is the largest document in bytes that gets indexed.
	MaxFileSize int64 `yaml:"max_file_size"`

	// BuildBatchSize is how many documents the full build reads before
	// yielding to other work.
	BuildBatchSize int `yaml:"build_batch_size"`
}

// SearchConfig configures query behavior.
type SearchConfig struct {
	// MaxResults caps the ranked result list.
	MaxResults int `yaml:"max_results"`

	// MinContentQueryLength is the shortest query that triggers content
	// matching; shorter queries match paths only.
	MinContentQueryLength int `yaml:"min_content_query_length"`

	// PathCacheSize is the size of the lowercased-path LRU cache.
	PathCacheSize int `yaml:"path_cache_size"`
}

// WatchConfig configures the file watcher.
type WatchConfig struct {
	// EventBufferSize is the size of the watcher event channel buffer.
	EventBufferSize int `yaml:"event_buffer_size"`
}

// LogConfig configures structured logging.
type LogConfig struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `yaml:"level"`

	// File is the log file path. Empty uses the default under ~/.quickfind.
	File string `yaml:"file"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Index: IndexConfig{
			Extensions:     []string{"md", "txt", "canvas"},
			MaxFileSize:    1_000_000,
			BuildBatchSize: 30,
		},
		Search: SearchConfig{
			MaxResults:            200,
			MinContentQueryLength: 3,
			PathCacheSize:         4096,
		},
		Watch: WatchConfig{
			EventBufferSize: 1000,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads the config file at path, merging it over the defaults.
// A missing file is not an error; defaults are returned.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the configuration for invalid values.
func (c Config) Validate() error {
	if len(c.Index.Extensions) == 0 {
		return fmt.Errorf("config: index.extensions must not be empty")
	}
	if c.Index.MaxFileSize <= 0 {
		return fmt.Errorf("config: index.max_file_size must be positive, got %d", c.Index.MaxFileSize)
	}
	if c.Index.BuildBatchSize <= 0 {
		return fmt.Errorf("config: index.build_batch_size must be positive, got %d", c.Index.BuildBatchSize)
	}
	if c.Search.MaxResults <= 0 {
		return fmt.Errorf("config: search.max_results must be positive, got %d", c.Search.MaxResults)
	}
	if c.Search.MinContentQueryLength < 1 {
		return fmt.Errorf("config: search.min_content_query_length must be at least 1, got %d", c.Search.MinContentQueryLength)
	}
	if c.Search.PathCacheSize <= 0 {
		return fmt.Errorf("config: search.path_cache_size must be positive, got %d", c.Search.PathCacheSize)
	}
	if c.Watch.EventBufferSize <= 0 {
		return fmt.Errorf("config: watch.event_buffer_size must be positive, got %d", c.Watch.EventBufferSize)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("config: unknown log.level %q", c.Log.Level)
	}
	return nil
}
