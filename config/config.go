// ABOUTME: Server and playground configuration loaded with koanf: defaults, then an optional YAML file,
// ABOUTME: then STORYBOOK_* environment overrides. Command-line flags are applied on top by the CLI.
package config

import (
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// defaultOrigins is used when allowed_origins is not configured. It is
// applied after unmarshalling so a configured list replaces it outright.
var defaultOrigins = []string{"http://localhost:*", "http://127.0.0.1:*"}

// EnvPrefix is the prefix of environment variables overriding file values.
const EnvPrefix = "STORYBOOK_"

// DefaultFile is the config file read when no path is given.
const DefaultFile = "storybook.yml"

// Config is the top-level storybook configuration, corresponding to storybook.yml.
type Config struct {
	Addr              string        `yaml:"addr" koanf:"addr"`
	SiteName          string        `yaml:"site_name" koanf:"site_name"`
	CatalogPath       string        `yaml:"catalog_path" koanf:"catalog_path"`
	WatchCatalog      bool          `yaml:"watch_catalog" koanf:"watch_catalog"`
	DocsCacheTTL      time.Duration `yaml:"docs_cache_ttl" koanf:"docs_cache_ttl"`
	AllowedOrigins    []string      `yaml:"allowed_origins" koanf:"allowed_origins"`
	LogLevel          string        `yaml:"log_level" koanf:"log_level"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout" koanf:"read_header_timeout"`
	ShutdownTimeout   time.Duration `yaml:"shutdown_timeout" koanf:"shutdown_timeout"`
}

// DefaultConfig returns the configuration used when nothing overrides it.
func DefaultConfig() *Config {
	return &Config{
		Addr:              "127.0.0.1:6006",
		SiteName:          "Storybook UI",
		DocsCacheTTL:      10 * time.Minute,
		AllowedOrigins:    slices.Clone(defaultOrigins),
		LogLevel:          "info",
		ReadHeaderTimeout: 10 * time.Second,
		ShutdownTimeout:   10 * time.Second,
	}
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (STORYBOOK_*). An empty path means
// DefaultFile; a missing file is not an error.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultFile
	}
	k := koanf.New(".")

	cfg := DefaultConfig()
	cfg.AllowedOrigins = nil

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// STORYBOOK_CATALOG_PATH -> catalog_path, etc.
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	cfg.AllowedOrigins = splitOrigins(cfg.AllowedOrigins)
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = slices.Clone(defaultOrigins)
	}

	return cfg, nil
}

// splitOrigins expands comma-separated entries, which is how a list arrives
// from a single environment variable.
func splitOrigins(in []string) []string {
	var out []string
	for _, entry := range in {
		for _, o := range strings.Split(entry, ",") {
			if o = strings.TrimSpace(o); o != "" {
				out = append(out, o)
			}
		}
	}
	return out
}

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr is required")
	}
	if c.SiteName == "" {
		return fmt.Errorf("site_name is required")
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q: must be one of debug, info, warn, error", c.LogLevel)
	}
	if c.WatchCatalog && c.CatalogPath == "" {
		return fmt.Errorf("watch_catalog needs catalog_path")
	}
	if c.DocsCacheTTL <= 0 {
		return fmt.Errorf("docs_cache_ttl must be positive")
	}
	if c.ReadHeaderTimeout <= 0 {
		return fmt.Errorf("read_header_timeout must be positive")
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown_timeout must be positive")
	}
	return nil
}
