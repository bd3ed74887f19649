// Package config holds the exclusion and marker configuration that drives
// root detection.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// ConfigDirName is the per-directory configuration folder, mirroring the
// layout of dotfile-based tool configs.
const ConfigDirName = ".rootfind"

// DefaultExclusions are directory basenames that establish exclusion
// boundaries: virtual envs, installed dependencies, build artifacts, caches.
var DefaultExclusions = []string{
	".venv",
	"venv",
	"node_modules",
	"__pycache__",
	"site-packages",
	".tox",
	"dist",
	"build",
	".egg-info",
	".mypy_cache",
	".pytest_cache",
	".ruff_cache",
	"target",
	"vendor",
	".gradle",
}

// DefaultMarkers are file or directory basenames whose presence marks a
// directory as a plausible project root.
var DefaultMarkers = []string{
	".git",
	".hg",
	"pyproject.toml",
	"setup.py",
	"package.json",
	"Cargo.toml",
	"go.mod",
	"pom.xml",
	"build.gradle",
	"CMakeLists.txt",
	"deno.json",
	"composer.json",
	"mix.exs",
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Format string `json:"format" mapstructure:"format"`
	Level  string `json:"level" mapstructure:"level"`
}

// Config is an immutable set of exclusion patterns, marker names, and the
// matching mode. Derive variants with WithExclusions / WithMarkers /
// WithCaseInsensitive instead of mutating.
type Config struct {
	Logging LoggingConfig

	exclusions      []string
	markers         []string
	caseInsensitive bool

	// Lookup sets, keys normalized once at construction time
	exclusionSet map[string]struct{}
	markerSet    map[string]struct{}
}

// New creates a config from explicit exclusion and marker lists.
func New(exclusions, markers []string, caseInsensitive bool) *Config {
	c := &Config{
		Logging:         LoggingConfig{Format: "human", Level: "info"},
		exclusions:      append([]string(nil), exclusions...),
		markers:         append([]string(nil), markers...),
		caseInsensitive: caseInsensitive,
	}
	c.compile()
	return c
}

// Default returns a config with the stock exclusion and marker sets.
// Matching is case-sensitive unless explicitly enabled; the host platform
// is never consulted.
func Default() *Config {
	return New(DefaultExclusions, DefaultMarkers, false)
}

func (c *Config) compile() {
	c.exclusionSet = make(map[string]struct{}, len(c.exclusions))
	for _, e := range c.exclusions {
		c.exclusionSet[c.normalize(e)] = struct{}{}
	}
	c.markerSet = make(map[string]struct{}, len(c.markers))
	for _, m := range c.markers {
		c.markerSet[c.normalize(m)] = struct{}{}
	}
}

func (c *Config) normalize(name string) string {
	if c.caseInsensitive {
		return strings.ToLower(name)
	}
	return name
}

// WithExclusions returns a derived config with additional exclusion patterns.
func (c *Config) WithExclusions(extra ...string) *Config {
	return c.derive(append(append([]string(nil), c.exclusions...), extra...), c.markers, c.caseInsensitive)
}

// WithMarkers returns a derived config with additional marker names.
func (c *Config) WithMarkers(extra ...string) *Config {
	return c.derive(c.exclusions, append(append([]string(nil), c.markers...), extra...), c.caseInsensitive)
}

// WithCaseInsensitive returns a derived config with the given matching mode.
func (c *Config) WithCaseInsensitive(v bool) *Config {
	return c.derive(c.exclusions, c.markers, v)
}

func (c *Config) derive(exclusions, markers []string, caseInsensitive bool) *Config {
	next := New(exclusions, markers, caseInsensitive)
	next.Logging = c.Logging
	return next
}

// Exclusions returns the configured exclusion patterns.
func (c *Config) Exclusions() []string {
	return append([]string(nil), c.exclusions...)
}

// Markers returns the configured marker names.
func (c *Config) Markers() []string {
	return append([]string(nil), c.markers...)
}

// CaseInsensitive reports whether name matching ignores case.
func (c *Config) CaseInsensitive() bool {
	return c.caseInsensitive
}

// MatchesExclusion reports whether a directory basename establishes an
// exclusion boundary.
func (c *Config) MatchesExclusion(name string) bool {
	_, ok := c.exclusionSet[c.normalize(name)]
	return ok
}

// MatchesMarker reports whether a directory entry name is a project marker.
func (c *Config) MatchesMarker(name string) bool {
	_, ok := c.markerSet[c.normalize(name)]
	return ok
}

// Validate checks the configuration. Empty exclusion or marker sets are
// valid (every file becomes an orphan, nothing is excluded); individual
// entries must be plain basenames.
func (c *Config) Validate() error {
	for _, e := range c.exclusions {
		if err := validateEntry("exclusions", e); err != nil {
			return err
		}
	}
	for _, m := range c.markers {
		if err := validateEntry("markers", m); err != nil {
			return err
		}
	}
	switch c.Logging.Format {
	case "", "json", "human":
	default:
		return &ConfigError{Field: "logging.format", Message: "must be json or human"}
	}
	return nil
}

func validateEntry(field, name string) error {
	if strings.TrimSpace(name) == "" {
		return &ConfigError{Field: field, Message: "entries must not be empty"}
	}
	if strings.ContainsAny(name, `/\`) {
		return &ConfigError{Field: field, Message: "entries must be basenames, not paths: " + name}
	}
	return nil
}

// fileConfig is the on-disk shape of .rootfind/config.json
type fileConfig struct {
	Exclusions      []string      `json:"exclusions" mapstructure:"exclusions"`
	Markers         []string      `json:"markers" mapstructure:"markers"`
	ExtendDefaults  *bool         `json:"extendDefaults" mapstructure:"extendDefaults"`
	CaseInsensitive bool          `json:"caseInsensitive" mapstructure:"caseInsensitive"`
	Logging         LoggingConfig `json:"logging" mapstructure:"logging"`
}

// Load reads configuration from <dir>/.rootfind/config.json. A missing file
// yields the default config. By default file entries extend the stock sets;
// set extendDefaults to false to replace them. Validation happens here, not
// during per-file resolution.
func Load(dir string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(dir, ConfigDirName))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return Default(), nil
		}
		return nil, &ConfigError{Field: "config.json", Message: err.Error()}
	}

	var fc fileConfig
	if err := v.Unmarshal(&fc); err != nil {
		return nil, &ConfigError{Field: "config.json", Message: err.Error()}
	}

	extend := fc.ExtendDefaults == nil || *fc.ExtendDefaults

	var cfg *Config
	if extend {
		cfg = New(append(append([]string(nil), DefaultExclusions...), fc.Exclusions...),
			append(append([]string(nil), DefaultMarkers...), fc.Markers...),
			fc.CaseInsensitive)
	} else {
		cfg = New(fc.Exclusions, fc.Markers, fc.CaseInsensitive)
	}
	if fc.Logging.Format != "" || fc.Logging.Level != "" {
		cfg.Logging = fc.Logging
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to <dir>/.rootfind/config.json
func (c *Config) Save(dir string) error {
	configDir := filepath.Join(dir, ConfigDirName)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return err
	}

	extend := false
	data, err := json.MarshalIndent(fileConfig{
		Exclusions:      c.exclusions,
		Markers:         c.markers,
		ExtendDefaults:  &extend,
		CaseInsensitive: c.caseInsensitive,
		Logging:         c.Logging,
	}, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(configDir, "config.json"), data, 0644)
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}
