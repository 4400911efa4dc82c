package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/l3aro/go-jsx-lint/pkg/lint"
)

// Config holds all configuration for jsxlint. Unrecognized YAML keys are
// ignored, not errors. A loaded Config is read-only and safe to share by
// reference across concurrent lint workers.
type Config struct {
	// Pragma overrides the JSX factory identifier for every file, winning
	// over @jsx directive comments. Dotted paths are allowed ("Foo.Bar").
	Pragma string `yaml:"pragma" env:"JSXLINT_PRAGMA"`

	// Factory is the legacy component-factory call name for the classifier.
	Factory string `yaml:"factory" env:"JSXLINT_FACTORY"`

	// NoLiterals configures the literal rules.
	NoLiterals NoLiteralsConfig `yaml:"no_literals"`

	// NoMultiComp enables the one-component-per-file rule.
	NoMultiComp bool `yaml:"no_multi_comp" env:"JSXLINT_NO_MULTI_COMP"`

	// CachePath is where lint results are persisted between runs.
	CachePath string `yaml:"cache_path" env:"JSXLINT_CACHE_PATH"`

	// Workers bounds the number of files analyzed in parallel.
	Workers int `yaml:"workers" env:"JSXLINT_WORKERS"`

	// Verbose enables debug logging.
	Verbose bool `yaml:"verbose" env:"JSXLINT_VERBOSE"`
}

// NoLiteralsConfig mirrors the literal rule's option surface.
type NoLiteralsConfig struct {
	Enabled            bool     `yaml:"enabled"`
	NoStrings          bool     `yaml:"no_strings"`
	AllowedStrings     []string `yaml:"allowed_strings"`
	IgnoreProps        bool     `yaml:"ignore_props"`
	NoAttributeStrings bool     `yaml:"no_attribute_strings"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Factory:   "createReactClass",
		CachePath: filepath.Join(".jsxlint", "cache.msgpack"),
		Workers:   4,
	}
}

// globalConfigFilePath returns the global config file path (~/.jsxlint/config.yaml)
func globalConfigFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".jsxlint", "config.yaml")
	}
	return filepath.Join(home, ".jsxlint", "config.yaml")
}

// ProjectConfigFilePath returns the project-level config file path.
func ProjectConfigFilePath() string {
	return ".jsxlint.yaml"
}

// Load reads configuration with the following priority (highest to lowest):
// 1. Environment variables
// 2. Project-level config (./.jsxlint.yaml)
// 3. Global config (~/.jsxlint/config.yaml)
// 4. Defaults
func Load() (*Config, error) {
	cfg := DefaultConfig()

	globalConfigPath := globalConfigFilePath()
	if data, err := os.ReadFile(globalConfigPath); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", globalConfigPath, err)
		}
	}

	projectConfigPath := ProjectConfigFilePath()
	if data, err := os.ReadFile(projectConfigPath); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", projectConfigPath, err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromFile reads configuration from a specific YAML file path.
func LoadFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	if data, err := os.ReadFile(path); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to the specified YAML file path, creating
// parent directories if they don't exist.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("JSXLINT_PRAGMA"); v != "" {
		cfg.Pragma = v
	}
	if v := os.Getenv("JSXLINT_FACTORY"); v != "" {
		cfg.Factory = v
	}
	if v := os.Getenv("JSXLINT_NO_MULTI_COMP"); v != "" {
		cfg.NoMultiComp = isTruthy(v)
	}
	if v := os.Getenv("JSXLINT_CACHE_PATH"); v != "" {
		cfg.CachePath = v
	}
	if v := os.Getenv("JSXLINT_WORKERS"); v != "" {
		if i := parseInt(v); i > 0 {
			cfg.Workers = i
		}
	}
	if v := os.Getenv("JSXLINT_VERBOSE"); v != "" {
		cfg.Verbose = isTruthy(v)
	}
}

// pragmaPattern matches an identifier or dotted identifier path.
var pragmaPattern = regexp.MustCompile(`^[$A-Za-z_][$\w]*(\.[$A-Za-z_][$\w]*)*$`)

// Validate checks that the configuration has valid required fields.
func (c *Config) Validate() error {
	if c.Pragma != "" && !pragmaPattern.MatchString(c.Pragma) {
		return fmt.Errorf("pragma must be an identifier or dotted path, got %q", c.Pragma)
	}
	if c.Factory != "" && !pragmaPattern.MatchString(c.Factory) {
		return fmt.Errorf("factory must be an identifier or dotted path, got %q", c.Factory)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be positive")
	}
	return nil
}

// Options maps the config to the per-file rule options consumed by the
// runner.
func (c *Config) Options() lint.Options {
	return lint.Options{
		PragmaOverride:     c.Pragma,
		Factory:            c.Factory,
		NoLiterals:         c.NoLiterals.Enabled,
		NoStrings:          c.NoLiterals.NoStrings,
		AllowedStrings:     c.NoLiterals.AllowedStrings,
		IgnoreProps:        c.NoLiterals.IgnoreProps,
		NoAttributeStrings: c.NoLiterals.NoAttributeStrings,
		NoMultiComp:        c.NoMultiComp,
	}
}

// isTruthy interprets common boolean-ish environment values.
func isTruthy(v string) bool {
	return v == "true" || v == "1" || v == "yes"
}

// parseInt attempts to parse a string as int.
func parseInt(s string) int {
	var i int
	if _, err := fmt.Sscanf(s, "%d", &i); err != nil {
		return 0
	}
	return i
}
