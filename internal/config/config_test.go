package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name     string
		got      interface{}
		expected interface{}
	}{
		{"Pragma", cfg.Pragma, ""},
		{"Factory", cfg.Factory, "createReactClass"},
		{"NoLiterals.Enabled", cfg.NoLiterals.Enabled, false},
		{"NoMultiComp", cfg.NoMultiComp, false},
		{"CachePath", cfg.CachePath, filepath.Join(".jsxlint", "cache.msgpack")},
		{"Workers", cfg.Workers, 4},
		{"Verbose", cfg.Verbose, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("DefaultConfig().%s = %v, want %v", tt.name, tt.got, tt.expected)
			}
		})
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"dotted pragma", func(c *Config) { c.Pragma = "Foo.Bar" }, false},
		{"pragma with digits", func(c *Config) { c.Pragma = "$_v2" }, false},
		{"pragma not an identifier", func(c *Config) { c.Pragma = "not an identifier" }, true},
		{"pragma leading dot", func(c *Config) { c.Pragma = ".React" }, true},
		{"bad factory", func(c *Config) { c.Factory = "make()" }, true},
		{"zero workers", func(c *Config) { c.Workers = 0 }, true},
		{"negative workers", func(c *Config) { c.Workers = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	content := `pragma: Preact
factory: createClass
no_literals:
  enabled: true
  no_strings: true
  allowed_strings:
    - "&nbsp;"
  ignore_props: false
  no_attribute_strings: true
no_multi_comp: true
workers: 8
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}

	if cfg.Pragma != "Preact" {
		t.Errorf("Pragma = %q, want Preact", cfg.Pragma)
	}
	if cfg.Factory != "createClass" {
		t.Errorf("Factory = %q, want createClass", cfg.Factory)
	}
	if !cfg.NoLiterals.Enabled || !cfg.NoLiterals.NoStrings || !cfg.NoLiterals.NoAttributeStrings {
		t.Errorf("NoLiterals = %+v, want enabled with strings and attributes", cfg.NoLiterals)
	}
	if len(cfg.NoLiterals.AllowedStrings) != 1 || cfg.NoLiterals.AllowedStrings[0] != "&nbsp;" {
		t.Errorf("AllowedStrings = %v, want [&nbsp;]", cfg.NoLiterals.AllowedStrings)
	}
	if !cfg.NoMultiComp {
		t.Error("NoMultiComp = false, want true")
	}
	if cfg.Workers != 8 {
		t.Errorf("Workers = %d, want 8", cfg.Workers)
	}
}

func TestLoadFromFilePartial(t *testing.T) {
	// unspecified keys keep their defaults
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("pragma: Inferno\n"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}
	if cfg.Pragma != "Inferno" {
		t.Errorf("Pragma = %q, want Inferno", cfg.Pragma)
	}
	if cfg.Factory != "createReactClass" {
		t.Errorf("Factory = %q, want default", cfg.Factory)
	}
	if cfg.Workers != 4 {
		t.Errorf("Workers = %d, want default 4", cfg.Workers)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Pragma = "Foo"
	cfg.NoLiterals.Enabled = true
	cfg.NoLiterals.AllowedStrings = []string{"x", "y"}

	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}
	if loaded.Pragma != "Foo" || !loaded.NoLiterals.Enabled {
		t.Errorf("round trip lost values: %+v", loaded)
	}
	if len(loaded.NoLiterals.AllowedStrings) != 2 {
		t.Errorf("AllowedStrings = %v, want 2 entries", loaded.NoLiterals.AllowedStrings)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("JSXLINT_PRAGMA", "Hyperapp")
	t.Setenv("JSXLINT_NO_MULTI_COMP", "true")
	t.Setenv("JSXLINT_WORKERS", "2")
	t.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Pragma != "Hyperapp" {
		t.Errorf("Pragma = %q, want Hyperapp", cfg.Pragma)
	}
	if !cfg.NoMultiComp {
		t.Error("NoMultiComp = false, want true from env")
	}
	if cfg.Workers != 2 {
		t.Errorf("Workers = %d, want 2", cfg.Workers)
	}
}

func TestOptionsMapping(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Pragma = "Preact"
	cfg.NoLiterals.Enabled = true
	cfg.NoLiterals.NoStrings = true
	cfg.NoLiterals.AllowedStrings = []string{"ok"}
	cfg.NoMultiComp = true

	opts := cfg.Options()
	if opts.PragmaOverride != "Preact" {
		t.Errorf("PragmaOverride = %q, want Preact", opts.PragmaOverride)
	}
	if !opts.NoLiterals || !opts.NoStrings || !opts.NoMultiComp {
		t.Errorf("Options() = %+v, lost boolean flags", opts)
	}
	if opts.Factory != "createReactClass" {
		t.Errorf("Factory = %q, want createReactClass", opts.Factory)
	}
	if len(opts.AllowedStrings) != 1 {
		t.Errorf("AllowedStrings = %v, want 1 entry", opts.AllowedStrings)
	}
}
