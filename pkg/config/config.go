package config

import (
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/flakefmt/pkg/consts"
	"gopkg.in/yaml.v3"
)

// Config represents the formatter configuration.
type Config struct {
	// Strict rejects statements the formatter has no layout for instead of
	// dropping them from the output
	Strict bool `yaml:"strict"`

	// Extensions lists the file extensions formatted when walking directories
	Extensions []string `yaml:"extensions,omitempty"`

	// Exclude lists glob patterns (filepath.Match syntax) of files and
	// directories to skip when walking directories
	Exclude []string `yaml:"exclude,omitempty"`

	// Indent is the number of spaces per indent level
	Indent int `yaml:"indent,omitempty"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// LoadConfig parses a configuration from the provided io.Reader.
//
// The function expects YAML-formatted data. Missing fields fall back to their
// defaults: ".sql" files only, no exclusions and an indent of two spaces.
// Extensions are normalized to start with a dot.
//
// Example:
//
//	yamlData := `
//	strict: true
//	extensions: [.sql, .ddl]
//	exclude:
//	  - vendor
//	  - "*.generated.sql"
//	`
//
//	cfg, err := config.LoadConfig(strings.NewReader(yamlData))
//	if err != nil {
//		panic(err)
//	}
//
//	fmt.Println(cfg.Extensions) // [.sql .ddl]
func LoadConfig(r io.Reader) (*Config, error) {
	var cfg Config
	// An empty document leaves every field at its default.
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	if cfg.Indent < 0 {
		return nil, errors.Errorf("invalid indent: %d", cfg.Indent)
	}

	for _, pattern := range cfg.Exclude {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return nil, errors.Wrapf(err, "invalid exclude pattern: %s", pattern)
		}
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// LoadConfigFile loads a configuration from the specified file path.
// This is a convenience function that opens the file and calls LoadConfig.
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	return LoadConfig(f)
}

// Load loads the config file at path. When the path was not given explicitly a
// missing file yields the default configuration.
func Load(path string, explicit bool) (*Config, error) {
	if !explicit {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return Default(), nil
		}
	}

	return LoadConfigFile(path)
}

// HasExtension reports whether name has one of the configured extensions.
// The comparison ignores case.
func (c *Config) HasExtension(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return slices.ContainsFunc(c.Extensions, func(e string) bool {
		return strings.ToLower(e) == ext
	})
}

// Excluded reports whether rel, a slash or OS separated path relative to the
// walked root, matches an exclude pattern. Patterns are matched against the
// whole path and against its base name.
func (c *Config) Excluded(rel string) bool {
	rel = filepath.ToSlash(rel)
	base := filepath.Base(rel)

	for _, pattern := range c.Exclude {
		if ok, _ := filepath.Match(pattern, rel); ok {
			return true
		}
		if ok, _ := filepath.Match(pattern, base); ok {
			return true
		}
	}

	return false
}

func (c *Config) applyDefaults() {
	if len(c.Extensions) == 0 {
		c.Extensions = slices.Clone(consts.DefaultExtensions)
	}

	for i, ext := range c.Extensions {
		if !strings.HasPrefix(ext, ".") {
			c.Extensions[i] = "." + ext
		}
	}

	if c.Indent == 0 {
		c.Indent = consts.DefaultIndent
	}
}
