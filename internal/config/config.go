package config

import (
	"errors"
	"fmt"

	"github.com/dshills/findgroup/internal/pane"
	"github.com/dshills/findgroup/internal/report"
)

// ErrInvalidValue is returned when a setting is out of range
var ErrInvalidValue = errors.New("invalid config value")

// Config is the resolved set of find settings
type Config struct {
	MatchCase     bool
	WholeWord     bool
	Regex         bool
	Wrap          bool
	Format        string
	Pane          string
	IncludeTests  bool
	IncludeVendor bool
	Workers       int // 0 means one per CPU
	MaxWidth      int // 0 means no truncation
	Extensions    []string

	// Source is the file the settings were read from, empty when none was found
	Source string
}

// File mirrors the keys accepted in a config file. Unset keys stay nil and
// leave the current value alone.
type File struct {
	MatchCase     *bool    `yaml:"match_case" toml:"match_case"`
	WholeWord     *bool    `yaml:"whole_word" toml:"whole_word"`
	Regex         *bool    `yaml:"regex" toml:"regex"`
	Wrap          *bool    `yaml:"wrap" toml:"wrap"`
	Format        *string  `yaml:"format" toml:"format"`
	Pane          *string  `yaml:"pane" toml:"pane"`
	IncludeTests  *bool    `yaml:"include_tests" toml:"include_tests"`
	IncludeVendor *bool    `yaml:"include_vendor" toml:"include_vendor"`
	Workers       *int     `yaml:"workers" toml:"workers"`
	MaxWidth      *int     `yaml:"max_width" toml:"max_width"`
	Extensions    []string `yaml:"extensions" toml:"extensions"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		MatchCase:     false,
		WholeWord:     true,
		Regex:         false,
		Wrap:          true,
		Format:        string(report.FormatRegion),
		Pane:          pane.DefaultPaneName,
		IncludeTests:  true,
		IncludeVendor: false,
	}
}

// Apply overlays every key set in f
func (c *Config) Apply(f File) {
	setBool(&c.MatchCase, f.MatchCase)
	setBool(&c.WholeWord, f.WholeWord)
	setBool(&c.Regex, f.Regex)
	setBool(&c.Wrap, f.Wrap)
	setBool(&c.IncludeTests, f.IncludeTests)
	setBool(&c.IncludeVendor, f.IncludeVendor)
	if f.Format != nil {
		c.Format = *f.Format
	}
	if f.Pane != nil {
		c.Pane = *f.Pane
	}
	if f.Workers != nil {
		c.Workers = *f.Workers
	}
	if f.MaxWidth != nil {
		c.MaxWidth = *f.MaxWidth
	}
	if f.Extensions != nil {
		c.Extensions = append([]string(nil), f.Extensions...)
	}
}

// Validate checks that every setting is usable
func (c Config) Validate() error {
	if _, err := report.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("%w: format: %v", ErrInvalidValue, err)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be >= 0, got %d", ErrInvalidValue, c.Workers)
	}
	if c.MaxWidth < 0 {
		return fmt.Errorf("%w: max_width must be >= 0, got %d", ErrInvalidValue, c.MaxWidth)
	}
	for _, ext := range c.Extensions {
		if ext == "" || ext == "." {
			return fmt.Errorf("%w: empty extension", ErrInvalidValue)
		}
	}
	return nil
}

// Resolve builds the settings for a run started in dir: defaults, then the
// first config file found. explicitPath (from --config) wins over the
// FINDGROUP_CONFIG variable.
func Resolve(dir, explicitPath string) (Config, error) {
	cfg := Default()

	path, err := Find(dir, ExplicitPath(explicitPath), xdgConfigHome(), "")
	if err != nil {
		return cfg, fmt.Errorf("failed to find config: %w", err)
	}
	if path == "" {
		return cfg, nil
	}

	f, err := Load(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Apply(f)
	cfg.Source = path

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}
