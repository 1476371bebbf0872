// Package config loads gitwebhl settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/fwojciec/gitwebhl"
)

// Defaults applied to missing settings.
const (
	DefaultStyle = "github"
	DefaultTheme = "dark"
	DefaultJobs  = 4
)

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Config holds settings for the gitwebhl command.
type Config struct {
	RepoRoot        string `yaml:"repo_root"`         // gitweb's $projectroot
	Style           string `yaml:"style"`             // chroma style for HTML output
	Theme           string `yaml:"theme"`             // terminal viewer theme: dark or light
	LineNumberColor string `yaml:"line_number_color"` // color line numbers are reset to
	Jobs            int    `yaml:"jobs"`              // batch resolution workers
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

func (c *Config) applyDefaults() {
	if c.RepoRoot == "" {
		c.RepoRoot = "."
	}
	if c.Style == "" {
		c.Style = DefaultStyle
	}
	if c.Theme == "" {
		c.Theme = DefaultTheme
	}
	if c.LineNumberColor == "" {
		c.LineNumberColor = gitwebhl.DefaultLineNumberColor
	}
	if c.Jobs == 0 {
		c.Jobs = DefaultJobs
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Jobs < 1 {
		return fmt.Errorf("jobs must be at least 1, got %d", c.Jobs)
	}
	if !hexColor.MatchString(c.LineNumberColor) {
		return fmt.Errorf("line_number_color %q is not a hex color", c.LineNumberColor)
	}
	if c.Theme != "dark" && c.Theme != "light" {
		return fmt.Errorf("theme must be dark or light, got %q", c.Theme)
	}
	return nil
}

// Load reads the YAML file at path, applies defaults and validates the
// result. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("configuration file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read configuration file %s: %w", path, err)
	}

	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %s: %w", path, err)
	}
	c.applyDefaults()

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &c, nil
}
