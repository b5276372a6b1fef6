// Package config loads boxkit settings from YAML.
package config

import (
	"errors"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level settings document.
type Config struct {
	Engine EngineConfig `json:"engine" yaml:"engine"`
	Mesh   MeshConfig   `json:"mesh" yaml:"mesh"`
	Log    LogConfig    `json:"log" yaml:"log"`
}

type EngineConfig struct {
	// Timeout bounds a single script evaluation.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

type MeshConfig struct {
	// Cells is the marching cubes resolution along a solid's longest axis.
	Cells int `json:"cells" yaml:"cells"`
}

type LogConfig struct {
	Level    string `json:"level" yaml:"level"`       // debug, info, warn or error
	Encoding string `json:"encoding" yaml:"encoding"` // json or console
}

// Default returns the settings used when no file is given.
func Default() *Config {
	return &Config{
		Engine: EngineConfig{Timeout: 5 * time.Second},
		Mesh:   MeshConfig{Cells: 64},
		Log:    LogConfig{Level: "info", Encoding: "json"},
	}
}

// LoadYAML reads settings from r on top of Default. Keys missing from the
// document keep their defaults and an empty document is valid.
func LoadYAML(r io.Reader) (*Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate rejects settings the rest of the program cannot use.
func (c *Config) Validate() error {
	var errs []error
	if c.Engine.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("engine.timeout must be positive, got %s", c.Engine.Timeout))
	}
	if c.Mesh.Cells < 1 {
		errs = append(errs, fmt.Errorf("mesh.cells must be at least 1, got %d", c.Mesh.Cells))
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level %q is not one of debug, info, warn, error", c.Log.Level))
	}
	switch c.Log.Encoding {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("log.encoding %q is not one of json, console", c.Log.Encoding))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
