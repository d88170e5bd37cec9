// SPDX-License-Identifier: MIT

// Package config holds the matcalc settings: a YAML file loaded over defaults,
// with command-line flags applied on top by the caller.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/densemat/matrixio"
)

const (
	DefaultFormat    = "yaml"
	DefaultLogLevel  = "info"
	DefaultPrecision = matrixio.DefaultPrecision
)

// ErrInvalid is returned by Validate for any out-of-range setting.
var ErrInvalid = errors.New("config: invalid value")

// Config is the matcalc settings document.
type Config struct {
	Format    string `yaml:"format"`
	LogLevel  string `yaml:"log_level"`
	Precision int    `yaml:"precision"`
}

// Default returns yaml output, info logging and shortest-form precision.
func Default() *Config {
	return &Config{
		Format:    DefaultFormat,
		LogLevel:  DefaultLogLevel,
		Precision: DefaultPrecision,
	}
}

// Load reads path over Default and validates the result.
// Keys absent from the file keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err = dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes cfg to path as YAML.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	return nil
}

// Validate checks every field; the first failure is reported.
func (c *Config) Validate() error {
	if _, err := matrixio.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("format: %w: %w", ErrInvalid, err)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Precision < -1 {
		return fmt.Errorf("precision %d: must be >= -1: %w", c.Precision, ErrInvalid)
	}

	return nil
}

// OutputFormat returns the parsed Format; call after Validate.
func (c *Config) OutputFormat() matrixio.Format {
	f, err := matrixio.ParseFormat(c.Format)
	if err != nil {
		return matrixio.FormatYAML
	}

	return f
}

// ParseLevel maps debug|info|warn|error (case-insensitive) to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}

	return slog.LevelInfo, fmt.Errorf("log_level %q: %w", s, ErrInvalid)
}
