// SPDX-License-Identifier: MIT

package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densemat/config"
	"github.com/katalvlaran/densemat/matrixio"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "matcalc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.Equal(t, "yaml", cfg.Format)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, -1, cfg.Precision)
	require.NoError(t, cfg.Validate())
	require.Equal(t, matrixio.FormatYAML, cfg.OutputFormat())
}

func TestLoad_OverDefaults(t *testing.T) {
	cfg, err := config.Load(writeFile(t, "format: json\n"))
	require.NoError(t, err)
	require.Equal(t, "json", cfg.Format)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, -1, cfg.Precision)
	require.Equal(t, matrixio.FormatJSON, cfg.OutputFormat())
}

func TestLoad_AllFields(t *testing.T) {
	cfg, err := config.Load(writeFile(t, "format: text\nlog_level: debug\nprecision: 4\n"))
	require.NoError(t, err)
	require.Equal(t, &config.Config{Format: "text", LogLevel: "debug", Precision: 4}, cfg)
}

func TestLoad_EmptyFile(t *testing.T) {
	cfg, err := config.Load(writeFile(t, ""))
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown key", "colour: red\n"},
		{"bad format", "format: csv\n"},
		{"bad level", "log_level: loud\n"},
		{"bad precision", "precision: -3\n"},
		{"not yaml", "format: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(writeFile(t, tt.body))
			require.Error(t, err)
		})
	}

	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate_Sentinel(t *testing.T) {
	cfg := config.Default()
	cfg.Precision = -2
	require.ErrorIs(t, cfg.Validate(), config.ErrInvalid)

	cfg = config.Default()
	cfg.Format = "xml"
	err := cfg.Validate()
	require.ErrorIs(t, err, config.ErrInvalid)
	require.ErrorIs(t, err, matrixio.ErrUnknownFormat)
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	want := &config.Config{Format: "json", LogLevel: "warn", Precision: 6}
	require.NoError(t, config.Save(path, want))

	got, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, want, got)

	err = config.Save(filepath.Join(t.TempDir(), "no", "such", "dir.yaml"), want)
	require.ErrorIs(t, err, os.ErrNotExist)
	require.Contains(t, err.Error(), "config: ")
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for in, want := range cases {
		got, err := config.ParseLevel(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	_, err := config.ParseLevel("trace")
	require.ErrorIs(t, err, config.ErrInvalid)
}
