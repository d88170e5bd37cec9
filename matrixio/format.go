// SPDX-License-Identifier: MIT

package matrixio

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format names a document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// Formats lists the supported formats in a stable order.
var Formats = []Format{FormatYAML, FormatJSON, FormatText}

// ParseFormat resolves a case-insensitive format name; "yml" and "txt" are accepted aliases.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	case "text", "txt":
		return FormatText, nil
	}

	return "", fmt.Errorf("%q: %w", s, ErrUnknownFormat)
}

// FormatFromPath picks a format from the file extension (.yaml, .yml, .json, .txt).
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%s: no extension: %w", path, ErrUnknownFormat)
	}

	return ParseFormat(ext)
}

// String implements fmt.Stringer.
func (f Format) String() string { return string(f) }
