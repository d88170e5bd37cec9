// SPDX-License-Identifier: MIT

package matrixio

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/densemat/matrix"
)

// DefaultPrecision selects the shortest representation that round-trips.
const DefaultPrecision = -1

const panicPrecisionInvalid = "matrixio: WithPrecision: precision must be >= -1"

// document is the keyed form shared by yaml and json.
type document struct {
	Rows [][]float64 `yaml:"rows" json:"rows"`
}

// Option configures Encode.
type Option func(*options)

type options struct {
	precision int // strconv 'g' precision for yaml/text; json always round-trips
}

// WithPrecision sets the number of significant digits for yaml and text output.
// Panics when p < -1 (programmer error).
func WithPrecision(p int) Option {
	if p < -1 {
		panic(panicPrecisionInvalid)
	}

	return func(o *options) { o.precision = p }
}

func gatherOptions(user ...Option) options {
	o := options{precision: DefaultPrecision}
	for _, set := range user {
		set(&o) // last-writer-wins
	}

	return o
}

// ---------- Decoding ----------

// Decode reads one matrix document in format f from r.
//
// Errors:
//   - ErrUnknownFormat, ErrEmptyDocument, ErrRagged, ErrSyntax.
//   - yaml/json parse errors, wrapped.
//   - matrix.ErrInvalidShape when rows are present but empty.
func Decode(r io.Reader, f Format) (*matrix.Dense, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("matrixio: read: %w", err)
	}

	var rows [][]float64
	switch f {
	case FormatYAML:
		rows, err = decodeYAML(data)
	case FormatJSON:
		rows, err = decodeJSON(data)
	case FormatText:
		rows, err = decodeText(data)
	default:
		return nil, fmt.Errorf("matrixio: decode %q: %w", string(f), ErrUnknownFormat)
	}
	if err != nil {
		return nil, err
	}

	return build(rows)
}

// ReadFile decodes the matrix stored at path; the format comes from the extension.
func ReadFile(path string) (*matrix.Dense, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("matrixio: %w", err)
	}
	defer fh.Close()

	m, err := Decode(fh, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

func decodeYAML(data []byte) ([][]float64, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("matrixio: yaml: %w", err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, ErrEmptyDocument
	}

	body := root.Content[0]
	var rows [][]float64
	switch body.Kind {
	case yaml.SequenceNode:
		if err := body.Decode(&rows); err != nil {
			return nil, fmt.Errorf("matrixio: yaml: %w", err)
		}
	case yaml.MappingNode:
		var doc document
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("matrixio: yaml: %w", err)
		}
		rows = doc.Rows
	default:
		return nil, fmt.Errorf("matrixio: yaml: line %d: want a mapping or a sequence: %w", body.Line, ErrSyntax)
	}

	return rows, nil
}

func decodeJSON(data []byte) ([][]float64, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, ErrEmptyDocument
	}

	if data[0] == '[' {
		var rows [][]float64
		if err := json.Unmarshal(data, &rows); err != nil {
			return nil, fmt.Errorf("matrixio: json: %w", err)
		}
		return rows, nil
	}

	var doc document
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("matrixio: json: %w", err)
	}

	return doc.Rows, nil
}

// decodeText parses the Dense.String rendering: "[a, b, c]" per line.
func decodeText(data []byte) ([][]float64, error) {
	var rows [][]float64
	sc := bufio.NewScanner(bytes.NewReader(data))
	line := 0
	for sc.Scan() {
		line++
		s := strings.TrimSpace(sc.Text())
		if s == "" {
			continue
		}
		if !strings.HasPrefix(s, "[") || !strings.HasSuffix(s, "]") {
			return nil, fmt.Errorf("matrixio: text: line %d: want [v, ...]: %w", line, ErrSyntax)
		}
		inner := strings.TrimSpace(s[1 : len(s)-1])
		if inner == "" {
			rows = append(rows, []float64{})
			continue
		}
		fields := strings.Split(inner, ",")
		row := make([]float64, len(fields))
		for j, fld := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(fld), 64)
			if err != nil {
				return nil, fmt.Errorf("matrixio: text: line %d, value %d: %v: %w", line, j, err, ErrSyntax)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("matrixio: text: %w", err)
	}

	return rows, nil
}

// build validates rectangularity and materializes a Dense.
func build(rows [][]float64) (*matrix.Dense, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyDocument
	}
	want := len(rows[0])
	for i, row := range rows {
		if len(row) != want {
			return nil, fmt.Errorf("matrixio: row %d has %d values, row 0 has %d: %w", i, len(row), want, ErrRagged)
		}
	}
	m, err := matrix.NewFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("matrixio: %w", err)
	}

	return m, nil
}

// ---------- Encoding ----------

// Encode writes m to w in format f.
//
// Errors:
//   - matrix.ErrInvalidShape for an empty m.
//   - ErrUnknownFormat.
//   - json refuses NaN and ±Inf (yaml and text encode them).
func Encode(w io.Writer, m *matrix.Dense, f Format, opts ...Option) error {
	if err := matrix.ValidateNotEmpty(m); err != nil {
		return fmt.Errorf("matrixio: encode: %w", err)
	}
	o := gatherOptions(opts...)

	switch f {
	case FormatYAML:
		return encodeYAML(w, m.ToRows(), o.precision)
	case FormatJSON:
		if err := json.NewEncoder(w).Encode(document{Rows: m.ToRows()}); err != nil {
			return fmt.Errorf("matrixio: json: %w", err)
		}
		return nil
	case FormatText:
		if _, err := io.WriteString(w, m.FormatPrec(o.precision)); err != nil {
			return fmt.Errorf("matrixio: text: %w", err)
		}
		return nil
	}

	return fmt.Errorf("matrixio: encode %q: %w", string(f), ErrUnknownFormat)
}

// WriteFile encodes m into path; the format comes from the extension.
func WriteFile(path string, m *matrix.Dense, opts ...Option) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err = Encode(&buf, m, f, opts...); err != nil {
		return err
	}
	if err = os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("matrixio: %w", err)
	}

	return nil
}

// encodeYAML emits a "rows" mapping with one flow-style sequence per row.
func encodeYAML(w io.Writer, rows [][]float64, precision int) error {
	seq := &yaml.Node{Kind: yaml.SequenceNode}
	for _, row := range rows {
		rn := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		for _, v := range row {
			rn.Content = append(rn.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: yamlFloat(v, precision)})
		}
		seq.Content = append(seq.Content, rn)
	}
	root := &yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Value: "rows"},
			seq,
		},
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return fmt.Errorf("matrixio: yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("matrixio: yaml: %w", err)
	}

	return nil
}

// yamlFloat renders v using the YAML 1.2 core-schema spelling for special values.
func yamlFloat(v float64, precision int) string {
	switch {
	case math.IsNaN(v):
		return ".nan"
	case math.IsInf(v, 1):
		return ".inf"
	case math.IsInf(v, -1):
		return "-.inf"
	}

	return strconv.FormatFloat(v, 'g', precision, 64)
}
