/*
PURPOSE:
  Locates and parses the benchmark CSV written by the simulation logger.

REQUIREMENTS:
  User-specified:
  - Use the given path or the default name; retry under the fallback directory.
  - If nothing is found, tell the user to run the benchmark (F1) first.

  Implementation-discovered:
  - Header-driven: columns may come in any order, names are case-sensitive.
  - No coercion or defaulting; a missing column or a bad number is fatal.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Produces: internal/model.Table

ERROR HANDLING:
  - ErrInputNotFound when neither location exists.
  - *ColumnError for a missing required column.
  - *ParseError for an unparseable field (carries line and column).

IMPLEMENTATION RULES:
  - Use encoding/csv.
  - Never return a partially filled table alongside an error.

USAGE:
  path, err := loader.Resolve(cfg.InputFile, cfg.FallbackDir)
  tbl, err := loader.Load(path)

SELF-HEALING INSTRUCTIONS:
  - If the logger renames a column, update internal/model Column* constants.

RELATED FILES:
  - internal/model/types.go

MAINTENANCE:
  - None.
*/

package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/daryltucker/gerar-graficos/internal/aggregate"
	"github.com/daryltucker/gerar-graficos/internal/model"
)

// ErrInputNotFound is returned by Resolve when the CSV exists in neither location.
var ErrInputNotFound = errors.New("input file not found")

// ColumnError reports a required column absent from the header.
type ColumnError struct {
	Column string
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("missing required column %q", e.Column)
}

// ParseError reports a field that could not be converted.
type ParseError struct {
	Line   int
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: column %s: cannot parse %q: %v", e.Line, e.Column, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Resolve returns the first existing location of path: path itself, then
// path under fallbackDir. The wrapped ErrInputNotFound names the original path.
func Resolve(path, fallbackDir string) (string, error) {
	if fileExists(path) {
		return path, nil
	}
	if fallbackDir != "" {
		alt := filepath.Join(fallbackDir, path)
		if fileExists(alt) {
			return alt, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrInputNotFound, path)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// Load opens and parses the CSV at path.
func Load(path string) (*model.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	tbl, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	tbl.Source = path
	return tbl, nil
}

// Read parses CSV data with a header row into a table.
func Read(r io.Reader) (*model.Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty file: header row expected")
		}
		return nil, err
	}
	idx := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if _, dup := idx[name]; !dup {
			idx[name] = i
		}
	}
	for _, col := range model.Columns {
		if _, ok := idx[col]; !ok {
			return nil, &ColumnError{Column: col}
		}
	}

	tbl := &model.Table{}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := cr.FieldPos(0)
		row, err := parseRow(rec, idx, line)
		if err != nil {
			return nil, err
		}
		tbl.Rows = append(tbl.Rows, row)
	}
	return tbl, nil
}

func parseRow(rec []string, idx map[string]int, line int) (model.ResultRow, error) {
	field := func(col string) string { return strings.TrimSpace(rec[idx[col]]) }

	var row model.ResultRow
	var err error
	row.Method = model.Method(field(model.ColumnMethod))

	ints := []struct {
		col string
		dst *int
	}{
		{model.ColumnAgents, &row.Agents},
		{model.ColumnCollisions, &row.Collisions},
	}
	for _, it := range ints {
		if *it.dst, err = strconv.Atoi(field(it.col)); err != nil {
			return row, &ParseError{Line: line, Column: it.col, Value: field(it.col), Err: err}
		}
	}

	floats := []struct {
		col string
		dst *float64
	}{
		{model.ColumnComputeTimeMs, &row.ComputeTimeMs},
		{model.ColumnCompletionTimeS, &row.CompletionTimeS},
		{model.ColumnExtraDistance, &row.ExtraDistance},
	}
	for _, ft := range floats {
		if *ft.dst, err = strconv.ParseFloat(field(ft.col), 64); err != nil {
			return row, &ParseError{Line: line, Column: ft.col, Value: field(ft.col), Err: err}
		}
	}
	return row, nil
}

// Diagnostics summarizes a loaded table for the console.
type Diagnostics struct {
	Rows        int
	Methods     []model.Method
	AgentCounts []int
}

// Describe computes the post-load diagnostics of tbl.
func Describe(tbl *model.Table) Diagnostics {
	return Diagnostics{
		Rows:        tbl.Len(),
		Methods:     aggregate.Methods(tbl),
		AgentCounts: aggregate.AgentCounts(tbl),
	}
}
