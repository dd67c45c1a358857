/*
PURPOSE:
  Writes the zero-filled metric grids to a long-format CSV file
  (grade_metricas.csv), one line per (metric, method, agent count).

REQUIREMENTS:
  User-specified:
  - Same numbers the bar charts plot, including zero-filled gaps.

  Implementation-discovered:
  - Long format loads directly into spreadsheets.
  - Overwrites the file on every run.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Consumes: internal/aggregate.Grid

ERROR HANDLING:
  - Returns error on file creation or write failure.

IMPLEMENTATION RULES:
  - Use encoding/csv.
  - Flush() after every grid.

USAGE:
  w, err := output.NewGridCSVWriter("graficos/grade_metricas.csv")
  w.Write(grid)
  w.Close()

SELF-HEALING INSTRUCTIONS:
  - If the column set changes, update GridHeader and the record conversion.

RELATED FILES:
  - internal/aggregate/aggregate.go

MAINTENANCE:
  - None.
*/

package output

import (
	"encoding/csv"
	"os"
	"strconv"
	"sync"

	"github.com/daryltucker/gerar-graficos/internal/aggregate"
)

// GridHeader is the header line of the grid export.
var GridHeader = []string{"metrica", "metodo", "agentes", "valor"}

// GridCSVWriter handles writing metric grids to a CSV file.
type GridCSVWriter struct {
	file   *os.File
	writer *csv.Writer
	mu     sync.Mutex
}

// NewGridCSVWriter creates a new GridCSVWriter.
// It overwrites the file if it exists.
func NewGridCSVWriter(path string) (*GridCSVWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	w := csv.NewWriter(f)
	if err := w.Write(GridHeader); err != nil {
		f.Close()
		return nil, err
	}
	w.Flush()

	return &GridCSVWriter{
		file:   f,
		writer: w,
	}, nil
}

// Write appends every cell of g. It is thread-safe.
func (gw *GridCSVWriter) Write(g aggregate.Grid) error {
	gw.mu.Lock()
	defer gw.mu.Unlock()

	metric := g.Metric.String()
	for i, method := range g.Methods {
		for j, agents := range g.AgentCounts {
			record := []string{
				metric,
				string(method),
				strconv.Itoa(agents),
				strconv.FormatFloat(g.Values[i][j], 'f', -1, 64),
			}
			if err := gw.writer.Write(record); err != nil {
				return err
			}
		}
	}
	gw.writer.Flush()
	return gw.writer.Error()
}

// Close closes the underlying file.
func (gw *GridCSVWriter) Close() error {
	gw.writer.Flush()
	return gw.file.Close()
}

// WriteGridCSV writes all grids to path in order.
func WriteGridCSV(path string, grids []aggregate.Grid) error {
	w, err := NewGridCSVWriter(path)
	if err != nil {
		return err
	}
	for _, g := range grids {
		if err := w.Write(g); err != nil {
			w.Close()
			return err
		}
	}
	return w.Close()
}
