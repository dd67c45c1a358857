/*
PURPOSE:
  Writes the data actually plotted in each chart to dados_graficos.json.
  Lets other tools (and tests) check the charts without decoding PNGs.

REQUIREMENTS:
  User-specified:
  - Machine-readable companion to the images.

  Implementation-discovered:
  - One JSON document, charts in output order (A, B, C, D).
  - Line charts export their sorted series, bar charts their zero-filled grid.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Consumes: internal/render.Result

ERROR HANDLING:
  - Returns error on file creation or encode failure.

IMPLEMENTATION RULES:
  - Use encoding/json.NewEncoder with indentation.

USAGE:
  err := output.WriteChartData("graficos/dados_graficos.json", src, results)

SELF-HEALING INSTRUCTIONS:
  - None specific.

RELATED FILES:
  - internal/render/render.go

MAINTENANCE:
  - Keep json tags in Portuguese to match the CSV column names.
*/

package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/daryltucker/gerar-graficos/internal/aggregate"
	"github.com/daryltucker/gerar-graficos/internal/render"
)

// ChartData is the exported view of one rendered chart.
type ChartData struct {
	Letter string             `json:"grafico"`
	File   string             `json:"arquivo"`
	Title  string             `json:"titulo"`
	Kind   string             `json:"tipo"`
	Metric string             `json:"metrica"`
	Width  int                `json:"largura_px"`
	Height int                `json:"altura_px"`
	Series []aggregate.Series `json:"series,omitempty"`
	Grid   *aggregate.Grid    `json:"grade,omitempty"`
}

// Document is the root of dados_graficos.json.
type Document struct {
	Source string      `json:"fonte"`
	Charts []ChartData `json:"graficos"`
}

// NewDocument builds the export document from render results.
func NewDocument(source string, results []render.Result) Document {
	doc := Document{Source: source, Charts: make([]ChartData, 0, len(results))}
	for _, r := range results {
		doc.Charts = append(doc.Charts, ChartData{
			Letter: r.Definition.Letter,
			File:   filepath.Base(r.Path),
			Title:  r.Definition.Title,
			Kind:   r.Definition.Kind.String(),
			Metric: r.Definition.Metric.String(),
			Width:  r.Width,
			Height: r.Height,
			Series: r.Lines,
			Grid:   r.Grid,
		})
	}
	return doc
}

// WriteChartData writes the export document for results to path.
func WriteChartData(path, source string, results []render.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewDocument(source, results)); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}
