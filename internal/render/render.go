// Package render turns a results table into the four PNG charts of the report.
//
// Charts A and D are line charts (one series per method, sorted by agent count);
// charts B and C are grouped bars over the zero-filled methods x agent-count grid.
package render

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/daryltucker/gerar-graficos/internal/aggregate"
	"github.com/daryltucker/gerar-graficos/internal/model"
)

// Result describes one written chart and the data plotted in it.
type Result struct {
	Definition Definition
	Path       string
	Width      int
	Height     int

	// Lines is set for line charts, Grid for grouped-bar charts.
	Lines []aggregate.Series
	Grid  *aggregate.Grid
}

// Chart renders def from tbl into an image without touching the disk.
func Chart(def Definition, tbl *model.Table, o Options) (image.Image, Result, error) {
	res := Result{Definition: def}

	var ch chart.Chart
	switch def.Kind {
	case KindLine:
		res.Lines = aggregate.Lines(tbl, def.Metric)
		ch = BuildLine(def, res.Lines, o)
	case KindGroupedBar:
		g := aggregate.Build(tbl, def.Metric)
		res.Grid = &g
		ch = BuildGroupedBar(def, g, o)
	default:
		return nil, res, fmt.Errorf("chart %s: unknown kind %d", def.Letter, def.Kind)
	}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, res, fmt.Errorf("chart %s: render: %w", def.Letter, err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, res, fmt.Errorf("chart %s: decode: %w", def.Letter, err)
	}
	img = TightCrop(img, int(math.Round(0.1*o.DPI)))
	res.Width, res.Height = img.Bounds().Dx(), img.Bounds().Dy()
	return img, res, nil
}

// RenderAll writes every chart of Charts() under outDir, creating it if needed.
// onSaved, when non-nil, is called after each file is written.
func RenderAll(ctx context.Context, tbl *model.Table, outDir string, o Options, onSaved func(Result)) ([]Result, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", outDir, err)
	}

	var results []Result
	for _, def := range Charts() {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		img, res, err := Chart(def, tbl, o)
		if err != nil {
			return results, err
		}
		res.Path = filepath.Join(outDir, def.File)
		if err := WritePNG(res.Path, img, o.DPI); err != nil {
			return results, err
		}
		results = append(results, res)
		if onSaved != nil {
			onSaved(res)
		}
	}
	return results, nil
}
