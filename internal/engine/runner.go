/*
PURPOSE:
  High-level runner that orchestrates the chart generation.
  Resolves the CSV -> loads the table -> renders charts -> exports -> report.

REQUIREMENTS:
  User-specified:
  - Four PNG charts under the output directory.
  - Plain dump of the table after the charts.
  - Missing input is fatal and creates nothing.

  Implementation-discovered:
  - Needs to report progress to CLI (diagnostics, one line per saved chart).
  - Chart data and grid exports live next to the charts.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli
  - Uses: internal/loader, internal/render, internal/output, internal/archive

ERROR HANDLING:
  - Every stage is fatal: the first error aborts the run and is returned.
  - loader.ErrInputNotFound is returned before the output directory exists.

IMPLEMENTATION RULES:
  - Resolve input before touching the output directory.
  - Charts render sequentially; the table is never modified.
  - Exports and archive only run after all four charts are written.

USAGE:
  engine.Run(ctx, cfg)

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/render/render.go
  - internal/output/report.go

MAINTENANCE:
  - Update the closing file list when adding new output files.
*/

package engine

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/daryltucker/gerar-graficos/internal/aggregate"
	"github.com/daryltucker/gerar-graficos/internal/archive"
	"github.com/daryltucker/gerar-graficos/internal/config"
	"github.com/daryltucker/gerar-graficos/internal/loader"
	"github.com/daryltucker/gerar-graficos/internal/model"
	"github.com/daryltucker/gerar-graficos/internal/output"
	"github.com/daryltucker/gerar-graficos/internal/render"
	"github.com/daryltucker/gerar-graficos/internal/style"
)

// Output file names written next to the charts when export_data is on.
const (
	ChartDataFile = "dados_graficos.json"
	GridFile      = "grade_metricas.csv"
)

// Engine runs the pipeline for one configuration.
type Engine struct {
	cfg *config.Config
	out io.Writer
}

// Summary is what a finished run produced.
type Summary struct {
	Input   string
	Table   *model.Table
	Charts  []render.Result
	Exports []string
	RunID   string
}

// New creates an Engine writing its console output to out.
func New(cfg *config.Config, out io.Writer) *Engine {
	return &Engine{cfg: cfg, out: out}
}

// Run executes the full pipeline, printing to stdout.
func Run(ctx context.Context, cfg *config.Config) error {
	_, err := New(cfg, os.Stdout).Execute(ctx)
	return err
}

// Execute runs every stage and returns what was produced.
func (e *Engine) Execute(ctx context.Context) (*Summary, error) {
	cfg := e.cfg

	output.Banner(e.out, "GERANDO GRÁFICOS PARA O RELATÓRIO")

	// 1. Input
	path, err := loader.Resolve(cfg.InputFile, cfg.FallbackDir)
	if err != nil {
		return nil, err
	}
	tbl, err := loader.Load(path)
	if err != nil {
		return nil, err
	}
	d := loader.Describe(tbl)
	output.Logger.Info("Dados carregados", "arquivo", path, "linhas", d.Rows)
	output.Logger.Info("Métodos encontrados", "metodos", joinMethods(d.Methods))
	output.Logger.Info("Quantidades de agentes", "agentes", fmt.Sprint(d.AgentCounts))

	sum := &Summary{Input: path, Table: tbl}

	// 2. Charts
	w, h := cfg.PixelSize()
	opts := render.Options{Width: w, Height: h, DPI: cfg.DPI, Theme: style.DefaultTheme()}
	sum.Charts, err = render.RenderAll(ctx, tbl, cfg.OutputDir, opts, func(r render.Result) {
		output.Logger.Info("Salvo", "grafico", r.Definition.Letter, "arquivo", r.Path,
			"largura", r.Width, "altura", r.Height)
	})
	if err != nil {
		return sum, fmt.Errorf("failed to render charts: %w", err)
	}

	// 3. Exports
	if cfg.ExportData {
		if err := e.export(sum); err != nil {
			return sum, err
		}
	}

	// 4. Archive
	if cfg.ArchivePath != "" {
		runID, err := store(ctx, cfg.ArchivePath, tbl)
		if err != nil {
			return sum, fmt.Errorf("failed to archive results: %w", err)
		}
		sum.RunID = runID
		output.Logger.Info("Resultados arquivados", "banco", cfg.ArchivePath, "execucao", runID)
	}

	e.printFiles(sum)

	// 5. Report
	fmt.Fprintln(e.out, "\nDados utilizados:")
	if err := output.Report(e.out, tbl); err != nil {
		return sum, fmt.Errorf("failed to print report: %w", err)
	}
	return sum, nil
}

func (e *Engine) export(sum *Summary) error {
	dataPath := filepath.Join(e.cfg.OutputDir, ChartDataFile)
	if err := output.WriteChartData(dataPath, sum.Table.Source, sum.Charts); err != nil {
		return err
	}
	sum.Exports = append(sum.Exports, dataPath)

	grids := make([]aggregate.Grid, 0, len(model.Metrics))
	for _, m := range model.Metrics {
		grids = append(grids, aggregate.Build(sum.Table, m))
	}
	gridPath := filepath.Join(e.cfg.OutputDir, GridFile)
	if err := output.WriteGridCSV(gridPath, grids); err != nil {
		return fmt.Errorf("failed to write %s: %w", gridPath, err)
	}
	sum.Exports = append(sum.Exports, gridPath)

	output.Logger.Info("Dados exportados", "arquivos", len(sum.Exports))
	return nil
}

func store(ctx context.Context, path string, tbl *model.Table) (string, error) {
	a, err := archive.Open(ctx, path)
	if err != nil {
		return "", err
	}
	defer a.Close()
	return a.Store(ctx, tbl)
}

func (e *Engine) printFiles(sum *Summary) {
	output.Banner(e.out, "GRÁFICOS GERADOS COM SUCESSO!")
	fmt.Fprintf(e.out, "\nArquivos salvos em '%s/':\n", e.cfg.OutputDir)
	for _, r := range sum.Charts {
		fmt.Fprintf(e.out, "  - %s (%s)\n", filepath.Base(r.Path), r.Definition.Caption)
	}
	for _, p := range sum.Exports {
		fmt.Fprintf(e.out, "  - %s\n", filepath.Base(p))
	}
}

func joinMethods(ms []model.Method) string {
	s := make([]string, len(ms))
	for i, m := range ms {
		s[i] = string(m)
	}
	return strings.Join(s, ", ")
}
