package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/daryltucker/gerar-graficos/internal/archive"
	"github.com/daryltucker/gerar-graficos/internal/config"
	"github.com/daryltucker/gerar-graficos/internal/loader"
	"github.com/daryltucker/gerar-graficos/internal/output"
)

const sampleCSV = `Metodo_Utilizado,Quantidade_Agentes,Tempo_Computacional_Medio_ms,Total_Colisoes,Tempo_Total_Conclusao_s,Distancia_Extra_Percorrida
Direta,10,5.2000,2,12.0000,30.50
Indireta,10,6.1000,0,13.5000,10.20
Direta,20,8.4000,5,15.0000,41.00
`

func init() {
	output.SetLogger(output.NewLogger("error", io.Discard))
}

func testConfig(dir string) *config.Config {
	cfg := config.DefaultConfig()
	cfg.InputFile = filepath.Join(dir, "resultados_simulacao.csv")
	cfg.FallbackDir = filepath.Join(dir, "build")
	cfg.OutputDir = filepath.Join(dir, "graficos")
	cfg.DPI = 60
	return cfg
}

func TestExecuteMissingInput(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)

	var out bytes.Buffer
	_, err := New(cfg, &out).Execute(context.Background())
	if !errors.Is(err, loader.ErrInputNotFound) {
		t.Fatalf("expected ErrInputNotFound, got %v", err)
	}
	if _, err := os.Stat(cfg.OutputDir); !os.IsNotExist(err) {
		t.Errorf("output directory must not be created on missing input (stat err = %v)", err)
	}
}

func TestExecuteFullRun(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)
	if err := os.WriteFile(cfg.InputFile, []byte(sampleCSV), 0644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	sum, err := New(cfg, &out).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if sum.Table.Len() != 3 {
		t.Errorf("table has %d rows, want 3", sum.Table.Len())
	}
	if len(sum.Charts) != 4 {
		t.Fatalf("expected 4 charts, got %d", len(sum.Charts))
	}
	for _, r := range sum.Charts {
		f, err := os.Open(r.Path)
		if err != nil {
			t.Fatalf("chart %s missing: %v", r.Definition.Letter, err)
		}
		img, err := png.Decode(f)
		f.Close()
		if err != nil {
			t.Fatalf("chart %s is not a PNG: %v", r.Definition.Letter, err)
		}
		if img.Bounds().Dx() != r.Width || img.Bounds().Dy() != r.Height {
			t.Errorf("chart %s size %v, result says %dx%d", r.Definition.Letter, img.Bounds(), r.Width, r.Height)
		}
	}

	if len(sum.Exports) != 2 {
		t.Fatalf("expected 2 exports, got %v", sum.Exports)
	}
	data, err := os.ReadFile(filepath.Join(cfg.OutputDir, ChartDataFile))
	if err != nil {
		t.Fatal(err)
	}
	var doc output.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("invalid chart data: %v", err)
	}
	if len(doc.Charts) != 4 {
		t.Errorf("chart data has %d charts", len(doc.Charts))
	}
	if c := doc.Charts[2]; c.Grid == nil || len(c.Grid.Methods) != 3 {
		t.Errorf("chart C grid = %+v", c.Grid)
	}

	text := out.String()
	for _, want := range []string{"grafico_escalabilidade.png", "grade_metricas.csv", "Metodo_Utilizado", "Indireta"} {
		if !strings.Contains(text, want) {
			t.Errorf("console output missing %q", want)
		}
	}
	if sum.RunID != "" {
		t.Error("archive must be disabled by default")
	}
}

func TestExecuteFallbackDirAndArchive(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)
	cfg.InputFile = "resultados_simulacao.csv"
	cfg.ExportData = false
	cfg.ArchivePath = filepath.Join(dir, "historico.db")

	if err := os.MkdirAll(cfg.FallbackDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(cfg.FallbackDir, cfg.InputFile), []byte(sampleCSV), 0644); err != nil {
		t.Fatal(err)
	}
	chdirForTest(t, dir)

	sum, err := New(cfg, io.Discard).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !strings.HasSuffix(sum.Input, filepath.Join("build", "resultados_simulacao.csv")) {
		t.Errorf("input resolved to %s", sum.Input)
	}
	if len(sum.Exports) != 0 {
		t.Errorf("exports written with export_data off: %v", sum.Exports)
	}
	if _, err := os.Stat(filepath.Join(cfg.OutputDir, ChartDataFile)); !os.IsNotExist(err) {
		t.Error("chart data file must not exist with export_data off")
	}
	if sum.RunID == "" {
		t.Fatal("expected a run id")
	}

	ctx := context.Background()
	a, err := archive.Open(ctx, cfg.ArchivePath)
	if err != nil {
		t.Fatal(err)
	}
	defer a.Close()
	if n, _ := a.Count(ctx, sum.Table.Source); n != 3 {
		t.Errorf("archived %d rows, want 3", n)
	}
}

func TestExecuteIdempotent(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)
	if err := os.WriteFile(cfg.InputFile, []byte(sampleCSV), 0644); err != nil {
		t.Fatal(err)
	}

	first, err := New(cfg, io.Discard).Execute(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	second, err := New(cfg, io.Discard).Execute(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	for i := range first.Charts {
		a, b := first.Charts[i], second.Charts[i]
		if a.Width != b.Width || a.Height != b.Height {
			t.Errorf("chart %s size changed between runs: %dx%d vs %dx%d",
				a.Definition.Letter, a.Width, a.Height, b.Width, b.Height)
		}
	}
}

func TestExecuteMalformedInput(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)
	bad := strings.Replace(sampleCSV, "Total_Colisoes", "Colisoes", 1)
	if err := os.WriteFile(cfg.InputFile, []byte(bad), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := New(cfg, io.Discard).Execute(context.Background())
	var colErr *loader.ColumnError
	if !errors.As(err, &colErr) {
		t.Fatalf("expected ColumnError, got %v", err)
	}
}
