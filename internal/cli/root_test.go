package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/daryltucker/gerar-graficos/internal/loader"
)

const sampleCSV = `Metodo_Utilizado,Quantidade_Agentes,Tempo_Computacional_Medio_ms,Total_Colisoes,Tempo_Total_Conclusao_s,Distancia_Extra_Percorrida
Direta,10,5.2000,2,12.0000,30.50
Indireta,10,6.1000,0,13.5000,10.20
`

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cfgFile = ""
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestMissingInputFile(t *testing.T) {
	dir := t.TempDir()
	chdirForTest(t, dir)

	_, stderr, err := execute(t)
	if !errors.Is(err, loader.ErrInputNotFound) {
		t.Fatalf("expected ErrInputNotFound, got %v", err)
	}
	if !strings.Contains(stderr, "resultados_simulacao.csv") || !strings.Contains(stderr, "benchmark") {
		t.Errorf("missing instructions on stderr: %q", stderr)
	}
	if _, err := os.Stat(filepath.Join(dir, "graficos")); !os.IsNotExist(err) {
		t.Error("output directory created despite missing input")
	}
}

func TestTooManyArgs(t *testing.T) {
	chdirForTest(t, t.TempDir())
	if _, _, err := execute(t, "a.csv", "b.csv"); err == nil {
		t.Fatal("expected an error for two positional arguments")
	}
}

func TestPositionalArgAndConfig(t *testing.T) {
	dir := t.TempDir()
	chdirForTest(t, dir)

	if err := os.WriteFile("dados.csv", []byte(sampleCSV), 0644); err != nil {
		t.Fatal(err)
	}
	cfg := "output_dir: saida\ndpi: 50\nexport_data: false\nlog_level: error\n"
	if err := os.WriteFile("graficos.yaml", []byte(cfg), 0644); err != nil {
		t.Fatal(err)
	}

	if _, _, err := execute(t, "dados.csv"); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	entries, err := os.ReadDir(filepath.Join(dir, "saida"))
	if err != nil {
		t.Fatalf("output dir from config not used: %v", err)
	}
	if len(entries) != 4 {
		t.Errorf("expected 4 charts and no exports, got %d files", len(entries))
	}
}

func TestExplicitConfigMissing(t *testing.T) {
	chdirForTest(t, t.TempDir())
	_, _, err := execute(t, "--config", "nao_existe.yaml")
	if err == nil || !strings.Contains(err.Error(), "nao_existe.yaml") {
		t.Fatalf("expected config read error, got %v", err)
	}
}
