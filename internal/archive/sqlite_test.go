package archive

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/daryltucker/gerar-graficos/internal/model"
)

func table(source string, n int) *model.Table {
	tbl := &model.Table{Source: source}
	for i := 0; i < n; i++ {
		tbl.Rows = append(tbl.Rows, model.ResultRow{
			Method:          model.KnownMethods[i%len(model.KnownMethods)],
			Agents:          10 * (i + 1),
			ComputeTimeMs:   0.5 * float64(i+1),
			Collisions:      i,
			CompletionTimeS: 12.5,
			ExtraDistance:   float64(i) * 3.25,
		})
	}
	return tbl
}

func TestOpenCreatesDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "historico.db")
	a, err := Open(context.Background(), path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer a.Close()

	if _, err := os.Stat(path); err != nil {
		t.Errorf("database file not created: %v", err)
	}
	n, err := a.Count(context.Background(), "")
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if n != 0 {
		t.Errorf("new archive has %d rows", n)
	}
}

func TestStoreAndRows(t *testing.T) {
	ctx := context.Background()
	a, err := Open(ctx, filepath.Join(t.TempDir(), "historico.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer a.Close()

	src := table("resultados_simulacao.csv", 4)
	runID, err := a.Store(ctx, src)
	if err != nil {
		t.Fatalf("Store() error = %v", err)
	}
	if runID == "" {
		t.Error("empty run id")
	}

	got, err := a.Rows(ctx, src.Source)
	if err != nil {
		t.Fatalf("Rows() error = %v", err)
	}
	if len(got) != len(src.Rows) {
		t.Fatalf("got %d rows, want %d", len(got), len(src.Rows))
	}
	for i := range got {
		if got[i] != src.Rows[i] {
			t.Errorf("row %d = %+v, want %+v", i, got[i], src.Rows[i])
		}
	}
}

func TestStoreReplacesSameSource(t *testing.T) {
	ctx := context.Background()
	a, err := Open(ctx, filepath.Join(t.TempDir(), "historico.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer a.Close()

	first, err := a.Store(ctx, table("a.csv", 5))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := a.Store(ctx, table("b.csv", 2)); err != nil {
		t.Fatal(err)
	}
	second, err := a.Store(ctx, table("a.csv", 3))
	if err != nil {
		t.Fatal(err)
	}
	if first == second {
		t.Error("run ids must differ between stores")
	}

	tests := []struct {
		source string
		want   int
	}{
		{"a.csv", 3},
		{"b.csv", 2},
		{"", 5},
		{"c.csv", 0},
	}
	for _, tt := range tests {
		n, err := a.Count(ctx, tt.source)
		if err != nil {
			t.Fatalf("Count(%q) error = %v", tt.source, err)
		}
		if n != tt.want {
			t.Errorf("Count(%q) = %d, want %d", tt.source, n, tt.want)
		}
	}
}

func TestPersistence(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "historico.db")

	a, err := Open(ctx, path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := a.Store(ctx, table("x.csv", 2)); err != nil {
		t.Fatal(err)
	}
	if err := a.Close(); err != nil {
		t.Fatal(err)
	}

	b, err := Open(ctx, path)
	if err != nil {
		t.Fatal(err)
	}
	defer b.Close()
	if n, _ := b.Count(ctx, "x.csv"); n != 2 {
		t.Errorf("after reopen Count = %d, want 2", n)
	}
}
