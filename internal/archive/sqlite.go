// Package archive keeps a SQLite history of the loaded benchmark rows.
//
// Every Store call tags its rows with the source file name and a fresh run id.
// Storing the same source again replaces that source's rows.
package archive

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/daryltucker/gerar-graficos/internal/model"
)

const schema = `
CREATE TABLE IF NOT EXISTS resultados (
	id                           INTEGER PRIMARY KEY AUTOINCREMENT,
	fonte                        TEXT    NOT NULL,
	execucao                     TEXT    NOT NULL,
	arquivado_em                 TEXT    NOT NULL,
	linha                        INTEGER NOT NULL,
	metodo_utilizado             TEXT    NOT NULL,
	quantidade_agentes           INTEGER NOT NULL,
	tempo_computacional_medio_ms REAL    NOT NULL,
	total_colisoes               INTEGER NOT NULL,
	tempo_total_conclusao_s      REAL    NOT NULL,
	distancia_extra_percorrida   REAL    NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_resultados_fonte ON resultados(fonte);
`

// Archive is a SQLite-backed store of result rows.
type Archive struct {
	mu   sync.Mutex
	db   *sql.DB
	path string
}

// Open opens (or creates) the archive database at path.
func Open(ctx context.Context, path string) (*Archive, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create archive directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1) // single writer

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return &Archive{db: db, path: path}, nil
}

// Path returns the database file.
func (a *Archive) Path() string { return a.path }

// Store replaces the rows archived for tbl.Source with the rows of tbl
// and returns the run id they were tagged with.
func (a *Archive) Store(ctx context.Context, tbl *model.Table) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	runID := uuid.NewString()
	now := time.Now().UTC().Format(time.RFC3339)

	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM resultados WHERE fonte = ?`, tbl.Source); err != nil {
		return "", fmt.Errorf("failed to clear previous rows: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO resultados (
			fonte, execucao, arquivado_em, linha,
			metodo_utilizado, quantidade_agentes, tempo_computacional_medio_ms,
			total_colisoes, tempo_total_conclusao_s, distancia_extra_percorrida
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range tbl.Rows {
		if _, err := stmt.ExecContext(ctx,
			tbl.Source, runID, now, i+1,
			string(r.Method), r.Agents, r.ComputeTimeMs,
			r.Collisions, r.CompletionTimeS, r.ExtraDistance,
		); err != nil {
			return "", fmt.Errorf("failed to insert row %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit: %w", err)
	}
	return runID, nil
}

// Count returns the number of archived rows for source, or all rows when source is empty.
func (a *Archive) Count(ctx context.Context, source string) (int, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	q, args := `SELECT COUNT(*) FROM resultados`, []any{}
	if source != "" {
		q += ` WHERE fonte = ?`
		args = append(args, source)
	}
	var n int
	if err := a.db.QueryRowContext(ctx, q, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count rows: %w", err)
	}
	return n, nil
}

// Rows returns the archived rows of source in load order.
func (a *Archive) Rows(ctx context.Context, source string) ([]model.ResultRow, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	rows, err := a.db.QueryContext(ctx, `
		SELECT metodo_utilizado, quantidade_agentes, tempo_computacional_medio_ms,
		       total_colisoes, tempo_total_conclusao_s, distancia_extra_percorrida
		FROM resultados WHERE fonte = ? ORDER BY linha`, source)
	if err != nil {
		return nil, fmt.Errorf("failed to query rows: %w", err)
	}
	defer rows.Close()

	var out []model.ResultRow
	for rows.Next() {
		var r model.ResultRow
		var method string
		if err := rows.Scan(&method, &r.Agents, &r.ComputeTimeMs, &r.Collisions, &r.CompletionTimeS, &r.ExtraDistance); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		r.Method = model.Method(method)
		out = append(out, r)
	}
	return out, rows.Err()
}

// Close closes the database.
func (a *Archive) Close() error {
	return a.db.Close()
}
