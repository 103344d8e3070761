// Package store handles SQLite persistence of run history.
package store

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/verte-zerg/meshsim/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for transmission run history.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY,
			started_at TEXT NOT NULL,
			source TEXT NOT NULL,
			preset_id INTEGER NOT NULL,
			preset_name TEXT NOT NULL,
			payload_bytes INTEGER NOT NULL,
			packet_count INTEGER NOT NULL,
			packets_sent INTEGER NOT NULL,
			bytes_sent INTEGER NOT NULL,
			estimated_ms INTEGER NOT NULL,
			elapsed_ms INTEGER NOT NULL,
			cancelled INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertRun stores a finished run, complete or cancelled.
func (s *Store) InsertRun(ctx context.Context, rec model.RunRecord) (int64, error) {
	cancelled := 0
	if rec.Cancelled {
		cancelled = 1
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (started_at, source, preset_id, preset_name, payload_bytes, packet_count, packets_sent, bytes_sent, estimated_ms, elapsed_ms, cancelled)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.StartedAt.Format(time.RFC3339Nano),
		rec.Source,
		rec.PresetID,
		rec.PresetName,
		rec.PayloadBytes,
		rec.PacketCount,
		rec.PacketsSent,
		rec.BytesSent,
		rec.EstimatedMs,
		rec.ElapsedMs,
		cancelled,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListRuns returns stored runs in chronological order. A positive limit
// keeps only the most recent runs; the limit is applied by the query so a
// long history is never read whole.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]model.RunAggregate, error) {
	query := `SELECT id, started_at, source, preset_id, preset_name, payload_bytes, packet_count, packets_sent, bytes_sent, estimated_ms, elapsed_ms, cancelled
		 FROM runs
		 ORDER BY started_at ASC, id ASC`
	var args []any
	if limit > 0 {
		query = `SELECT id, started_at, source, preset_id, preset_name, payload_bytes, packet_count, packets_sent, bytes_sent, estimated_ms, elapsed_ms, cancelled
		 FROM runs
		 ORDER BY started_at DESC, id DESC
		 LIMIT ?`
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var runs []model.RunAggregate
	for rows.Next() {
		var run model.RunAggregate
		var startedAt string
		var cancelled int
		if err := rows.Scan(&run.RunID, &startedAt, &run.Source, &run.PresetID, &run.PresetName,
			&run.PayloadBytes, &run.PacketCount, &run.PacketsSent, &run.BytesSent,
			&run.EstimatedMs, &run.ElapsedMs, &cancelled); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, startedAt)
		if err != nil {
			return nil, err
		}
		run.StartedAt = parsed
		run.Cancelled = cancelled != 0
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if limit > 0 {
		// The limited query reads newest first; flip back to chronological.
		for i, j := 0, len(runs)-1; i < j; i, j = i+1, j-1 {
			runs[i], runs[j] = runs[j], runs[i]
		}
	}
	return runs, nil
}
