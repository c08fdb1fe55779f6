// Package history persists batch outcomes in a SQLite database so past runs
// stay inspectable after the process exits.
package history

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"romsort/internal/batch"
)

//go:embed schema.sql
var schemaSQL string

// schemaVersion is the current schema version. Bump this when the schema
// changes; existing databases must then be recreated.
const schemaVersion = 1

// ErrSchemaMismatch indicates the database schema version doesn't match the
// expected version.
var ErrSchemaMismatch = errors.New("schema version mismatch")

// Store manages batch history persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the history database at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("ensure history directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) initSchema(ctx context.Context) error {
	var tableExists int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	).Scan(&tableExists)
	if err != nil {
		return fmt.Errorf("check schema_version table: %w", err)
	}

	if tableExists == 0 {
		return s.createSchema(ctx)
	}

	var version int
	if err := s.db.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1").Scan(&version); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if version != schemaVersion {
		return fmt.Errorf("%w: database has version %d, expected %d (delete %s to recreate)",
			ErrSchemaMismatch, version, schemaVersion, s.path)
	}
	return nil
}

func (s *Store) createSchema(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO schema_version (version) VALUES (?)", schemaVersion); err != nil {
		return fmt.Errorf("record schema version: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema: %w", err)
	}
	return nil
}

// BatchSummary is one row of the batch listing.
type BatchSummary struct {
	ID         string
	StartedAt  time.Time
	FinishedAt time.Time
	SourceDir  string
	TargetDir  string
	Cancelled  bool
	DryRun     bool
	Moved      int
	Failed     int
	NotFound   int
}

// Item is one recorded per-reference outcome.
type Item struct {
	Position      int
	ReferenceName string
	Outcome       batch.Outcome
	MatchedFile   string
	Detail        string
}

// RecordBatch persists a finished batch report and returns its identifier.
func (s *Store) RecordBatch(ctx context.Context, report *batch.Report) (string, error) {
	id := uuid.NewString()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin batch tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO batches (
            id, started_at, finished_at, source_dir, target_dir,
            cancelled, dry_run, moved, failed, not_found
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id,
		report.StartedAt.UTC().Format(time.RFC3339Nano),
		report.FinishedAt.UTC().Format(time.RFC3339Nano),
		report.SourceDir,
		report.TargetDir,
		boolToInt(report.Cancelled),
		boolToInt(report.DryRun),
		report.Moved(),
		report.Failed(),
		report.NotFound(),
	)
	if err != nil {
		return "", fmt.Errorf("insert batch: %w", err)
	}

	for position, item := range report.Items {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO batch_items (
                batch_id, position, reference_name, outcome, matched_file, detail
            ) VALUES (?, ?, ?, ?, ?, ?)`,
			id,
			position,
			item.ReferenceName,
			string(item.Outcome),
			nullableString(item.MatchedFile),
			nullableString(item.Detail),
		)
		if err != nil {
			return "", fmt.Errorf("insert batch item %d: %w", position, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit batch: %w", err)
	}
	return id, nil
}

// RecentBatches returns up to limit batches, most recently finished first.
func (s *Store) RecentBatches(ctx context.Context, limit int) ([]BatchSummary, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, started_at, finished_at, source_dir, target_dir,
                cancelled, dry_run, moved, failed, not_found
         FROM batches ORDER BY finished_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query batches: %w", err)
	}
	defer rows.Close()

	var summaries []BatchSummary
	for rows.Next() {
		var (
			summary           BatchSummary
			started, finished string
			cancelled, dryRun int
		)
		if err := rows.Scan(
			&summary.ID, &started, &finished, &summary.SourceDir, &summary.TargetDir,
			&cancelled, &dryRun, &summary.Moved, &summary.Failed, &summary.NotFound,
		); err != nil {
			return nil, fmt.Errorf("scan batch: %w", err)
		}
		if summary.StartedAt, err = time.Parse(time.RFC3339Nano, started); err != nil {
			return nil, fmt.Errorf("parse started_at: %w", err)
		}
		if summary.FinishedAt, err = time.Parse(time.RFC3339Nano, finished); err != nil {
			return nil, fmt.Errorf("parse finished_at: %w", err)
		}
		summary.Cancelled = cancelled != 0
		summary.DryRun = dryRun != 0
		summaries = append(summaries, summary)
	}
	return summaries, rows.Err()
}

// BatchItems returns the per-reference outcomes of one batch in order.
func (s *Store) BatchItems(ctx context.Context, batchID string) ([]Item, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT position, reference_name, outcome, matched_file, detail
         FROM batch_items WHERE batch_id = ? ORDER BY position`, batchID)
	if err != nil {
		return nil, fmt.Errorf("query batch items: %w", err)
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var (
			item            Item
			matched, detail sql.NullString
		)
		if err := rows.Scan(&item.Position, &item.ReferenceName, (*string)(&item.Outcome), &matched, &detail); err != nil {
			return nil, fmt.Errorf("scan batch item: %w", err)
		}
		item.MatchedFile = matched.String
		item.Detail = detail.String
		items = append(items, item)
	}
	return items, rows.Err()
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}
