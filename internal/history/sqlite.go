package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"tuisearch/internal/domain"
)

const schema = `CREATE TABLE IF NOT EXISTS recent_selections (
    term TEXT PRIMARY KEY,
    selected_at INTEGER NOT NULL
);`

// SQLiteStore keeps recent selections in a SQLite database
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens or creates the database at path
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	if path == "" {
		return nil, errors.New("sqlite path required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create history schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Add(ctx context.Context, sel domain.Selection) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO recent_selections(term, selected_at) VALUES(?, ?)
         ON CONFLICT(term) DO UPDATE SET selected_at = MAX(selected_at, excluded.selected_at)`,
		sel.Term, sel.SelectedAt)
	if err != nil {
		return fmt.Errorf("failed to record %q: %w", sel.Term, err)
	}
	return nil
}

func (s *SQLiteStore) Recent(ctx context.Context, limit int) ([]domain.Selection, error) {
	if limit < 0 {
		limit = -1 // no LIMIT in SQLite
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT term, selected_at FROM recent_selections
         ORDER BY selected_at DESC, term ASC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var out []domain.Selection
	for rows.Next() {
		var sel domain.Selection
		if err := rows.Scan(&sel.Term, &sel.SelectedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history: %w", err)
		}
		out = append(out, sel)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM recent_selections`); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
