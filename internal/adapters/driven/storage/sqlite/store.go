// Package sqlite provides SQLite-backed persistence for the query
// log, with embedded schema migrations.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/wethelder/wethelder/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/wethelder/wethelder/internal/core/domain"
	"github.com/wethelder/wethelder/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.QueryLogStore = (*Store)(nil)

// Store is a SQLite-backed query log.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens (or creates) the query log database in dataDir.
// If dataDir is empty, defaults to ~/.wethelder/data/wethelder.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".wethelder", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "wethelder.db")

	// WAL mode keeps concurrent appends from blocking each other.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Append stores one answered question.
func (s *Store) Append(ctx context.Context, record domain.QueryRecord) error {
	if record.ID == "" {
		return domain.ErrInvalidInput
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	sourcesJSON, err := json.Marshal(record.Sources)
	if err != nil {
		return fmt.Errorf("marshalling sources: %w", err)
	}
	assessmentJSON, err := json.Marshal(record.Assessment)
	if err != nil {
		return fmt.Errorf("marshalling assessment: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO query_log (id, question, answer, sources, assessment, partial, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, record.ID, record.Question, record.Answer, string(sourcesJSON),
		string(assessmentJSON), record.Partial, record.CreatedAt)

	if err != nil {
		return fmt.Errorf("appending query record: %w", err)
	}
	return nil
}

// Recent returns the most recent records, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]domain.QueryRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, question, answer, sources, assessment, partial, created_at
		FROM query_log
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying query log: %w", err)
	}
	defer rows.Close()

	var records []domain.QueryRecord //nolint:prealloc // size unknown from query
	for rows.Next() {
		var record domain.QueryRecord
		var sourcesJSON, assessmentJSON string
		if err := rows.Scan(&record.ID, &record.Question, &record.Answer,
			&sourcesJSON, &assessmentJSON, &record.Partial, &record.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning query record: %w", err)
		}

		if err := json.Unmarshal([]byte(sourcesJSON), &record.Sources); err != nil {
			return nil, fmt.Errorf("unmarshaling sources: %w", err)
		}
		if err := json.Unmarshal([]byte(assessmentJSON), &record.Assessment); err != nil {
			return nil, fmt.Errorf("unmarshaling assessment: %w", err)
		}

		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating query records: %w", err)
	}

	return records, nil
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(
			"INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}
