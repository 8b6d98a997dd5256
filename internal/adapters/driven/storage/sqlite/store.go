// Package sqlite provides a SQLite-backed StorageCollaborator: a
// durable local staging ground that survives restarts without needing
// a checked-out repository on disk.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/dakforge/dakforge/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/dakforge/dakforge/internal/core/domain"
	"github.com/dakforge/dakforge/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.Storage = (*Store)(nil)

// Store is a SQLite implementation of driven.Storage.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a SQLite store in the specified data directory.
// If dataDir is empty, defaults to ~/.dakforge/data/staging.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".dakforge", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "staging.db")

	// WAL mode for better concurrency between CLI invocations.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, path: dbPath}
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

// LoadFile returns the file content at path.
func (s *Store) LoadFile(ctx context.Context, owner, repo, branch, path string) (string, error) {
	var content string
	err := s.db.QueryRowContext(ctx,
		`SELECT content FROM files WHERE owner = ? AND repo = ? AND branch = ? AND path = ?`,
		owner, repo, branch, path,
	).Scan(&content)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%s: %w", path, domain.ErrFileNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("load %s: %w", path, err)
	}
	return content, nil
}

// SaveFile writes content at path, creating or overwriting it.
func (s *Store) SaveFile(ctx context.Context, owner, repo, branch, path, content string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO files (owner, repo, branch, path, content, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT (owner, repo, branch, path)
		 DO UPDATE SET content = excluded.content, updated_at = excluded.updated_at`,
		owner, repo, branch, path, content, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// ListFiles returns all paths under pathPrefix in sorted order.
func (s *Store) ListFiles(ctx context.Context, owner, repo, branch, pathPrefix string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT path FROM files WHERE owner = ? AND repo = ? AND branch = ? AND path LIKE ? || '%' ORDER BY path`,
		owner, repo, branch, pathPrefix,
	)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", pathPrefix, err)
	}
	defer rows.Close()

	var paths []string
	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, rows.Err()
}

// DeleteFile removes the file at path.
func (s *Store) DeleteFile(ctx context.Context, owner, repo, branch, path string) error {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM files WHERE owner = ? AND repo = ? AND branch = ? AND path = ?`,
		owner, repo, branch, path,
	)
	if err != nil {
		return fmt.Errorf("delete %s: %w", path, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%s: %w", path, domain.ErrFileNotFound)
	}
	return nil
}

// migrate applies the embedded SQL migrations in filename order.
func (s *Store) migrate(migrationFS fs.FS) error {
	if _, err := s.db.Exec(
		`CREATE TABLE IF NOT EXISTS schema_migrations (name TEXT PRIMARY KEY, applied_at TEXT NOT NULL)`,
	); err != nil {
		return err
	}

	names, err := fs.Glob(migrationFS, "*.sql")
	if err != nil {
		return err
	}
	sort.Strings(names)

	for _, name := range names {
		var applied int
		if err := s.db.QueryRow(
			`SELECT COUNT(*) FROM schema_migrations WHERE name = ?`, name,
		).Scan(&applied); err != nil {
			return err
		}
		if applied > 0 {
			continue
		}

		script, err := fs.ReadFile(migrationFS, name)
		if err != nil {
			return err
		}
		if _, err := s.db.Exec(string(script)); err != nil {
			return fmt.Errorf("migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(
			`INSERT INTO schema_migrations (name, applied_at) VALUES (?, ?)`,
			name, time.Now().UTC().Format(time.RFC3339),
		); err != nil {
			return err
		}
	}
	return nil
}
