package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"vaultkeeper/internal/application"
	"vaultkeeper/internal/domain"
	"vaultkeeper/internal/ports"

	_ "modernc.org/sqlite"
)

// TrashStore implements ports.TrashStore using SQLite
type TrashStore struct {
	db        *sql.DB
	vaultPath string
	dbPath    string
}

// Ensure TrashStore implements ports.TrashStore
var _ ports.TrashStore = (*TrashStore)(nil)

// NewTrashStore creates a new SQLite trash manifest store
func NewTrashStore() *TrashStore {
	return &TrashStore{}
}

// Open initializes the manifest database for the given vault path
func (s *TrashStore) Open(vaultPath string) error {
	// Expand ~ in path
	if len(vaultPath) > 0 && vaultPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		vaultPath = filepath.Join(home, vaultPath[1:])
	}

	s.vaultPath = vaultPath
	s.dbPath = filepath.Join(vaultPath, ".vaultkeeper", "trash.db")

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(s.dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create manifest directory: %w", err)
	}

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", s.dbPath+"?_journal_mode=WAL")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	// Performance pragmas + schema in single batch (reduces round-trips)
	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS trash_entries (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			original_path TEXT NOT NULL,
			trash_path TEXT NOT NULL,
			trashed_at INTEGER NOT NULL,
			restored INTEGER NOT NULL DEFAULT 0
		);
		CREATE INDEX IF NOT EXISTS idx_trash_restored ON trash_entries(restored);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	return nil
}

// Close closes the database connection
func (s *TrashStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Record inserts a manifest entry and returns its ID.
func (s *TrashStore) Record(entry *domain.TrashEntry) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO trash_entries (original_path, trash_path, trashed_at, restored) VALUES (?, ?, ?, 0)`,
		entry.OriginalPath, entry.TrashPath, entry.TrashedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to record trash entry: %w", err)
	}
	return res.LastInsertId()
}

// List returns manifest entries, newest first. Restored entries are
// included only when includeRestored is set.
func (s *TrashStore) List(includeRestored bool) ([]domain.TrashEntry, error) {
	query := `SELECT id, original_path, trash_path, trashed_at, restored FROM trash_entries`
	if !includeRestored {
		query += ` WHERE restored = 0`
	}
	query += ` ORDER BY trashed_at DESC`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list trash entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.TrashEntry
	for rows.Next() {
		var e domain.TrashEntry
		var restored int
		if err := rows.Scan(&e.ID, &e.OriginalPath, &e.TrashPath, &e.TrashedAt, &restored); err != nil {
			return nil, err
		}
		e.Restored = restored != 0
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Get returns one manifest entry by ID.
func (s *TrashStore) Get(id int64) (*domain.TrashEntry, error) {
	var e domain.TrashEntry
	var restored int
	err := s.db.QueryRow(
		`SELECT id, original_path, trash_path, trashed_at, restored FROM trash_entries WHERE id = ?`, id,
	).Scan(&e.ID, &e.OriginalPath, &e.TrashPath, &e.TrashedAt, &restored)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("trash entry %d: %w", id, application.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	e.Restored = restored != 0
	return &e, nil
}

// MarkRestored flags an entry as restored.
func (s *TrashStore) MarkRestored(id int64) error {
	res, err := s.db.Exec(`UPDATE trash_entries SET restored = 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to mark restored: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("trash entry %d: %w", id, application.ErrNotFound)
	}
	return nil
}
