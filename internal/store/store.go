// Package store persists the invocation history in SQLite.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/footprint-tools/argot/internal/domain"
	"github.com/footprint-tools/argot/internal/log"
	"github.com/footprint-tools/argot/internal/store/migrations"
)

// ErrEmptyLine is returned when recording an invocation without a line.
var ErrEmptyLine = errors.New("store: empty command line")

// Store wraps a SQLite database connection for history storage.
// It implements the domain.HistoryStore interface.
type Store struct {
	db   *sql.DB
	path string
	now  func() time.Time
}

// New opens the database at path, configures it and runs pending migrations.
func New(path string) (*Store, error) {
	log.Debug("store: opening database at %s", path)

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err = configureSQLite(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("configure database: %w", err)
	}

	setDBPermissions(path)

	if err = migrations.Run(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	log.Debug("store: database ready")
	return &Store{db: db, path: path, now: time.Now}, nil
}

// NewWithDB creates a Store from an existing, migrated database connection.
func NewWithDB(db *sql.DB) *Store {
	return &Store{db: db, now: time.Now}
}

// DB returns the underlying database connection.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Path returns the database file, empty for stores built with NewWithDB.
func (s *Store) Path() string {
	return s.path
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// configureSQLite serializes access through one connection and waits on
// locks held by other processes instead of failing right away.
func configureSQLite(db *sql.DB) error {
	db.SetMaxOpenConns(1)
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA foreign_keys=ON",
	} {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("%s: %w", pragma, err)
		}
	}
	return nil
}

// setDBPermissions sets restrictive file permissions on the database and its WAL/SHM files.
func setDBPermissions(path string) {
	if path == ":memory:" {
		return
	}
	_ = os.Chmod(path, 0600)
	_ = os.Chmod(path+"-wal", 0600)
	_ = os.Chmod(path+"-shm", 0600)
}

// Record appends an invocation. A missing ID, status or timestamp is filled in.
func (s *Store) Record(entry domain.HistoryEntry) error {
	if entry.Line == "" {
		return ErrEmptyLine
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Status == "" {
		entry.Status = domain.StatusOK
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = s.now()
	}

	_, err := s.db.Exec(
		`INSERT INTO history (id, line, root, status, message, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		entry.ID,
		entry.Line,
		entry.Root,
		string(entry.Status),
		entry.Message,
		entry.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("record history: %w", err)
	}
	return nil
}

// Recent returns up to limit invocations, newest first. A limit of zero or
// less returns all of them.
func (s *Store) Recent(limit int) ([]domain.HistoryEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, line, root, status, message, created_at
		 FROM history
		 ORDER BY rowid DESC
		 LIMIT ?`,
		sqlLimit(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []domain.HistoryEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Lines returns up to limit distinct lines, oldest first, each placed at
// its latest use.
func (s *Store) Lines(limit int) ([]string, error) {
	rows, err := s.db.Query(
		`SELECT line
		 FROM history
		 GROUP BY line
		 ORDER BY MAX(rowid) DESC
		 LIMIT ?`,
		sqlLimit(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("list history lines: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []string
	for rows.Next() {
		var line string
		if err := rows.Scan(&line); err != nil {
			return nil, err
		}
		out = append(out, line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	slices.Reverse(out)
	return out, nil
}

// Clear deletes every invocation.
func (s *Store) Clear() (int64, error) {
	result, err := s.db.Exec("DELETE FROM history")
	if err != nil {
		return 0, fmt.Errorf("clear history: %w", err)
	}
	return result.RowsAffected()
}

// Trim keeps the newest keep invocations. keep of zero or less is a no-op.
func (s *Store) Trim(keep int) (int64, error) {
	if keep <= 0 {
		return 0, nil
	}
	result, err := s.db.Exec(
		`DELETE FROM history
		 WHERE rowid NOT IN (SELECT rowid FROM history ORDER BY rowid DESC LIMIT ?)`,
		keep,
	)
	if err != nil {
		return 0, fmt.Errorf("trim history: %w", err)
	}
	return result.RowsAffected()
}

// sqlLimit maps "no limit" to SQLite's -1.
func sqlLimit(limit int) int {
	if limit <= 0 {
		return -1
	}
	return limit
}

func scanEntry(rows *sql.Rows) (domain.HistoryEntry, error) {
	var (
		e      domain.HistoryEntry
		status string
		ts     string
	)

	if err := rows.Scan(&e.ID, &e.Line, &e.Root, &status, &e.Message, &ts); err != nil {
		return domain.HistoryEntry{}, err
	}

	t, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return domain.HistoryEntry{}, fmt.Errorf("parse created_at %q: %w", ts, err)
	}

	e.Status = domain.HistoryStatus(status)
	e.CreatedAt = t
	return e, nil
}

var _ domain.HistoryStore = (*Store)(nil)
