// Package migrations applies the embedded SQL schema of the history
// database. Files are named NN_description.sql and run once, in order.
package migrations

import (
	"cmp"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strconv"
	"strings"
)

//go:embed sql/*.sql
var sqlFiles embed.FS

// Migration is one schema step.
type Migration struct {
	Version     int
	Description string
	SQL         string
}

// Name is the file name the migration was loaded from.
func (m Migration) Name() string {
	return fmt.Sprintf("%02d_%s.sql", m.Version, m.Description)
}

const schemaTable = `
CREATE TABLE IF NOT EXISTS schema_migrations (
	version INTEGER PRIMARY KEY,
	description TEXT NOT NULL,
	applied_at TEXT NOT NULL DEFAULT (datetime('now'))
)`

// Load returns the embedded migrations ordered by version. Versions start
// at 1 and must not skip or repeat a number.
func Load() ([]Migration, error) {
	names, err := fs.Glob(sqlFiles, "sql/*.sql")
	if err != nil {
		return nil, fmt.Errorf("list migrations: %w", err)
	}

	all := make([]Migration, 0, len(names))
	for _, name := range names {
		m, err := read(name)
		if err != nil {
			return nil, err
		}
		all = append(all, m)
	}

	slices.SortFunc(all, func(a, b Migration) int { return cmp.Compare(a.Version, b.Version) })
	for i, m := range all {
		if m.Version != i+1 {
			return nil, fmt.Errorf("migration %s: want version %d", m.Name(), i+1)
		}
	}
	return all, nil
}

func read(name string) (Migration, error) {
	base := strings.TrimSuffix(path.Base(name), ".sql")
	num, desc, ok := strings.Cut(base, "_")
	if !ok || desc == "" {
		return Migration{}, fmt.Errorf("migration %s: name must look like NN_description.sql", name)
	}
	version, err := strconv.Atoi(num)
	if err != nil {
		return Migration{}, fmt.Errorf("migration %s: bad version: %w", name, err)
	}

	body, err := sqlFiles.ReadFile(name)
	if err != nil {
		return Migration{}, fmt.Errorf("migration %s: %w", name, err)
	}
	return Migration{Version: version, Description: desc, SQL: string(body)}, nil
}

// Run applies every pending migration, each in its own transaction.
func Run(db *sql.DB) error {
	pending, err := Pending(db)
	if err != nil {
		return err
	}
	for _, m := range pending {
		if err := apply(db, m); err != nil {
			return fmt.Errorf("migration %s: %w", m.Name(), err)
		}
	}
	return nil
}

func apply(db *sql.DB, m Migration) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	// A no-op once Commit has succeeded.
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(m.SQL); err != nil {
		return err
	}
	if _, err := tx.Exec(
		"INSERT INTO schema_migrations (version, description) VALUES (?, ?)",
		m.Version, m.Description,
	); err != nil {
		return fmt.Errorf("record version: %w", err)
	}
	return tx.Commit()
}

// CurrentVersion returns the highest applied version, 0 on a fresh database.
func CurrentVersion(db *sql.DB) (int, error) {
	if _, err := db.Exec(schemaTable); err != nil {
		return 0, fmt.Errorf("create schema_migrations: %w", err)
	}

	var version sql.NullInt64
	if err := db.QueryRow("SELECT MAX(version) FROM schema_migrations").Scan(&version); err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	return int(version.Int64), nil
}

// Pending returns the migrations newer than CurrentVersion.
func Pending(db *sql.DB) ([]Migration, error) {
	all, err := Load()
	if err != nil {
		return nil, err
	}
	current, err := CurrentVersion(db)
	if err != nil {
		return nil, err
	}

	i, _ := slices.BinarySearchFunc(all, current+1, func(m Migration, v int) int {
		return cmp.Compare(m.Version, v)
	})
	return all[i:], nil
}
