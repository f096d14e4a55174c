// Package testutil holds helpers shared by tests that need a history database.
package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/argot/internal/domain"
	"github.com/footprint-tools/argot/internal/store"
	"github.com/footprint-tools/argot/internal/store/migrations"
)

// NewTestDB creates a SQLite database in a temporary directory with
// migrations applied. It is closed when the test finishes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err, "failed to open test database")
	db.SetMaxOpenConns(1)

	t.Cleanup(func() {
		_ = db.Close()
	})

	err = migrations.Run(db)
	require.NoError(t, err, "failed to run migrations")

	return db
}

// NewTestStore wraps NewTestDB in a store.Store.
func NewTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.NewWithDB(NewTestDB(t))
}

// SeedHistory records lines in order, all successful.
func SeedHistory(t *testing.T, s domain.HistoryStore, lines ...string) {
	t.Helper()

	for _, line := range lines {
		err := s.Record(domain.HistoryEntry{Line: line})
		require.NoError(t, err, "failed to seed history line %q", line)
	}
}
