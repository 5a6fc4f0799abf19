package db

import (
	"database/sql"
	"path/filepath"
	"testing"
)

// OpenTestSQLite opens a write/read pool pair backed by a throwaway SQLite
// file and applies the history schema. Both pools are closed when the test
// finishes.
//
// Tests that only exercise the write path can ignore the read pool.
func OpenTestSQLite(t *testing.T) (writeDB, readDB *sql.DB) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "history.sqlite")

	writeDB, readDB, err := OpenSQLitePair(dbPath, 4)
	if err != nil {
		t.Fatalf("open history database: %v", err)
	}
	t.Cleanup(func() {
		_ = readDB.Close()
		_ = writeDB.Close()
	})

	if err := RunMigrations(writeDB); err != nil {
		t.Fatalf("apply history schema: %v", err)
	}

	return writeDB, readDB
}
