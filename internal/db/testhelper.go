package db

import (
	"database/sql"
	"path/filepath"
	"testing"
)

// OpenTestSQLite opens a migrated person store under t.TempDir() and
// registers cleanup. It returns the same write/read pool pair the CLI runs
// against, so tests exercise both handles the way production code does.
func OpenTestSQLite(t *testing.T) (writeDB, readDB *sql.DB) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "primer-test.sqlite")

	// A small read pool is plenty for single-goroutine tests.
	writeDB, readDB, err := OpenSQLitePair(path, 2)
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() {
		_ = readDB.Close()
		_ = writeDB.Close()
	})

	if err := RunMigrations(writeDB); err != nil {
		t.Fatalf("migrate test store: %v", err)
	}

	return writeDB, readDB
}
