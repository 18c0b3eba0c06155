package testutil

import (
	"database/sql"
	"testing"

	"github.com/stonebridgedev/clearview/internal/db"
	"github.com/stonebridgedev/clearview/internal/store"
)

// NewTestDB creates an in-memory SQLite database with all migrations applied.
// The database is closed when the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

// NewTestStore creates a DiskStore rooted in a per-test temp directory.
func NewTestStore(t *testing.T) *store.DiskStore {
	t.Helper()
	s, err := store.Open(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}
	return s
}
