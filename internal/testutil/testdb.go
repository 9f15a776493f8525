package testutil

import (
	"database/sql"
	"testing"

	"github.com/alexanderramin/slotlog/internal/db"
)

// NewTestDB opens a migrated, seeded in-memory database that is closed when
// the test ends.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

// NewEmptyTestDB is NewTestDB without the seeded default tags.
func NewEmptyTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database := NewTestDB(t)
	if _, err := database.Exec(`DELETE FROM tags`); err != nil {
		t.Fatalf("failed to clear seeded tags: %v", err)
	}
	return database
}

func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}
