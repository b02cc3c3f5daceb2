// Package psqltest opens migrated in-memory SQLite databases for tests.
package psqltest

import (
	"context"
	"testing"

	"nostalgic/nostalgic/sources/psql"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// NewDB returns a fresh, migrated in-memory database. The pool is capped at a
// single connection so every query sees the same in-memory schema.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := psql.Open(sqlite.Open(":memory:"))
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := psql.Migrate(context.Background(), db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}
