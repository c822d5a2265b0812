// Package testutil provides test helpers for database-backed tests.
package testutil

import (
	"context"
	"testing"

	"github.com/farmaon/farmaclass/internal/model"
	"github.com/farmaon/farmaclass/internal/storage"
)

// TestDB wraps an in-memory store with test conveniences.
type TestDB struct {
	Storage *storage.SQLiteStorage
	t       *testing.T
}

// SetupTestDB creates a new in-memory test database with migrations
// applied and cleanup registered.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	store, err := storage.NewSQLiteStorage(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := store.Migrate(context.Background()); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() {
		_ = store.Close()
	})

	return &TestDB{Storage: store, t: t}
}

// SeedProducts inserts products and returns the stored rows with their
// assigned IDs.
func (db *TestDB) SeedProducts(products []model.Product) []model.Product {
	db.t.Helper()

	ctx := context.Background()
	if err := db.Storage.SaveProducts(ctx, products); err != nil {
		db.t.Fatalf("failed to seed products: %v", err)
	}

	stored, err := db.Storage.ListProducts(ctx)
	if err != nil {
		db.t.Fatalf("failed to list seeded products: %v", err)
	}
	return stored
}
