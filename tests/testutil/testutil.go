package testutil

import (
	"os"
	"testing"

	"github.com/lena-laurent/blanks-inventory-api/storage"
	"github.com/lena-laurent/blanks-inventory-api/store"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// RequireTestEnvironment ensures that tests are running in the test environment.
// This prevents accidental execution of tests against production or development databases.
// It will fail the test immediately if GO_ENV is not set to "test".
func RequireTestEnvironment(t *testing.T) {
	t.Helper()

	env := os.Getenv("GO_ENV")
	if env != "test" {
		t.Fatalf("SAFETY CHECK FAILED: Tests must run with GO_ENV=test to prevent data loss. Current GO_ENV=%q. Set GO_ENV=test before running tests.", env)
	}
}

// MustSetTestEnvironment sets GO_ENV to test and fails if it cannot be set.
// Use this in TestMain or suite setup functions.
func MustSetTestEnvironment(t *testing.T) {
	t.Helper()

	if err := os.Setenv("GO_ENV", "test"); err != nil {
		t.Fatalf("Failed to set GO_ENV=test: %v", err)
	}
	if os.Getenv("GO_ENV") != "test" {
		t.Fatal("Failed to verify GO_ENV=test")
	}
}

// NewTestDatabase opens a fresh in-memory database with the key-value table
// migrated
func NewTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	gateway := storage.NewGateway(db)
	if err := gateway.Migrate(); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return db
}

// NewHydratedStores builds stores over the given database and runs hydration
// synchronously, so every store is Ready when the test body starts
func NewHydratedStores(t *testing.T, db *gorm.DB) (*store.Stores, *storage.Gateway) {
	t.Helper()

	gateway := storage.NewGateway(db)
	stores := store.New(gateway)
	stores.Hydrate()
	return stores, gateway
}
