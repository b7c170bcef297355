// Package helpers provides shared test utilities.
package helpers

import (
	"testing"

	"gorm.io/gorm"

	"github.com/featherlane/henhouse-go/internal/infrastructure/database"
)

// NewTestDB opens an in-memory database with migrations applied and
// registers its cleanup with the test.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.NewTestConnection()
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		_ = database.Close(db)
	})
	return db
}
