// Package dbtest opens throwaway in-memory databases for repository and handler tests.
package dbtest

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/budget-control/backend/config"
	"github.com/budget-control/backend/internal/infra/db"
	"github.com/budget-control/backend/internal/integration/persistence/model"
)

// New returns a migrated in-memory SQLite database closed at the end of the test.
// The pool is pinned to one connection so every query sees the same memory database.
func New(t *testing.T) *gorm.DB {
	t.Helper()

	database, err := db.NewConnection(&config.DatabaseConfig{
		Driver:       config.DriverSQLite,
		URL:          ":memory:",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(model.All()...))

	t.Cleanup(func() {
		_ = database.Close()
	})

	return database.DB()
}
