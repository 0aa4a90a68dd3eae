// Package dbtest provides a migrated in-memory store for tests.
package dbtest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Apurer/go-gin-shop-api/internal/platform/database"
	"github.com/Apurer/go-gin-shop-api/internal/platform/migrations"
)

// Open returns a fresh SQLite database with the shop schema applied.
// The connection is closed when the test finishes.
func Open(t testing.TB) *gorm.DB {
	t.Helper()
	db, err := database.ConnectSQLite(context.Background(), database.MemoryPath, database.Options{})
	require.NoError(t, err)
	require.NoError(t, migrations.Run(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
