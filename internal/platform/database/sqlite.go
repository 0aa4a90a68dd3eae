package database

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// MemoryPath selects a private in-memory SQLite database.
const MemoryPath = ":memory:"

// ConnectSQLite opens the embedded store at path with foreign keys enforced.
// SQLite allows a single writer, so the pool is capped at one connection.
func ConnectSQLite(ctx context.Context, path string, opts Options) (*gorm.DB, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("sqlite path is empty")
	}
	db, err := gorm.Open(sqlite.Open(sqliteDSN(path)), gormConfig(opts))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	// an in-memory database lives as long as its connection
	sqlDB.SetConnMaxLifetime(0)
	sqlDB.SetConnMaxIdleTime(0)
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return db, nil
}

func sqliteDSN(path string) string {
	params := url.Values{}
	params.Set("_foreign_keys", "on")
	params.Set("_busy_timeout", "5000")
	if path == MemoryPath {
		return "file::memory:?" + params.Encode()
	}
	params.Set("_journal_mode", "WAL")
	return "file:" + path + "?" + params.Encode()
}
