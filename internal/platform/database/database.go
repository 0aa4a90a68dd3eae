// Package database owns the relational store handle shared by every domain adapter.
package database

import (
	"context"
	"log/slog"
	"strings"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Dialect names for the supported stores, as reported by gorm.Dialector.Name.
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite"
)

// Options tune connection behaviour.
type Options struct {
	// Debug enables SQL statement logging.
	Debug        bool
	MaxOpenConns int
}

func (o Options) maxOpenConns(fallback int) int {
	if o.MaxOpenConns > 0 {
		return o.MaxOpenConns
	}
	return fallback
}

func gormConfig(opts Options) *gorm.Config {
	level := gormlogger.Warn
	if opts.Debug {
		level = gormlogger.Info
	}
	return &gorm.Config{
		// Driver errors are mapped onto gorm.ErrDuplicatedKey and friends.
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(level),
	}
}

// Open connects to PostgreSQL when postgresDSN is set and to the embedded
// SQLite file at sqlitePath otherwise. The cleanup closes the pool.
func Open(ctx context.Context, logger *slog.Logger, postgresDSN, sqlitePath string, opts Options) (*gorm.DB, func(), error) {
	var (
		db  *gorm.DB
		err error
	)
	if strings.TrimSpace(postgresDSN) != "" {
		db, err = ConnectPostgres(ctx, postgresDSN, opts)
	} else {
		if logger != nil {
			logger.Warn("POSTGRES_DSN not set, using embedded sqlite store", slog.String("path", sqlitePath))
		}
		db, err = ConnectSQLite(ctx, sqlitePath, opts)
	}
	if err != nil {
		return nil, func() {}, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, func() {}, err
	}
	if logger != nil {
		logger.Info("store connection established", slog.String("dialect", Dialect(db)))
	}
	return db, func() { _ = sqlDB.Close() }, nil
}

// Dialect reports which store backs db.
func Dialect(db *gorm.DB) string {
	if db == nil || db.Dialector == nil {
		return ""
	}
	return db.Dialector.Name()
}

// Ping checks store reachability.
func Ping(ctx context.Context, db *gorm.DB) error {
	if db == nil {
		return ErrUnavailable
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return Classify(err)
	}
	return nil
}
