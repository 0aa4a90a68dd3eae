package database

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	sqlite3 "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestClassifiers(t *testing.T) {
	cases := []struct {
		name        string
		err         error
		unique      bool
		foreignKey  bool
		check       bool
		unavailable bool
	}{
		{name: "gorm duplicate", err: fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey), unique: true},
		{name: "gorm foreign key", err: gorm.ErrForeignKeyViolated, foreignKey: true},
		{name: "gorm check", err: gorm.ErrCheckConstraintViolated, check: true},
		{name: "postgres unique", err: &pgconn.PgError{Code: "23505"}, unique: true},
		{name: "postgres foreign key", err: &pgconn.PgError{Code: "23503"}, foreignKey: true},
		{name: "postgres admin shutdown", err: &pgconn.PgError{Code: "57P01"}, unavailable: true},
		{name: "sqlite unique", err: sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}, unique: true},
		{name: "sqlite check", err: sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintCheck}, check: true},
		{name: "sqlite busy", err: sqlite3.Error{Code: sqlite3.ErrBusy}, unavailable: true},
		{name: "deadline", err: context.DeadlineExceeded, unavailable: true},
		{name: "plain", err: errors.New("boom")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.unique, IsUniqueViolation(tc.err))
			assert.Equal(t, tc.foreignKey, IsForeignKeyViolation(tc.err))
			assert.Equal(t, tc.check, IsCheckViolation(tc.err))
			assert.Equal(t, tc.unavailable, IsUnavailable(tc.err))
		})
	}
}

func TestClassify_WrapsTransientErrors(t *testing.T) {
	err := Classify(context.DeadlineExceeded)
	require.ErrorIs(t, err, ErrUnavailable)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	plain := errors.New("boom")
	require.Same(t, plain, Classify(plain))
	require.NoError(t, Classify(nil))
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "file::memory:?_busy_timeout=5000&_foreign_keys=on", sqliteDSN(MemoryPath))
	assert.Equal(t, "file:shop.db?_busy_timeout=5000&_foreign_keys=on&_journal_mode=WAL", sqliteDSN("shop.db"))
}
