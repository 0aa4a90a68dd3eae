package database

import (
	"fmt"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// IDIn filters column by a set of identifiers. PostgreSQL receives the set
// as a single array parameter so the statement shape does not vary with its size.
func IDIn(column string, ids []int64) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if len(ids) == 0 {
			return db.Where("1 = 0")
		}
		if Dialect(db) == DialectPostgres {
			return db.Where(fmt.Sprintf("%s = ANY(?)", column), pq.Array(ids))
		}
		return db.Where(fmt.Sprintf("%s IN ?", column), ids)
	}
}

// MonthBucket renders a SQL expression yielding the YYYY-MM of a UTC timestamp column.
func MonthBucket(db *gorm.DB, column string) string {
	if Dialect(db) == DialectPostgres {
		return fmt.Sprintf("to_char(%s AT TIME ZONE 'UTC', 'YYYY-MM')", column)
	}
	// stored as "YYYY-MM-DD HH:MM:SS..." text
	return fmt.Sprintf("substr(%s, 1, 7)", column)
}
