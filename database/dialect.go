package database

import (
	"strings"
	"todolist/config"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Dialect names the storage backend behind DATABASE_URL. The values match
// gorm.Dialector.Name() for the two supported drivers.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

// dialectFor reports which backend databaseURL points at. Only postgres:// and
// postgresql:// URLs select PostgreSQL; anything else is a SQLite path.
func dialectFor(databaseURL string) Dialect {
	lower := strings.ToLower(strings.TrimSpace(databaseURL))
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		return DialectPostgres
	}
	return DialectSQLite
}

// openDialector builds the gorm dialector for dialect. PostgreSQL URLs go to the
// pgx-backed driver untouched; SQLite paths get their PRAGMA parameters.
func openDialector(dialect Dialect, databaseURL string, settings *config.Config) gorm.Dialector {
	if dialect == DialectPostgres {
		return postgres.Open(strings.TrimSpace(databaseURL))
	}
	return sqlite.Open(buildSQLiteDSN(databaseURL, settings))
}
