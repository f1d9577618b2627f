package database

import (
	"database/sql"
	"time"
	"todolist/config"
)

type poolConfig struct {
	maxOpenConns int
	maxIdleConns int
	maxIdleSec   int
	maxLifeSec   int
}

// poolFor picks the pool settings for dialect. SQLite serialises writers, so
// its defaults keep a single connection; PostgreSQL gets its own PG_* sizing.
func poolFor(dialect Dialect, settings *config.Config) poolConfig {
	var cfg poolConfig
	switch dialect {
	case DialectPostgres:
		cfg = poolConfig{
			maxOpenConns: settings.PGMaxOpenConns,
			maxIdleConns: settings.PGMaxIdleConns,
			maxIdleSec:   settings.PGConnMaxIdleSec,
			maxLifeSec:   settings.PGConnMaxLifeSec,
		}
	default:
		cfg = poolConfig{
			maxOpenConns: settings.SQLiteMaxOpenConns,
			maxIdleConns: settings.SQLiteMaxIdleConns,
			maxIdleSec:   settings.SQLiteConnMaxIdleSec,
			maxLifeSec:   settings.SQLiteConnMaxLifeSec,
		}
	}
	return cfg.bounded()
}

// bounded keeps at least one open connection, never more idle than open, and
// no negative durations.
func (cfg poolConfig) bounded() poolConfig {
	cfg.maxOpenConns = max(cfg.maxOpenConns, 1)
	cfg.maxIdleConns = min(max(cfg.maxIdleConns, 0), cfg.maxOpenConns)
	cfg.maxIdleSec = max(cfg.maxIdleSec, 0)
	cfg.maxLifeSec = max(cfg.maxLifeSec, 0)
	return cfg
}

func (cfg poolConfig) apply(db *sql.DB) {
	db.SetMaxOpenConns(cfg.maxOpenConns)
	db.SetMaxIdleConns(cfg.maxIdleConns)
	db.SetConnMaxIdleTime(time.Duration(cfg.maxIdleSec) * time.Second)
	db.SetConnMaxLifetime(time.Duration(cfg.maxLifeSec) * time.Second)
}
