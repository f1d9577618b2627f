package database

import (
	"path/filepath"
	"testing"
	"todolist/config"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func poolSettings() *config.Config {
	return &config.Config{
		SQLiteMaxOpenConns:   1,
		SQLiteMaxIdleConns:   1,
		SQLiteConnMaxIdleSec: 300,
		PGMaxOpenConns:       10,
		PGMaxIdleConns:       5,
		PGConnMaxIdleSec:     300,
		PGConnMaxLifeSec:     1800,
	}
}

func TestPoolFor_PostgresIsNotCappedBySQLiteSettings(t *testing.T) {
	got := poolFor(dialectFor("postgres://todo@localhost/todo"), poolSettings())
	want := poolConfig{maxOpenConns: 10, maxIdleConns: 5, maxIdleSec: 300, maxLifeSec: 1800}
	if got != want {
		t.Fatalf("poolFor(postgres) = %+v, want %+v", got, want)
	}
}

func TestPoolFor_SQLiteKeepsSingleConnection(t *testing.T) {
	got := poolFor(DialectSQLite, poolSettings())
	want := poolConfig{maxOpenConns: 1, maxIdleConns: 1, maxIdleSec: 300, maxLifeSec: 0}
	if got != want {
		t.Fatalf("poolFor(sqlite) = %+v, want %+v", got, want)
	}
}

func TestPoolFor_DefaultSettingsGivePostgresMoreThanOneConn(t *testing.T) {
	if got := poolFor(DialectPostgres, config.Settings).maxOpenConns; got <= 1 {
		t.Fatalf("default postgres maxOpenConns = %d, want > 1", got)
	}
}

func TestPoolConfig_Bounded(t *testing.T) {
	got := poolConfig{maxOpenConns: 0, maxIdleConns: 5, maxIdleSec: -1, maxLifeSec: -3}.bounded()
	want := poolConfig{maxOpenConns: 1, maxIdleConns: 1, maxIdleSec: 0, maxLifeSec: 0}
	if got != want {
		t.Fatalf("bounded() = %+v, want %+v", got, want)
	}
}

func TestPoolConfig_ApplySetsMaxOpenConns(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "pool.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("DB(): %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	poolFor(DialectPostgres, poolSettings()).apply(sqlDB)

	if got := sqlDB.Stats().MaxOpenConnections; got != 10 {
		t.Fatalf("MaxOpenConnections = %d, want 10", got)
	}
}
