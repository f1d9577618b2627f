package database

import (
	"context"
	"log"
	"time"
	"todolist/config"
	"todolist/models"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// dialect of the handle in DB; empty until InitDB succeeds.
var dialect Dialect

// InitDB opens the database named by config.Settings.DatabaseURL, sizes the pool
// for its dialect, applies SQLite PRAGMAs, migrates models.Item and assigns the
// handle to DB.
func InitDB() error {
	var err error

	// Configure GORM log level
	logLevel := logger.Silent
	if config.Settings.LogLevel == "DEBUG" {
		logLevel = logger.Info
	}

	d := dialectFor(config.Settings.DatabaseURL)
	gormLogger := logger.New(
		log.New(log.Writer(), "\r\n", log.LstdFlags),
		logger.Config{LogLevel: logLevel},
	)

	DB, err = gorm.Open(openDialector(d, config.Settings.DatabaseURL, config.Settings), &gorm.Config{
		Logger: newStoreLogger(d, gormLogger),
	})
	if err != nil {
		return err
	}
	dialect = d

	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	poolFor(d, config.Settings).apply(sqlDB)

	if d == DialectSQLite {
		applySQLitePragmas(DB, config.Settings)
	}

	if err = DB.AutoMigrate(&models.Item{}); err != nil {
		return err
	}

	log.Printf("Database initialized successfully (%s)", d)
	return nil
}

// CloseDB closes the database connection and releases resources
func CloseDB() error {
	if DB == nil {
		return nil
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}

	log.Println("Closing database connection...")
	err = sqlDB.Close()
	DB = nil
	return err
}

// ActiveDialect reports the backend InitDB last opened.
func ActiveDialect() Dialect {
	return dialect
}

// Up pings the database, bounding the ping to 200ms when ctx carries no deadline.
func Up(ctx context.Context) bool {
	if DB == nil {
		return false
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return false
	}

	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, 200*time.Millisecond)
		defer cancel()
	}

	return sqlDB.PingContext(ctx) == nil
}
