package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"todolist/version"
)

// Config holds todolist runtime configuration.
type Config struct {
	LogLevel             string
	LogFilePath          string
	LogBackups           int
	Port                 int
	DatabaseURL          string
	SQLitePragmasEnabled bool
	SQLiteBusyTimeoutMS  int
	SQLiteJournalMode    string
	SQLiteSynchronous    string
	SQLiteForeignKeys    bool
	SQLiteMaxOpenConns   int
	SQLiteMaxIdleConns   int
	SQLiteConnMaxIdleSec int
	SQLiteConnMaxLifeSec int
	PGMaxOpenConns       int
	PGMaxIdleConns       int
	PGConnMaxIdleSec     int
	PGConnMaxLifeSec     int
	CORSEnabled          bool
	ShutdownTimeoutSec   int
	CLIMode              bool
	CLIServer            string // Server URL for CLI mode
	CLIProfile           string // Named server from the CLI config file
}

// Settings is the global configuration instance populated from environment variables and flags.
var Settings *Config

// init populates Settings from environment variables, falling back to defaults.
func init() {
	Settings = &Config{
		LogLevel:             getEnv("LOG_LEVEL", "INFO"),
		LogFilePath:          getEnv("LOG_FILE", "./todolist.log"),
		LogBackups:           getEnvInt("LOG_BACKUPS", 1),
		Port:                 getEnvInt("PORT", 8000),
		DatabaseURL:          getEnv("DATABASE_URL", "todolist.db"),
		SQLitePragmasEnabled: getEnvBool("SQLITE_PRAGMAS_ENABLED", true),
		SQLiteBusyTimeoutMS:  getEnvInt("SQLITE_BUSY_TIMEOUT_MS", 5000),
		SQLiteJournalMode:    getEnv("SQLITE_JOURNAL_MODE", "WAL"),
		SQLiteSynchronous:    getEnv("SQLITE_SYNCHRONOUS", "NORMAL"),
		SQLiteForeignKeys:    getEnvBool("SQLITE_FOREIGN_KEYS", true),
		SQLiteMaxOpenConns:   getEnvInt("SQLITE_MAX_OPEN_CONNS", 1),
		SQLiteMaxIdleConns:   getEnvInt("SQLITE_MAX_IDLE_CONNS", 1),
		SQLiteConnMaxIdleSec: getEnvInt("SQLITE_CONN_MAX_IDLE_SECONDS", 300),
		SQLiteConnMaxLifeSec: getEnvInt("SQLITE_CONN_MAX_LIFETIME_SECONDS", 0),
		PGMaxOpenConns:       getEnvInt("PG_MAX_OPEN_CONNS", 10),
		PGMaxIdleConns:       getEnvInt("PG_MAX_IDLE_CONNS", 5),
		PGConnMaxIdleSec:     getEnvInt("PG_CONN_MAX_IDLE_SECONDS", 300),
		PGConnMaxLifeSec:     getEnvInt("PG_CONN_MAX_LIFETIME_SECONDS", 1800),
		CORSEnabled:          getEnvBool("CORS_ENABLED", true),
		ShutdownTimeoutSec:   getEnvInt("SHUTDOWN_TIMEOUT_SECONDS", 5),
		CLIMode:              getEnvBool("CLI_MODE", false),
		CLIServer:            getEnv("CLI_SERVER", ""),
	}
}

// ParseFlags parses command-line flags and applies them on top of Settings.
// --help prints usage and --version prints build info; both exit.
func ParseFlags() {
	flag.Usage = func() {
		out := flag.CommandLine.Output()
		fmt.Fprintf(out, "todolist - a minimal to-do list web application\n\n")
		fmt.Fprintf(out, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintln(out, "Options:")
		flag.PrintDefaults()
		fmt.Fprintln(out, "\nEnvironment variables:")
		fmt.Fprintln(out, "  LOG_LEVEL                         Log level (DEBUG, INFO, WARN, ERROR)")
		fmt.Fprintln(out, "  LOG_FILE                          Log file path (default ./todolist.log)")
		fmt.Fprintln(out, "  LOG_BACKUPS                       Rotated log files to keep (default 1)")
		fmt.Fprintln(out, "  PORT                              HTTP server port (default 8000)")
		fmt.Fprintln(out, "  DATABASE_URL                      SQLite path or postgres:// URL (default todolist.db)")
		fmt.Fprintln(out, "  SQLITE_PRAGMAS_ENABLED            Enable SQLite PRAGMAs (true/false, default true)")
		fmt.Fprintln(out, "  SQLITE_BUSY_TIMEOUT_MS            SQLite busy_timeout in milliseconds (default 5000)")
		fmt.Fprintln(out, "  SQLITE_JOURNAL_MODE               SQLite journal_mode (default WAL)")
		fmt.Fprintln(out, "  SQLITE_SYNCHRONOUS                SQLite synchronous (default NORMAL)")
		fmt.Fprintln(out, "  SQLITE_FOREIGN_KEYS               Enable SQLite foreign_keys (true/false, default true)")
		fmt.Fprintln(out, "  SQLITE_MAX_OPEN_CONNS             SQLite MaxOpenConns (default 1)")
		fmt.Fprintln(out, "  SQLITE_MAX_IDLE_CONNS             SQLite MaxIdleConns (default 1)")
		fmt.Fprintln(out, "  SQLITE_CONN_MAX_IDLE_SECONDS      SQLite ConnMaxIdleTime in seconds (default 300)")
		fmt.Fprintln(out, "  SQLITE_CONN_MAX_LIFETIME_SECONDS  SQLite ConnMaxLifetime in seconds (default 0)")
		fmt.Fprintln(out, "  PG_MAX_OPEN_CONNS                 PostgreSQL MaxOpenConns (default 10)")
		fmt.Fprintln(out, "  PG_MAX_IDLE_CONNS                 PostgreSQL MaxIdleConns (default 5)")
		fmt.Fprintln(out, "  PG_CONN_MAX_IDLE_SECONDS          PostgreSQL ConnMaxIdleTime in seconds (default 300)")
		fmt.Fprintln(out, "  PG_CONN_MAX_LIFETIME_SECONDS      PostgreSQL ConnMaxLifetime in seconds (default 1800)")
		fmt.Fprintln(out, "  CORS_ENABLED                      Allow cross-origin API calls (true/false, default true)")
		fmt.Fprintln(out, "  SHUTDOWN_TIMEOUT_SECONDS          Graceful shutdown timeout (default 5)")
		fmt.Fprintln(out, "  CLI_SERVER                        Server URL for CLI mode")
	}

	port := flag.Int("port", Settings.Port, "HTTP server port (overrides PORT)")
	db := flag.String("db", Settings.DatabaseURL, "SQLite path or postgres:// URL (overrides DATABASE_URL)")
	sqlitePragmasEnabled := flag.Bool("sqlite-pragmas", Settings.SQLitePragmasEnabled, "Enable SQLite PRAGMAs (overrides SQLITE_PRAGMAS_ENABLED)")
	sqliteBusyTimeoutMS := flag.Int("sqlite-busy-timeout-ms", Settings.SQLiteBusyTimeoutMS, "SQLite busy_timeout in milliseconds (overrides SQLITE_BUSY_TIMEOUT_MS)")
	sqliteJournalMode := flag.String("sqlite-journal-mode", Settings.SQLiteJournalMode, "SQLite journal_mode (overrides SQLITE_JOURNAL_MODE)")
	sqliteSynchronous := flag.String("sqlite-synchronous", Settings.SQLiteSynchronous, "SQLite synchronous (overrides SQLITE_SYNCHRONOUS)")
	sqliteForeignKeys := flag.Bool("sqlite-foreign-keys", Settings.SQLiteForeignKeys, "Enable SQLite foreign_keys (overrides SQLITE_FOREIGN_KEYS)")
	sqliteMaxOpenConns := flag.Int("sqlite-max-open-conns", Settings.SQLiteMaxOpenConns, "SQLite MaxOpenConns (overrides SQLITE_MAX_OPEN_CONNS)")
	sqliteMaxIdleConns := flag.Int("sqlite-max-idle-conns", Settings.SQLiteMaxIdleConns, "SQLite MaxIdleConns (overrides SQLITE_MAX_IDLE_CONNS)")
	sqliteConnMaxIdleSec := flag.Int("sqlite-conn-max-idle-seconds", Settings.SQLiteConnMaxIdleSec, "SQLite ConnMaxIdleTime in seconds (overrides SQLITE_CONN_MAX_IDLE_SECONDS)")
	sqliteConnMaxLifeSec := flag.Int("sqlite-conn-max-lifetime-seconds", Settings.SQLiteConnMaxLifeSec, "SQLite ConnMaxLifetime in seconds (overrides SQLITE_CONN_MAX_LIFETIME_SECONDS)")
	pgMaxOpenConns := flag.Int("pg-max-open-conns", Settings.PGMaxOpenConns, "PostgreSQL MaxOpenConns (overrides PG_MAX_OPEN_CONNS)")
	pgMaxIdleConns := flag.Int("pg-max-idle-conns", Settings.PGMaxIdleConns, "PostgreSQL MaxIdleConns (overrides PG_MAX_IDLE_CONNS)")
	pgConnMaxIdleSec := flag.Int("pg-conn-max-idle-seconds", Settings.PGConnMaxIdleSec, "PostgreSQL ConnMaxIdleTime in seconds (overrides PG_CONN_MAX_IDLE_SECONDS)")
	pgConnMaxLifeSec := flag.Int("pg-conn-max-lifetime-seconds", Settings.PGConnMaxLifeSec, "PostgreSQL ConnMaxLifetime in seconds (overrides PG_CONN_MAX_LIFETIME_SECONDS)")
	logLevel := flag.String("log-level", Settings.LogLevel, "Log level: DEBUG, INFO, WARN, ERROR (overrides LOG_LEVEL)")
	logFile := flag.String("log-file", Settings.LogFilePath, "Log file path (overrides LOG_FILE)")
	logBackups := flag.Int("log-backups", Settings.LogBackups, "Rotated log files to keep (overrides LOG_BACKUPS)")
	corsEnabled := flag.Bool("cors", Settings.CORSEnabled, "Allow cross-origin API calls (overrides CORS_ENABLED)")
	cliMode := flag.Bool("cli", Settings.CLIMode, "Run in CLI mode (HTTP client only, no database)")
	cliServer := flag.String("server", Settings.CLIServer, "Server URL for CLI mode")
	cliProfile := flag.String("profile", "", "Named server from ~/.todolist/config.yaml for CLI mode")

	showHelp := flag.Bool("help", false, "Show help and exit")
	showVersion := flag.Bool("version", false, "Show version and exit")

	flag.Parse()

	if *showVersion {
		fmt.Println(version.GetBuildInfo())
		os.Exit(0)
	}

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	Settings.Port = *port
	Settings.DatabaseURL = *db
	Settings.SQLitePragmasEnabled = *sqlitePragmasEnabled
	Settings.SQLiteBusyTimeoutMS = *sqliteBusyTimeoutMS
	Settings.SQLiteJournalMode = *sqliteJournalMode
	Settings.SQLiteSynchronous = *sqliteSynchronous
	Settings.SQLiteForeignKeys = *sqliteForeignKeys
	Settings.SQLiteMaxOpenConns = *sqliteMaxOpenConns
	Settings.SQLiteMaxIdleConns = *sqliteMaxIdleConns
	Settings.SQLiteConnMaxIdleSec = *sqliteConnMaxIdleSec
	Settings.SQLiteConnMaxLifeSec = *sqliteConnMaxLifeSec
	Settings.PGMaxOpenConns = *pgMaxOpenConns
	Settings.PGMaxIdleConns = *pgMaxIdleConns
	Settings.PGConnMaxIdleSec = *pgConnMaxIdleSec
	Settings.PGConnMaxLifeSec = *pgConnMaxLifeSec
	Settings.LogLevel = *logLevel
	Settings.LogFilePath = *logFile
	Settings.LogBackups = *logBackups
	Settings.CORSEnabled = *corsEnabled
	Settings.CLIMode = *cliMode
	Settings.CLIServer = *cliServer
	Settings.CLIProfile = *cliProfile
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
