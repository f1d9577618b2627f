package config

import (
	"flag"
	"os"
	"testing"
)

// parseArgs runs ParseFlags against args on a fresh flag set and restores
// the process-wide state afterwards.
func parseArgs(t *testing.T, args ...string) {
	t.Helper()

	oldArgs := os.Args
	oldCommandLine := flag.CommandLine
	oldSettings := *Settings
	t.Cleanup(func() {
		os.Args = oldArgs
		flag.CommandLine = oldCommandLine
		*Settings = oldSettings
	})

	os.Args = append([]string{"todolist"}, args...)
	flag.CommandLine = flag.NewFlagSet("todolist", flag.ContinueOnError)
	ParseFlags()
}

func TestParseFlags_SQLiteTuning(t *testing.T) {
	parseArgs(t,
		"--sqlite-foreign-keys=false",
		"--sqlite-conn-max-idle-seconds=42",
		"--sqlite-conn-max-lifetime-seconds=600",
	)

	if Settings.SQLiteForeignKeys {
		t.Fatalf("expected --sqlite-foreign-keys=false to disable foreign keys")
	}
	if Settings.SQLiteConnMaxIdleSec != 42 {
		t.Fatalf("SQLiteConnMaxIdleSec = %d, want 42", Settings.SQLiteConnMaxIdleSec)
	}
	if Settings.SQLiteConnMaxLifeSec != 600 {
		t.Fatalf("SQLiteConnMaxLifeSec = %d, want 600", Settings.SQLiteConnMaxLifeSec)
	}
}

func TestParseFlags_PostgresPool(t *testing.T) {
	parseArgs(t,
		"--db=postgres://todo@localhost/todo",
		"--pg-max-open-conns=25",
		"--pg-max-idle-conns=7",
		"--pg-conn-max-idle-seconds=60",
		"--pg-conn-max-lifetime-seconds=900",
	)

	if Settings.DatabaseURL != "postgres://todo@localhost/todo" {
		t.Fatalf("DatabaseURL = %q", Settings.DatabaseURL)
	}
	if Settings.PGMaxOpenConns != 25 || Settings.PGMaxIdleConns != 7 {
		t.Fatalf("pg pool = %d/%d, want 25/7", Settings.PGMaxOpenConns, Settings.PGMaxIdleConns)
	}
	if Settings.PGConnMaxIdleSec != 60 || Settings.PGConnMaxLifeSec != 900 {
		t.Fatalf("pg lifetimes = %d/%d, want 60/900", Settings.PGConnMaxIdleSec, Settings.PGConnMaxLifeSec)
	}
}

func TestParseFlags_DefaultsKeepEnvValues(t *testing.T) {
	before := *Settings
	parseArgs(t)

	if *Settings != before {
		t.Fatalf("ParseFlags without args changed settings:\n got  %+v\n want %+v", *Settings, before)
	}
}
