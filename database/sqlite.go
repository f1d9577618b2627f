package database

import (
	"log"
	"net/url"
	"strconv"
	"strings"
	"todolist/config"

	"gorm.io/gorm"
)

type pragma struct {
	name  string
	value string
}

// sqlitePragmas lists the PRAGMAs settings ask for, in the order they are
// applied. Unknown journal or synchronous modes are left out.
func sqlitePragmas(settings *config.Config) []pragma {
	if !settings.SQLitePragmasEnabled {
		return nil
	}

	var pragmas []pragma
	if settings.SQLiteBusyTimeoutMS > 0 {
		pragmas = append(pragmas, pragma{"busy_timeout", strconv.Itoa(settings.SQLiteBusyTimeoutMS)})
	}
	if mode := normalizeSQLiteJournalMode(settings.SQLiteJournalMode); mode != "" {
		pragmas = append(pragmas, pragma{"journal_mode", mode})
	}
	if mode := normalizeSQLiteSynchronous(settings.SQLiteSynchronous); mode != "" {
		pragmas = append(pragmas, pragma{"synchronous", mode})
	}
	foreignKeys := "0"
	if settings.SQLiteForeignKeys {
		foreignKeys = "1"
	}
	return append(pragmas, pragma{"foreign_keys", foreignKeys})
}

// buildSQLiteDSN adds one _pragma=name(value) parameter per PRAGMA so every new
// pooled connection starts tuned. Existing query parameters are kept.
func buildSQLiteDSN(dbPath string, settings *config.Config) string {
	base, rawQuery, _ := strings.Cut(strings.TrimSpace(dbPath), "?")
	query, _ := url.ParseQuery(rawQuery)

	for _, p := range sqlitePragmas(settings) {
		query.Add("_pragma", p.name+"("+p.value+")")
	}

	if len(query) == 0 {
		return base
	}
	return base + "?" + query.Encode()
}

// applySQLitePragmas re-issues the PRAGMAs on an open handle. A failing PRAGMA
// is logged and skipped; the database stays usable with SQLite's defaults.
func applySQLitePragmas(db *gorm.DB, settings *config.Config) {
	for _, p := range sqlitePragmas(settings) {
		if err := db.Exec("PRAGMA " + p.name + " = " + p.value).Error; err != nil {
			log.Printf("SQLite PRAGMA %s = %s failed: %v", p.name, p.value, err)
		}
	}
}

func normalizeSQLiteJournalMode(value string) string {
	switch value = strings.ToUpper(strings.TrimSpace(value)); value {
	case "WAL", "DELETE", "TRUNCATE", "PERSIST", "MEMORY", "OFF":
		return value
	}
	return ""
}

func normalizeSQLiteSynchronous(value string) string {
	switch value = strings.ToUpper(strings.TrimSpace(value)); value {
	case "OFF", "NORMAL", "FULL", "EXTRA", "0", "1", "2", "3":
		return value
	}
	return ""
}
