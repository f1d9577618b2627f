package database

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrorKind groups failed statements by what an operator can do about them.
type ErrorKind string

const (
	// ErrorBusy is write contention: SQLITE_BUSY, or a PostgreSQL
	// serialization failure or deadlock.
	ErrorBusy ErrorKind = "busy"
	// ErrorLocked is a table or row lock that could not be taken.
	ErrorLocked ErrorKind = "locked"
	// ErrorConnection covers a closed pool, refused connects and
	// PostgreSQL connection-exception errors.
	ErrorConnection ErrorKind = "connection"
	ErrorOther      ErrorKind = "other"
)

var errorKinds = []ErrorKind{ErrorBusy, ErrorLocked, ErrorConnection, ErrorOther}

// classifyError maps a statement error from dialect to an ErrorKind. ok is
// false for errors that say nothing about the store: caller cancellation and
// gorm's record-not-found.
func classifyError(dialect Dialect, err error) (kind ErrorKind, ok bool) {
	if err == nil ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "database is closed") || strings.Contains(msg, "connection is already closed") {
		return ErrorConnection, true
	}

	if dialect == DialectPostgres {
		return classifyPostgresError(err, msg), true
	}
	return classifySQLiteError(msg), true
}

func classifySQLiteError(msg string) ErrorKind {
	switch {
	case strings.Contains(msg, "sqlite_locked") || strings.Contains(msg, "database table is locked"):
		return ErrorLocked
	case strings.Contains(msg, "sqlite_busy") || strings.Contains(msg, "database is locked") || strings.Contains(msg, "busy timeout"):
		return ErrorBusy
	case strings.Contains(msg, "unable to open database"):
		return ErrorConnection
	}
	return ErrorOther
}

func classifyPostgresError(err error, msg string) ErrorKind {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == "40001" || pgErr.Code == "40P01":
			return ErrorBusy
		case pgErr.Code == "55P03":
			return ErrorLocked
		case pgErr.Code == "53300" || strings.HasPrefix(pgErr.Code, "08"):
			return ErrorConnection
		}
		return ErrorOther
	}

	if pgconn.Timeout(err) || strings.Contains(msg, "failed to connect") {
		return ErrorConnection
	}
	return ErrorOther
}

// errorCounters tallies classified errors per dialect for /api/metrics.
type errorCounters struct {
	mu     sync.Mutex
	counts map[Dialect]map[ErrorKind]uint64
}

var storeErrors = &errorCounters{}

func (c *errorCounters) record(dialect Dialect, err error) {
	kind, ok := classifyError(dialect, err)
	if !ok {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.counts == nil {
		c.counts = make(map[Dialect]map[ErrorKind]uint64)
	}
	if c.counts[dialect] == nil {
		c.counts[dialect] = make(map[ErrorKind]uint64)
	}
	c.counts[dialect][kind]++
}

func (c *errorCounters) snapshot(dialect Dialect) map[ErrorKind]uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make(map[ErrorKind]uint64, len(errorKinds))
	for _, kind := range errorKinds {
		out[kind] = c.counts[dialect][kind]
	}
	return out
}

// ErrorCounts returns every ErrorKind's running total for dialect, zeros included.
func ErrorCounts(dialect Dialect) map[ErrorKind]uint64 {
	return storeErrors.snapshot(dialect)
}
