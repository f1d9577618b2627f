package database

import (
	"context"
	"time"

	"gorm.io/gorm/logger"
)

// storeLogger is the gorm logger for the item store. It forwards everything to
// inner and feeds failed statements into the per-dialect error counters.
type storeLogger struct {
	logger.Interface
	dialect Dialect
}

func newStoreLogger(dialect Dialect, inner logger.Interface) storeLogger {
	return storeLogger{Interface: inner, dialect: dialect}
}

func (l storeLogger) LogMode(level logger.LogLevel) logger.Interface {
	return newStoreLogger(l.dialect, l.Interface.LogMode(level))
}

func (l storeLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if err != nil {
		storeErrors.record(l.dialect, err)
	}
	l.Interface.Trace(ctx, begin, fc, err)
}
