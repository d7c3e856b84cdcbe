package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gametracker/backend/internal/logging"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Logger routes gorm's logs into the zerolog logger.
// Record-not-found errors are not logged; queries slower than SlowThreshold are warned.
type Logger struct {
	SlowThreshold time.Duration
	Level         logger.LogLevel
}

// NewLogger returns a Logger at Warn level.
func NewLogger(slowThreshold time.Duration) *Logger {
	return &Logger{SlowThreshold: slowThreshold, Level: logger.Warn}
}

// LogMode implements logger.Interface.
func (l *Logger) LogMode(level logger.LogLevel) logger.Interface {
	clone := *l
	clone.Level = level
	return &clone
}

// Info implements logger.Interface.
func (l *Logger) Info(_ context.Context, msg string, args ...interface{}) {
	if l.Level >= logger.Info {
		logging.Info().Str("component", "gorm").Msg(fmt.Sprintf(msg, args...))
	}
}

// Warn implements logger.Interface.
func (l *Logger) Warn(_ context.Context, msg string, args ...interface{}) {
	if l.Level >= logger.Warn {
		logging.Warn().Str("component", "gorm").Msg(fmt.Sprintf(msg, args...))
	}
}

// Error implements logger.Interface.
func (l *Logger) Error(_ context.Context, msg string, args ...interface{}) {
	if l.Level >= logger.Error {
		logging.Error().Str("component", "gorm").Msg(fmt.Sprintf(msg, args...))
	}
}

// Trace implements logger.Interface.
func (l *Logger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.Level <= logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	switch {
	case err != nil && l.Level >= logger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		sql, rows := fc()
		logging.Error().Str("component", "gorm").Err(err).
			Dur("elapsed", elapsed).Int64("rows", rows).Str("sql", sql).
			Msg("Query failed")
	case l.SlowThreshold > 0 && elapsed > l.SlowThreshold && l.Level >= logger.Warn:
		sql, rows := fc()
		logging.Warn().Str("component", "gorm").
			Dur("elapsed", elapsed).Dur("threshold", l.SlowThreshold).Int64("rows", rows).Str("sql", sql).
			Msg("Slow query")
	case l.Level >= logger.Info:
		sql, rows := fc()
		logging.Debug().Str("component", "gorm").
			Dur("elapsed", elapsed).Int64("rows", rows).Str("sql", sql).
			Msg("Query")
	}
}
