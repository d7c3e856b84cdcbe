package database

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"gametracker/backend/internal/logging"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	logging.Init(logging.Config{Level: "debug", Format: "json", Output: &buf})
	t.Cleanup(func() { logging.Init(logging.Config{}) })
	return &buf
}

func query(sql string) func() (string, int64) {
	return func() (string, int64) { return sql, 1 }
}

func TestLogger_IgnoresRecordNotFound(t *testing.T) {
	buf := captureLogs(t)
	l := NewLogger(time.Second)

	l.Trace(context.Background(), time.Now(), query("SELECT 1"), gorm.ErrRecordNotFound)

	if buf.Len() != 0 {
		t.Errorf("record-not-found was logged: %s", buf.String())
	}
}

func TestLogger_LogsErrors(t *testing.T) {
	buf := captureLogs(t)
	l := NewLogger(time.Second)

	l.Trace(context.Background(), time.Now(), query("SELECT broken"), errors.New("syntax error"))

	out := buf.String()
	if !strings.Contains(out, "Query failed") || !strings.Contains(out, "SELECT broken") {
		t.Errorf("missing error entry: %s", out)
	}
}

func TestLogger_WarnsSlowQueries(t *testing.T) {
	buf := captureLogs(t)
	l := NewLogger(10 * time.Millisecond)

	l.Trace(context.Background(), time.Now().Add(-time.Second), query("SELECT slow"), nil)

	if !strings.Contains(buf.String(), "Slow query") {
		t.Errorf("missing slow query entry: %s", buf.String())
	}
}

func TestLogger_SilentMode(t *testing.T) {
	buf := captureLogs(t)
	l := NewLogger(10 * time.Millisecond).LogMode(logger.Silent)

	l.Trace(context.Background(), time.Now().Add(-time.Second), query("SELECT slow"), errors.New("boom"))
	l.Error(context.Background(), "boom %d", 1)

	if buf.Len() != 0 {
		t.Errorf("silent logger wrote: %s", buf.String())
	}
}
