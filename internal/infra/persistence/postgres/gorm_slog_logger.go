package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"gusto/internal/errors"
	"gusto/internal/infra/metrics"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// queryLogger adapts gorm's logger to slog and records every statement in
// the query metrics. Record-not-found is an expected lookup outcome and never
// logged as a failure.
type queryLogger struct {
	logger        *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

// newGormSlogLogger logs failed and slow statements, and every statement in debug mode.
func newGormSlogLogger(baseLogger *slog.Logger, debug bool, slowThreshold time.Duration) logger.Interface {
	level := logger.Warn
	if debug {
		level = logger.Info
	}

	return &queryLogger{
		logger:        baseLogger,
		level:         level,
		slowThreshold: slowThreshold,
	}
}

func (l *queryLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *queryLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Info, slog.LevelInfo, msg, args...)
}

func (l *queryLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Warn, slog.LevelWarn, msg, args...)
}

func (l *queryLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Error, slog.LevelError, msg, args...)
}

func (l *queryLogger) printf(ctx context.Context, min logger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.logger == nil || l.level < min {
		return
	}

	l.logger.LogAttrs(ctx, level, "gorm", slog.String("message", fmt.Sprintf(msg, args...)))
}

func (l *queryLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	sql, rows := fc()
	failed := err != nil && !errors.Is(err, gorm.ErrRecordNotFound)

	metrics.RecordQuery(statementKind(sql), elapsed, failed)

	if l.logger == nil || l.level == logger.Silent {
		return
	}

	attrs := []slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}

	switch {
	case failed && l.level >= logger.Error:
		l.logger.LogAttrs(ctx, slog.LevelError, "Query failed", append(attrs, slog.String("error", err.Error()))...)
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn:
		l.logger.LogAttrs(ctx, slog.LevelWarn, "Slow query", append(attrs, slog.Duration("threshold", l.slowThreshold))...)
	case l.level >= logger.Info:
		l.logger.LogAttrs(ctx, slog.LevelDebug, "Query", attrs...)
	}
}

// statementKind returns the lower-cased leading SQL keyword, used as a metric label.
func statementKind(sql string) string {
	keyword, _, _ := strings.Cut(strings.TrimSpace(sql), " ")
	switch keyword = strings.ToLower(keyword); keyword {
	case "select", "insert", "update", "delete", "begin", "commit", "rollback", "savepoint":
		return keyword
	case "":
		return "unknown"
	default:
		return "other"
	}
}
