package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"chaski/config"
	deliverycontext "chaski/internal/delivery/context"
	"chaski/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// queryLogger routes gorm output to slog, preferring the request-scoped logger.
// Missing rows are expected by the repositories and never logged.
type queryLogger struct {
	base  *slog.Logger
	level logger.LogLevel
	slow  time.Duration
}

func newQueryLogger(base *slog.Logger, cfg *config.Config) logger.Interface {
	level := logger.Warn
	if cfg.Env.Debug {
		level = logger.Info
	}

	return &queryLogger{base: base, level: level, slow: slowQueryThreshold}
}

func (l *queryLogger) LogMode(level logger.LogLevel) logger.Interface {
	next := *l
	next.level = level

	return &next
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

func (l *queryLogger) printf(ctx context.Context, threshold logger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.level < threshold {
		return
	}

	l.from(ctx).Log(ctx, level, "gorm", slog.String("message", fmt.Sprintf(msg, args...)))
}

// Trace logs failed statements, then slow ones, then everything in debug.
func (l *queryLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	level, msg, ok := l.classify(elapsed, err)
	if !ok {
		return
	}

	sql, rows := fc()
	attrs := []slog.Attr{
		slog.String("sql", sql),
		slog.Int64("rows", rows),
		slog.Duration("elapsed", elapsed),
	}
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
	}

	l.from(ctx).LogAttrs(ctx, level, msg, attrs...)
}

func (l *queryLogger) classify(elapsed time.Duration, err error) (slog.Level, string, bool) {
	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		return slog.LevelError, "Query failed", l.level >= logger.Error
	case l.slow > 0 && elapsed > l.slow:
		return slog.LevelWarn, "Slow query", l.level >= logger.Warn
	default:
		return slog.LevelDebug, "Query", l.level >= logger.Info
	}
}

func (l *queryLogger) from(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, l.base)
}
