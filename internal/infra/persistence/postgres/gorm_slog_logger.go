package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"fitsaga/config"
	deliverycontext "fitsaga/internal/delivery/context"
	"fitsaga/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const slowAuditQuery = 200 * time.Millisecond

// gormSlogLogger sends GORM output to the request-scoped slog logger, falling back to base.
type gormSlogLogger struct {
	base  *slog.Logger
	level logger.LogLevel
	slow  time.Duration
}

// newGormSlogLogger logs every statement in debug mode and only failures and slow queries otherwise.
func newGormSlogLogger(base *slog.Logger, cfg *config.Config) logger.Interface {
	level := logger.Warn
	if cfg.Env.Debug {
		level = logger.Info
	}

	return &gormSlogLogger{base: base, level: level, slow: slowAuditQuery}
}

func (l *gormSlogLogger) LogMode(level logger.LogLevel) logger.Interface {
	clone := *l
	clone.level = level

	return &clone
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Info, msg, args...)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Warn, msg, args...)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Error, msg, args...)
}

var slogLevels = map[logger.LogLevel]slog.Level{
	logger.Info:  slog.LevelInfo,
	logger.Warn:  slog.LevelWarn,
	logger.Error: slog.LevelError,
}

func (l *gormSlogLogger) printf(ctx context.Context, level logger.LogLevel, msg string, args ...any) {
	if l.level < level {
		return
	}

	l.from(ctx).LogAttrs(ctx, slogLevels[level], "Audit store", slog.String("message", fmt.Sprintf(msg, args...)))
}

func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	failed := err != nil && !errors.Is(err, gorm.ErrRecordNotFound)
	slow := elapsed > l.slow

	var level slog.Level
	var msg string
	switch {
	case failed && l.level >= logger.Error:
		level, msg = slog.LevelError, "Audit query failed"
	case slow && l.level >= logger.Warn:
		level, msg = slog.LevelWarn, "Audit query slow"
	case l.level >= logger.Info:
		level, msg = slog.LevelDebug, "Audit query"
	default:
		return
	}

	sql, rows := fc()
	attrs := []slog.Attr{
		slog.String("sql", sql),
		slog.Int64("rows", rows),
		slog.Duration("elapsed", elapsed),
	}
	if failed {
		attrs = append(attrs, slog.String("error", err.Error()))
	}

	l.from(ctx).LogAttrs(ctx, level, msg, attrs...)
}

func (l *gormSlogLogger) from(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, l.base)
}
