package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"fitsaga/config"
	deliverycontext "fitsaga/internal/delivery/context"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestNew_WithoutPostgresConfig(t *testing.T) {
	db, err := New(Params{Config: &config.Config{}})

	require.NoError(t, err)
	assert.Nil(t, db)
}

func TestPoolMonitor_Report(t *testing.T) {
	var buf bytes.Buffer
	stats := sql.DBStats{}
	m := &poolMonitor{
		stats:  func() sql.DBStats { return stats },
		logger: slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})),
	}

	m.report()
	assert.Empty(t, buf.String())

	stats.WaitCount = 3
	stats.WaitDuration = 10 * time.Millisecond
	m.report()
	assert.Contains(t, buf.String(), `"level":"DEBUG"`)
	assert.Contains(t, buf.String(), `"waits":3`)

	buf.Reset()
	stats.WaitCount = 5
	stats.WaitDuration = 90 * time.Millisecond
	m.report()
	assert.Contains(t, buf.String(), `"level":"WARN"`)
	assert.Contains(t, buf.String(), `"waits":2`)
}

func TestGormSlogLogger_Trace(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	sqlFn := func() (string, int64) { return `INSERT INTO "access_logs"`, 1 }

	t.Run("errors use the request logger", func(t *testing.T) {
		buf.Reset()
		l := newGormSlogLogger(base, &config.Config{})
		ctx := deliverycontext.WithLogger(context.Background(), base.With(slog.String("request_id", "req-9")))

		l.Trace(ctx, time.Now(), sqlFn, assert.AnError)

		assert.Contains(t, buf.String(), "Audit query failed")
		assert.Contains(t, buf.String(), `"request_id":"req-9"`)
	})

	t.Run("record not found is not an error", func(t *testing.T) {
		buf.Reset()
		l := newGormSlogLogger(base, &config.Config{})

		l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)

		assert.NotContains(t, buf.String(), "Audit query failed")
	})

	t.Run("slow queries warn", func(t *testing.T) {
		buf.Reset()
		l := newGormSlogLogger(base, &config.Config{})

		l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)

		assert.Contains(t, buf.String(), "Audit query slow")
	})

	t.Run("silent mode logs nothing", func(t *testing.T) {
		buf.Reset()
		l := newGormSlogLogger(base, &config.Config{}).LogMode(logger.Silent)

		l.Trace(context.Background(), time.Now(), sqlFn, assert.AnError)

		assert.Empty(t, buf.String())
	})
}
