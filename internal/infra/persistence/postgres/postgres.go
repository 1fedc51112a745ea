// Package postgres contains the optional relational audit store built on GORM and PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"fitsaga/config"
	"fitsaga/internal/domain/lifecycle"
	"fitsaga/internal/errors"
	"fitsaga/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the audit database. It returns nil when no postgres section is configured,
// in which case audit records stay in Firestore.
func New(params Params) (*gorm.DB, error) {
	if params.Config.Postgres == nil {
		return nil, nil
	}

	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	monitor := newPoolMonitor(sqlDB, params.Logger)

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := migrate(ctx, db, sqlDB); err != nil {
				return err
			}
			monitor.start()

			return nil
		},
		OnStop: func(_ context.Context) error {
			monitor.stop()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// migrate checks the connection and creates the append-only audit tables.
func migrate(ctx context.Context, db *gorm.DB, sqlDB *sql.DB) error {
	if err := sqlDB.PingContext(ctx); err != nil {
		return errors.Wrap(err, "failed to ping PostgreSQL")
	}

	if err := db.WithContext(ctx).AutoMigrate(&model.AccessLogModel{}, &model.CreditAdjustmentModel{}); err != nil {
		return errors.Wrap(err, "failed to migrate audit tables")
	}

	return nil
}

const (
	poolMonitorInterval = 30 * time.Second
	poolWaitWarnAfter   = 50 * time.Millisecond
)

// poolMonitor logs when audit writes had to wait for a pooled connection.
type poolMonitor struct {
	stats  func() sql.DBStats
	logger *slog.Logger
	prev   sql.DBStats
	done   chan struct{}
}

func newPoolMonitor(sqlDB *sql.DB, logger *slog.Logger) *poolMonitor {
	return &poolMonitor{
		stats:  sqlDB.Stats,
		logger: logger,
		done:   make(chan struct{}),
	}
}

func (m *poolMonitor) start() {
	m.prev = m.stats()

	go func() {
		ticker := time.NewTicker(poolMonitorInterval)
		defer ticker.Stop()

		for {
			select {
			case <-m.done:
				return
			case <-ticker.C:
				m.report()
			}
		}
	}()
}

func (m *poolMonitor) stop() {
	close(m.done)
}

// report logs the waits since the previous report, at warn level once they add up to poolWaitWarnAfter.
func (m *poolMonitor) report() {
	cur := m.stats()
	waits := cur.WaitCount - m.prev.WaitCount
	waited := cur.WaitDuration - m.prev.WaitDuration
	m.prev = cur

	if waits == 0 {
		return
	}

	level := slog.LevelDebug
	if waited >= poolWaitWarnAfter {
		level = slog.LevelWarn
	}

	m.logger.LogAttrs(context.Background(), level, "Audit store pool wait",
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Int("open", cur.OpenConnections),
		slog.Int("in_use", cur.InUse),
		slog.Int("max_open", cur.MaxOpenConnections),
	)
}
