package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"chaski/config"
	"chaski/internal/domain/lifecycle"
	"chaski/internal/domain/service"
	"chaski/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolSampleInterval = 5 * time.Second
	poolWaitWarnAfter  = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Feed   service.ChangeFeed
	Logger *slog.Logger
}

// New opens the remote row store, installs change capture and ties the pool to the fx lifecycle.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Multi-step writes go through txManager.Execute.
		SkipDefaultTransaction: true,
		Logger:                 newQueryLogger(params.Logger, params.Config),
	})
	db.Config.TranslateError = true

	if err := registerChangeCapture(db, params.Feed, params.Logger); err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	watcher := &poolWatcher{db: sqlDB, logger: params.Logger, done: make(chan struct{})}

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			pingCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(pingCtx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}
			go watcher.run(poolSampleInterval)

			return nil
		},
		OnStop: func(context.Context) error {
			close(watcher.done)

			return errors.WithStack(sqlDB.Close())
		},
	})

	return db, nil
}

// poolWatcher reports connection pool contention between samples.
type poolWatcher struct {
	db     *sql.DB
	logger *slog.Logger
	done   chan struct{}
}

func (w *poolWatcher) run(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := w.db.Stats()
	for {
		select {
		case <-w.done:
			return
		case <-ticker.C:
			now := w.db.Stats()
			w.report(last, now)
			last = now
		}
	}
}

func (w *poolWatcher) report(last, now sql.DBStats) {
	waits := now.WaitCount - last.WaitCount
	if waits <= 0 {
		return
	}

	waited := now.WaitDuration - last.WaitDuration
	level := slog.LevelDebug
	if waited >= poolWaitWarnAfter {
		level = slog.LevelWarn
	}

	w.logger.LogAttrs(context.Background(), level, "Connection pool contention",
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avg_wait", waited/time.Duration(waits)),
		slog.Int("open", now.OpenConnections),
		slog.Int("in_use", now.InUse),
		slog.Int("idle", now.Idle),
		slog.Int("max_open", now.MaxOpenConnections),
	)
}
