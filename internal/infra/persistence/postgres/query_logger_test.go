package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"chaski/config"
	deliverycontext "chaski/internal/delivery/context"
	"chaski/internal/errors"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestQueryLogger_Trace(t *testing.T) {
	stmt := func() (string, int64) { return `SELECT * FROM "products"`, 3 }

	tests := []struct {
		name    string
		debug   bool
		elapsed time.Duration
		err     error
		want    string
	}{
		{name: "failure", err: errors.New("connection reset"), want: "Query failed"},
		{name: "missing row is silent", err: gorm.ErrRecordNotFound},
		{name: "slow query", elapsed: time.Second, want: "Slow query"},
		{name: "fast query hidden outside debug"},
		{name: "fast query in debug", debug: true, want: "Query"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			base := slog.New(slog.NewTextHandler(&out, &slog.HandlerOptions{Level: slog.LevelDebug}))
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug

			l := newQueryLogger(base, cfg)
			l.Trace(context.Background(), time.Now().Add(-tt.elapsed), stmt, tt.err)

			if tt.want == "" {
				assert.Empty(t, out.String())

				return
			}
			assert.Contains(t, out.String(), tt.want)
			assert.Contains(t, out.String(), "rows=3")
		})
	}
}

func TestQueryLogger_PrefersRequestLogger(t *testing.T) {
	var base, scoped bytes.Buffer
	cfg := &config.Config{}
	l := newQueryLogger(slog.New(slog.NewTextHandler(&base, nil)), cfg)

	ctx := deliverycontext.WithLogger(context.Background(), slog.New(slog.NewTextHandler(&scoped, nil)))
	l.Trace(ctx, time.Now(), func() (string, int64) { return "SELECT 1", 1 }, errors.New("boom"))

	assert.Empty(t, base.String())
	assert.Contains(t, scoped.String(), "Query failed")
}

func TestQueryLogger_Silent(t *testing.T) {
	var out bytes.Buffer
	l := newQueryLogger(slog.New(slog.NewTextHandler(&out, nil)), &config.Config{}).LogMode(logger.Silent)

	l.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", 0 }, errors.New("boom"))
	l.Error(context.Background(), "ignored %d", 1)

	assert.Empty(t, out.String())
}

func TestPoolWatcher_Report(t *testing.T) {
	tests := []struct {
		name   string
		last   sql.DBStats
		now    sql.DBStats
		want   string
		silent bool
	}{
		{name: "no new waits", last: sql.DBStats{WaitCount: 4}, now: sql.DBStats{WaitCount: 4}, silent: true},
		{
			name: "short waits are debug",
			last: sql.DBStats{WaitCount: 1, WaitDuration: time.Millisecond},
			now:  sql.DBStats{WaitCount: 3, WaitDuration: 5 * time.Millisecond},
			want: "level=DEBUG",
		},
		{
			name: "long waits warn",
			last: sql.DBStats{},
			now:  sql.DBStats{WaitCount: 2, WaitDuration: 200 * time.Millisecond},
			want: "level=WARN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			w := &poolWatcher{logger: slog.New(slog.NewTextHandler(&out, &slog.HandlerOptions{Level: slog.LevelDebug}))}

			w.report(tt.last, tt.now)

			if tt.silent {
				assert.Empty(t, out.String())

				return
			}
			assert.Contains(t, out.String(), tt.want)
			assert.Contains(t, out.String(), "waits=2")
		})
	}
}
