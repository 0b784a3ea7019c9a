// Package worker runs the periodic refresh jobs of the mirrors.
package worker

import (
	"context"
	"log/slog"
	"time"

	"chaski/config"
	"chaski/internal/delivery"
	"chaski/internal/domain/lifecycle"
	"chaski/internal/errors"
	"chaski/internal/usecase"
	"chaski/internal/util"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

// SchedulerParams holds dependencies for the refresh scheduler.
type SchedulerParams struct {
	fx.In

	Lc        fx.Lifecycle
	Cfg       *config.Config
	Logger    *slog.Logger
	Catalog   usecase.CatalogUsecase
	Messaging usecase.MessagingUsecase
}

type scheduler struct {
	cron   *cron.Cron
	logger *slog.Logger
	done   chan struct{}
}

// job is a refresh bound to its cron spec. An empty spec disables it.
type job struct {
	name string
	spec string
	run  func(ctx context.Context)
}

// NewScheduler registers the catalog and conversation refresh jobs.
func NewScheduler(params SchedulerParams) (delivery.Delivery, error) {
	s := &scheduler{
		cron:   cron.New(),
		logger: params.Logger,
		done:   make(chan struct{}),
	}

	specs := params.Cfg.Cron
	jobs := []job{
		{name: "catalog_refresh", spec: specs.CatalogRefresh, run: params.Catalog.FetchAll},
		{name: "conversations_refresh", spec: specs.ConversationsRefresh, run: params.Messaging.FetchConversations},
	}
	for _, j := range jobs {
		if err := s.register(j); err != nil {
			return nil, err
		}
	}

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s, nil
}

func (s *scheduler) register(j job) error {
	if j.spec == "" {
		s.logger.Info("Refresh job disabled", slog.String("job", j.name))

		return nil
	}

	_, err := s.cron.AddFunc(j.spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancel()

		start := time.Now()
		j.run(ctx)
		s.logger.Debug("Refresh job finished",
			slog.String("job", j.name),
			slog.String("elapsed", util.FormatDuration(time.Since(start))),
		)
	})
	if err != nil {
		return errors.Wrapf(err, "invalid cron spec %q for %s", j.spec, j.name)
	}

	return nil
}

// Serve starts the cron loop and blocks until the scheduler is stopped.
func (s *scheduler) Serve(ctx context.Context) error {
	s.logger.Info("Starting refresh scheduler", slog.Int("jobs", len(s.cron.Entries())))
	s.cron.Start()

	select {
	case <-s.done:
	case <-ctx.Done():
	}

	return nil
}

// stop waits for running jobs, bounded by ctx.
func (s *scheduler) stop(ctx context.Context) error {
	s.logger.Info("Shutting down refresh scheduler")
	close(s.done)

	select {
	case <-s.cron.Stop().Done():
		return nil
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}
}
