// Package feed implements service.ChangeFeed. The memory provider runs on
// gocloud mempubsub inside the process, the google provider on Cloud Pub/Sub.
package feed

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"sync/atomic"

	"chaski/config"
	"chaski/internal/domain/service"
	"chaski/internal/errors"

	"go.uber.org/fx"
)

const tableAttribute = "table"

// FeedParams holds dependencies for ChangeFeed, injected by Fx.
type FeedParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewChangeFeed creates a ChangeFeed based on configuration.
func NewChangeFeed(params FeedParams) (service.ChangeFeed, error) {
	cfg := params.Config.Feed
	logger := params.Logger

	var feed service.ChangeFeed
	switch cfg.Provider {
	case config.FeedProviderMemory:
		logger.Info("Using in-process change feed")

		feed = NewMemoryFeed(logger)

	case config.FeedProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" || cfg.SubscriptionID == "" {
			return nil, errors.New("topic ID and subscription ID are required for google provider")
		}
		logger.Info("Using Google Pub/Sub change feed",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
			slog.String("subscription_id", cfg.SubscriptionID),
		)

		var err error
		feed, err = NewGoogleFeed(params.Ctx, cfg, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown feed provider: %s", cfg.Provider)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing change feed")

			return feed.Close()
		},
	})

	return feed, nil
}

// Module provides the change feed FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewChangeFeed),
)

func encodeEvent(event service.RowEvent) ([]byte, error) {
	if event.Type == "" {
		event.Type = service.EventInsert
	}
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return data, nil
}

func decodeEvent(data []byte) (service.RowEvent, bool) {
	var event service.RowEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return service.RowEvent{}, false
	}

	return event, true
}

// listener is one Subscribe registration.
type listener struct {
	table    string
	filter   service.Filter
	onInsert func(service.RowEvent)
	closed   atomic.Bool
}

func (l *listener) deliver(event service.RowEvent) {
	if l.closed.Load() || event.Table != l.table || !l.filter.Matches(event.Record) {
		return
	}
	l.onInsert(event)
}

// subscription closes exactly once.
type subscription struct {
	once  sync.Once
	err   error
	close func() error
}

func (s *subscription) Close() error {
	s.once.Do(func() {
		s.err = s.close()
	})

	return s.err
}
