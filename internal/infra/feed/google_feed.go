package feed

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"chaski/config"
	"chaski/internal/domain/service"
	"chaski/internal/errors"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
)

// googleFeed publishes to one Pub/Sub topic and fans the messages of one
// subscription out to the local listeners.
type googleFeed struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}

	mu        sync.RWMutex
	listeners map[*listener]struct{}
}

// NewGoogleFeed connects to the configured topic and starts receiving from the subscription.
func NewGoogleFeed(ctx context.Context, cfg *config.FeedConfig, logger *slog.Logger) (service.ChangeFeed, error) {
	client, err := pubsub.NewClient(ctx, cfg.ProjectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	topicPath := fmt.Sprintf("projects/%s/topics/%s", cfg.ProjectID, cfg.TopicID)
	_, err = client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{
		Topic: topicPath,
	})
	if err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", cfg.TopicID)
	}

	receiveCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	feed := &googleFeed{
		client:    client,
		publisher: client.Publisher(cfg.TopicID),
		logger:    logger,
		cancel:    cancel,
		done:      make(chan struct{}),
		listeners: make(map[*listener]struct{}),
	}

	go feed.receive(receiveCtx, client.Subscriber(cfg.SubscriptionID))

	logger.Info("Google Pub/Sub change feed initialized",
		slog.String("project_id", cfg.ProjectID),
		slog.String("topic_id", cfg.TopicID),
	)

	return feed, nil
}

func (f *googleFeed) receive(ctx context.Context, subscriber *pubsub.Subscriber) {
	defer close(f.done)

	err := subscriber.Receive(ctx, func(_ context.Context, msg *pubsub.Message) {
		msg.Ack()

		event, ok := decodeEvent(msg.Data)
		if !ok {
			f.logger.Warn("[GooglePubSub] Dropping undecodable row event", slog.String("message_id", msg.ID))

			return
		}
		f.dispatch(event)
	})
	if err != nil && ctx.Err() == nil {
		f.logger.Error("[GooglePubSub] Receive stopped", slog.Any("error", err))
	}
}

func (f *googleFeed) dispatch(event service.RowEvent) {
	f.mu.RLock()
	targets := make([]*listener, 0, len(f.listeners))
	for l := range f.listeners {
		targets = append(targets, l)
	}
	f.mu.RUnlock()

	for _, l := range targets {
		l.deliver(event)
	}
}

func (f *googleFeed) Publish(ctx context.Context, event service.RowEvent) error {
	data, err := encodeEvent(event)
	if err != nil {
		return err
	}

	result := f.publisher.Publish(ctx, &pubsub.Message{
		Data:       data,
		Attributes: map[string]string{tableAttribute: event.Table},
	})
	serverID, err := result.Get(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	f.logger.Debug("[GooglePubSub] Row event published",
		slog.String("table", event.Table),
		slog.String("server_id", serverID),
	)

	return nil
}

func (f *googleFeed) Subscribe(_ context.Context, table string, filter service.Filter, onInsert func(service.RowEvent)) (service.Subscription, error) {
	l := &listener{table: table, filter: filter, onInsert: onInsert}

	f.mu.Lock()
	f.listeners[l] = struct{}{}
	f.mu.Unlock()

	return &subscription{close: func() error {
		l.closed.Store(true)

		f.mu.Lock()
		delete(f.listeners, l)
		f.mu.Unlock()

		return nil
	}}, nil
}

// Close stops receiving and releases Pub/Sub client resources
func (f *googleFeed) Close() error {
	f.cancel()
	<-f.done

	f.publisher.Stop()

	return errors.WithStack(f.client.Close())
}
