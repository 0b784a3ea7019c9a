package feed

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"chaski/internal/domain/service"
	"chaski/internal/errors"

	"gocloud.dev/pubsub"
	"gocloud.dev/pubsub/mempubsub"
)

const memoryAckDeadline = time.Minute

// memoryFeed gives every subscriber its own mempubsub subscription on one topic.
type memoryFeed struct {
	topic  *pubsub.Topic
	logger *slog.Logger

	mu     sync.Mutex
	subs   map[*subscription]struct{}
	closed bool
}

// NewMemoryFeed creates an in-process feed.
func NewMemoryFeed(logger *slog.Logger) service.ChangeFeed {
	return &memoryFeed{
		topic:  mempubsub.NewTopic(),
		logger: logger,
		subs:   make(map[*subscription]struct{}),
	}
}

func (f *memoryFeed) Publish(ctx context.Context, event service.RowEvent) error {
	data, err := encodeEvent(event)
	if err != nil {
		return err
	}

	err = f.topic.Send(ctx, &pubsub.Message{
		Body:     data,
		Metadata: map[string]string{tableAttribute: event.Table},
	})
	if err != nil {
		return errors.Wrap(err, "failed to publish row event")
	}

	return nil
}

func (f *memoryFeed) Subscribe(ctx context.Context, table string, filter service.Filter, onInsert func(service.RowEvent)) (service.Subscription, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return nil, errors.New("change feed is closed")
	}

	l := &listener{table: table, filter: filter, onInsert: onInsert}
	sub := mempubsub.NewSubscription(f.topic, memoryAckDeadline)
	receiveCtx, cancel := context.WithCancel(ctx)

	go f.receive(receiveCtx, sub, l)

	handle := &subscription{}
	handle.close = func() error {
		l.closed.Store(true)
		cancel()

		f.mu.Lock()
		delete(f.subs, handle)
		f.mu.Unlock()

		return sub.Shutdown(context.Background())
	}
	f.subs[handle] = struct{}{}

	return handle, nil
}

func (f *memoryFeed) receive(ctx context.Context, sub *pubsub.Subscription, l *listener) {
	for {
		msg, err := sub.Receive(ctx)
		if err != nil {
			if ctx.Err() == nil {
				f.logger.Warn("Change feed subscription stopped", slog.Any("error", err))
			}

			return
		}
		msg.Ack()

		if msg.Metadata[tableAttribute] != l.table {
			continue
		}
		event, ok := decodeEvent(msg.Body)
		if !ok {
			f.logger.Warn("Dropping undecodable row event")

			continue
		}
		l.deliver(event)
	}
}

// Close shuts down every open subscription, then the topic.
func (f *memoryFeed) Close() error {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()

		return nil
	}
	f.closed = true
	open := make([]*subscription, 0, len(f.subs))
	for sub := range f.subs {
		open = append(open, sub)
	}
	f.mu.Unlock()

	var errs []error
	for _, sub := range open {
		if err := sub.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if err := f.topic.Shutdown(context.Background()); err != nil {
		errs = append(errs, errors.WithStack(err))
	}

	return errors.Join(errs...)
}
