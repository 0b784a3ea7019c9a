package feed

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"chaski/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu     sync.Mutex
	events []service.RowEvent
}

func (r *recorder) record(event service.RowEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recorder) snapshot() []service.RowEvent {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]service.RowEvent(nil), r.events...)
}

func rowEvent(t *testing.T, table, conversationID string) service.RowEvent {
	t.Helper()

	record, err := json.Marshal(map[string]string{"conversation_id": conversationID})
	require.NoError(t, err)

	return service.RowEvent{Table: table, Record: record}
}

func newTestFeed(t *testing.T) service.ChangeFeed {
	feed := NewMemoryFeed(slog.New(slog.NewTextHandler(io.Discard, nil)))
	t.Cleanup(func() { _ = feed.Close() })

	return feed
}

func TestMemoryFeed_DeliversMatchingInserts(t *testing.T) {
	ctx := context.Background()
	feed := newTestFeed(t)

	var got recorder
	sub, err := feed.Subscribe(ctx, service.TableMessages, service.Filter{Column: "conversation_id", Value: "c1"}, got.record)
	require.NoError(t, err)
	defer sub.Close()

	require.NoError(t, feed.Publish(ctx, rowEvent(t, service.TableMessages, "c2")))
	require.NoError(t, feed.Publish(ctx, rowEvent(t, "orders", "c1")))
	require.NoError(t, feed.Publish(ctx, rowEvent(t, service.TableMessages, "c1")))

	assert.Eventually(t, func() bool { return len(got.snapshot()) == 1 }, time.Second, 10*time.Millisecond)

	event := got.snapshot()[0]
	assert.Equal(t, service.TableMessages, event.Table)
	assert.Equal(t, service.EventInsert, event.Type)
	assert.JSONEq(t, `{"conversation_id":"c1"}`, string(event.Record))
}

func TestMemoryFeed_FanOut(t *testing.T) {
	ctx := context.Background()
	feed := newTestFeed(t)

	var first, second recorder
	subA, err := feed.Subscribe(ctx, service.TableMessages, service.Filter{}, first.record)
	require.NoError(t, err)
	defer subA.Close()
	subB, err := feed.Subscribe(ctx, service.TableMessages, service.Filter{}, second.record)
	require.NoError(t, err)
	defer subB.Close()

	require.NoError(t, feed.Publish(ctx, rowEvent(t, service.TableMessages, "c1")))

	assert.Eventually(t, func() bool {
		return len(first.snapshot()) == 1 && len(second.snapshot()) == 1
	}, time.Second, 10*time.Millisecond)
}

func TestMemoryFeed_CloseStopsDelivery(t *testing.T) {
	ctx := context.Background()
	feed := newTestFeed(t)

	var closed, open recorder
	sub, err := feed.Subscribe(ctx, service.TableMessages, service.Filter{}, closed.record)
	require.NoError(t, err)
	keep, err := feed.Subscribe(ctx, service.TableMessages, service.Filter{}, open.record)
	require.NoError(t, err)
	defer keep.Close()

	require.NoError(t, sub.Close())
	require.NoError(t, sub.Close(), "closing twice is a no-op")

	require.NoError(t, feed.Publish(ctx, rowEvent(t, service.TableMessages, "c1")))

	assert.Eventually(t, func() bool { return len(open.snapshot()) == 1 }, time.Second, 10*time.Millisecond)
	assert.Empty(t, closed.snapshot())
}

func TestMemoryFeed_SubscribeAfterClose(t *testing.T) {
	feed := NewMemoryFeed(slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, feed.Close())
	require.NoError(t, feed.Close())

	_, err := feed.Subscribe(context.Background(), service.TableMessages, service.Filter{}, func(service.RowEvent) {})
	assert.Error(t, err)
}
