package service

import (
	"context"
	"encoding/json"
	"strings"
)

// RowEvent is a row-insert notification emitted by the change feed.
type RowEvent struct {
	Table  string          `json:"table"`
	Type   string          `json:"type"`
	Record json.RawMessage `json:"record"`
}

// EventInsert is the only event type the feed emits.
const EventInsert = "INSERT"

// TableMessages is the collection the messaging mirror listens on.
const TableMessages = "messages"

// Filter scopes a subscription to rows whose Column equals Value.
type Filter struct {
	Column string
	Value  string
}

// String renders the filter as column=eq.value.
func (f Filter) String() string {
	if f.Column == "" {
		return ""
	}

	return f.Column + "=eq." + f.Value
}

// ParseFilter is the inverse of Filter.String.
func ParseFilter(s string) (Filter, bool) {
	column, value, ok := strings.Cut(s, "=eq.")
	if !ok || column == "" {
		return Filter{}, false
	}

	return Filter{Column: column, Value: value}, true
}

// Matches reports whether record satisfies the filter. An empty filter matches everything.
func (f Filter) Matches(record json.RawMessage) bool {
	if f.Column == "" {
		return true
	}

	var row map[string]any
	if err := json.Unmarshal(record, &row); err != nil {
		return false
	}

	value, ok := row[f.Column]
	if !ok {
		return false
	}
	s, ok := value.(string)

	return ok && s == f.Value
}

// Subscription is a live registration on the change feed.
type Subscription interface {
	// Close stops delivery. Closing twice is a no-op.
	Close() error
}

// ChangeFeed is the subscribe/notify half of the remote service boundary.
type ChangeFeed interface {
	// Publish emits an insert event for table.
	Publish(ctx context.Context, event RowEvent) error

	// Subscribe delivers every insert on table matching filter to onInsert until the
	// subscription is closed. onInsert runs on a feed goroutine.
	Subscribe(ctx context.Context, table string, filter Filter, onInsert func(RowEvent)) (Subscription, error)

	// Close releases the feed.
	Close() error
}
