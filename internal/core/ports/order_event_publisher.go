package ports

import (
	"context"
	"time"
)

// Order event types.
const (
	OrderUpdated    = "order.updated"
	OrderCheckedOut = "order.checked_out"
	OrderAbandoned  = "order.abandoned"
)

// OrderEventLine is one order line inside an OrderEvent.
type OrderEventLine struct {
	ItemName  string `json:"item_name"`
	Quantity  int    `json:"quantity"`
	LineTotal string `json:"line_total"`
}

// OrderEvent notifies downstream consumers (kitchen display, analytics) of an order
// change. Money is rendered with two decimals.
type OrderEvent struct {
	Type       string           `json:"type"`
	SessionID  string           `json:"session_id"`
	Sequence   uint64           `json:"sequence,omitempty"`
	Intents    string           `json:"intents,omitempty"`
	Lines      []OrderEventLine `json:"lines"`
	Total      string           `json:"total"`
	OccurredAt time.Time        `json:"occurred_at"`
}

// OrderEventPublisher delivers order events. Publishing is best effort: callers log
// failures and carry on, since the order change itself already happened.
type OrderEventPublisher interface {
	Publish(ctx context.Context, event OrderEvent) error
}
