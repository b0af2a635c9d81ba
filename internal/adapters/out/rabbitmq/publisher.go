package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"drivethrough/internal/core/ports"
	"drivethrough/internal/pkg/errs"

	"github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 10 * time.Second

type publishChannel interface {
	PublishWithContext(
		ctx context.Context,
		exchange, key string,
		mandatory, immediate bool,
		msg amqp091.Publishing,
	) error
}

type channelSource interface {
	Channel() (publishChannel, error)
	Exchange() string
}

// Publisher implements ports.OrderEventPublisher. The event type is the routing key.
type Publisher struct {
	source channelSource
	logger *slog.Logger
}

func NewPublisher(source channelSource, logger *slog.Logger) (*Publisher, error) {
	if source == nil {
		return nil, errs.NewValueIsRequiredError("channel source")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Publisher{
		source: source,
		logger: logger.With("component", "order_event_publisher"),
	}, nil
}

// Publish sends event as a persistent JSON message.
func (p *Publisher) Publish(ctx context.Context, event ports.OrderEvent) error {
	if event.Type == "" {
		return errs.NewValueIsRequiredError("event type")
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	ch, err := p.source.Channel()
	if err != nil {
		return err
	}

	msg := amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		MessageId:    messageID(event),
		Type:         event.Type,
		Timestamp:    event.OccurredAt,
		Body:         body,
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	exchange := p.source.Exchange()
	if err = ch.PublishWithContext(ctx, exchange, event.Type, false, false, msg); err != nil {
		return fmt.Errorf("failed to publish %s: %w", event.Type, err)
	}

	p.logger.DebugContext(ctx, "order event published",
		"exchange", exchange,
		"routing_key", event.Type,
		"session_id", event.SessionID,
		"size", len(body),
	)
	return nil
}

// messageID lets consumers drop redeliveries of the same session change.
func messageID(event ports.OrderEvent) string {
	return fmt.Sprintf("%s:%s:%d", event.SessionID, event.Type, event.Sequence)
}
