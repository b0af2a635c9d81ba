// Package rabbitmq publishes order events to a durable topic exchange. Consumers such as
// kitchen displays bind their own queues with routing keys like "order.*".
package rabbitmq

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/rabbitmq/amqp091-go"
)

const (
	dialAttempts = 5
	dialBackoff  = 2 * time.Second
)

// Connection owns one AMQP connection and channel and redials when either closes.
type Connection struct {
	url      string
	exchange string
	logger   *slog.Logger

	mu      sync.Mutex
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

// Dial connects to url and declares exchange as a durable topic exchange.
// It retries with a growing pause before giving up.
func Dial(ctx context.Context, url, exchange string, logger *slog.Logger) (*Connection, error) {
	if logger == nil {
		logger = slog.Default()
	}

	c := &Connection{
		url:      url,
		exchange: exchange,
		logger:   logger.With("component", "rabbitmq"),
	}

	var err error
	for attempt := 1; attempt <= dialAttempts; attempt++ {
		if err = c.connect(); err == nil {
			return c, nil
		}
		if attempt == dialAttempts {
			break
		}

		wait := time.Duration(attempt) * dialBackoff
		c.logger.Warn("rabbitmq connection failed, retrying", "attempt", attempt, "wait", wait, "error", err)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}

	return nil, fmt.Errorf("failed to connect to RabbitMQ after %d attempts: %w", dialAttempts, err)
}

// connect must be called with mu held or before c is shared.
func (c *Connection) connect() error {
	conn, err := amqp091.Dial(c.url)
	if err != nil {
		return err
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return err
	}

	err = ch.ExchangeDeclare(
		c.exchange, // name
		"topic",    // type
		true,       // durable
		false,      // auto-deleted
		false,      // internal
		false,      // no-wait
		nil,        // arguments
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return fmt.Errorf("failed to declare %s exchange: %w", c.exchange, err)
	}

	c.conn = conn
	c.channel = ch
	return nil
}

// Channel returns a live channel, reconnecting once if the previous one was closed.
func (c *Connection) Channel() (publishChannel, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != nil && !c.conn.IsClosed() && c.channel != nil && !c.channel.IsClosed() {
		return c.channel, nil
	}

	c.logger.Info("reconnecting to rabbitmq")
	c.closeLocked()
	if err := c.connect(); err != nil {
		return nil, fmt.Errorf("failed to reconnect: %w", err)
	}
	return c.channel, nil
}

// Exchange returns the exchange events are published to.
func (c *Connection) Exchange() string {
	return c.exchange
}

func (c *Connection) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closeLocked()
}

func (c *Connection) closeLocked() error {
	if c.channel != nil {
		_ = c.channel.Close()
		c.channel = nil
	}
	if c.conn != nil {
		err := c.conn.Close()
		c.conn = nil
		if err != nil && !errors.Is(err, amqp091.ErrClosed) {
			return err
		}
	}
	return nil
}
