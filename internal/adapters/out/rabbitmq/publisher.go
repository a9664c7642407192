// Package rabbitmq publishes order events to a RabbitMQ topic exchange.
//
// Each event is routed by its type ("order.placed", "order.status_changed",
// "order.cancelled") so consumers can bind to "order.#" or to a single kind.
package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"b2better/internal/core/domain/model/order"
	"b2better/internal/core/ports"

	"github.com/google/uuid"
	"github.com/streadway/amqp"
)

const DefaultExchange = "b2better.orders"

var ErrPublisherClosed = errors.New("event publisher is closed")

// channel is the part of *amqp.Channel the publisher relies on.
type channel interface {
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

var _ ports.OrderEventPublisher = &Publisher{}

type Publisher struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	channel  channel
	exchange string
	closed   bool
}

// Dial connects to the broker and declares a durable topic exchange.
func Dial(url, exchange string) (*Publisher, error) {
	if exchange == "" {
		exchange = DefaultExchange
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("failed to declare exchange %s: %w", exchange, err)
	}

	publisher := newPublisher(ch, exchange)
	publisher.conn = conn
	return publisher, nil
}

func newPublisher(ch channel, exchange string) *Publisher {
	return &Publisher{channel: ch, exchange: exchange}
}

type eventMessage struct {
	ID             string `json:"id"`
	Type           string `json:"type"`
	OrderID        string `json:"orderId"`
	OrderNumber    string `json:"orderNumber"`
	UserID         string `json:"userId"`
	RetailerID     string `json:"retailerId"`
	Status         string `json:"status"`
	PreviousStatus string `json:"previousStatus,omitempty"`
	Total          string `json:"total"`
	Note           string `json:"note,omitempty"`
	OccurredAt     string `json:"occurredAt"`
}

func (p *Publisher) Publish(ctx context.Context, event order.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	message := eventMessage{
		ID:             uuid.NewString(),
		Type:           string(event.Type),
		OrderID:        event.OrderID.String(),
		OrderNumber:    event.OrderNumber.String(),
		UserID:         event.UserID.String(),
		RetailerID:     event.RetailerID.String(),
		Status:         string(event.Status),
		PreviousStatus: string(event.PreviousStatus),
		Total:          event.Total.String(),
		Note:           event.Note,
		OccurredAt:     event.OccurredAt.UTC().Format(time.RFC3339Nano),
	}

	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("event serialization error: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrPublisherClosed
	}

	err = p.channel.Publish(
		p.exchange,
		string(event.Type),
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			MessageId:    message.ID,
			Timestamp:    event.OccurredAt,
			Headers: amqp.Table{
				"order_number": event.OrderNumber.String(),
				"event_type":   string(event.Type),
			},
		},
	)
	if err != nil {
		return fmt.Errorf("event publish error: %w", err)
	}

	return nil
}

func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true

	var closeErr error
	if p.channel != nil {
		closeErr = p.channel.Close()
	}
	if p.conn != nil {
		closeErr = errors.Join(closeErr, p.conn.Close())
	}
	return closeErr
}

// NoopPublisher discards every event. It is used when no broker is configured.
type NoopPublisher struct{}

func NewNoopPublisher() NoopPublisher {
	return NoopPublisher{}
}

func (NoopPublisher) Publish(context.Context, order.Event) error {
	return nil
}

func (NoopPublisher) Close() error {
	return nil
}
