// Package rabbitmq publishes domain events to a RabbitMQ topic exchange.
// Each event becomes one persistent JSON message routed by its event name,
// e.g. "order.placed" or "order.status_changed".
package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"kitchenpos/internal/core/domain/model/kernel"

	"github.com/rabbitmq/amqp091-go"
)

const (
	exchangeKind   = "topic"
	contentType    = "application/json"
	publishTimeout = 5 * time.Second
)

// channel is the part of *amqp091.Channel the publisher needs.
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Close() error
}

// Message is the wire format of a published event.
type Message struct {
	Name        string            `json:"name"`
	AggregateID string            `json:"aggregateId"`
	OccurredAt  time.Time         `json:"occurredAt"`
	Attributes  map[string]string `json:"attributes"`
}

// Publisher implements ports.EventPublisher. It is safe for concurrent use.
type Publisher struct {
	mu       sync.Mutex
	conn     *amqp091.Connection
	ch       channel
	exchange string
	logger   *slog.Logger
}

// Dial connects to url and declares a durable topic exchange.
func Dial(url, exchange string, logger *slog.Logger) (*Publisher, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = ch.ExchangeDeclare(exchange, exchangeKind, true, false, false, false, nil)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}

	p := NewPublisher(ch, exchange, logger)
	p.conn = conn
	return p, nil
}

// NewPublisher wraps an open channel whose exchange is already declared.
func NewPublisher(ch channel, exchange string, logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Publisher{
		ch:       ch,
		exchange: exchange,
		logger:   logger.With("component", "rabbitmq_publisher", "exchange", exchange),
	}
}

// Publish sends every event and returns the joined errors of those that failed.
func (p *Publisher) Publish(ctx context.Context, events ...kernel.DomainEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var errs []error
	for _, event := range events {
		if err := p.publish(ctx, event); err != nil {
			errs = append(errs, fmt.Errorf("publish %s: %w", event.EventName(), err))
		}
	}
	return errors.Join(errs...)
}

func (p *Publisher) publish(ctx context.Context, event kernel.DomainEvent) error {
	body, err := json.Marshal(Message{
		Name:        event.EventName(),
		AggregateID: event.AggregateID().String(),
		OccurredAt:  event.OccurredAt().UTC(),
		Attributes:  event.Attributes(),
	})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = p.ch.PublishWithContext(ctx, p.exchange, event.EventName(), false, false, amqp091.Publishing{
		ContentType:  contentType,
		DeliveryMode: amqp091.Persistent,
		MessageId:    event.AggregateID().String(),
		Timestamp:    event.OccurredAt(),
		Type:         event.EventName(),
		Body:         body,
	})
	if err != nil {
		return err
	}

	p.logger.DebugContext(ctx, "Event published", "event", event.EventName(), "size", len(body))
	return nil
}

// Close closes the channel and, when the publisher dialed it, the connection.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	err := p.ch.Close()
	if p.conn != nil {
		err = errors.Join(err, p.conn.Close())
	}
	return err
}
