// Package eventlog writes domain events to a structured log and optionally
// forwards them to another publisher.
package eventlog

import (
	"context"
	"log/slog"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/ports"
)

type Publisher struct {
	logger *slog.Logger
	next   ports.EventPublisher
}

// NewPublisher logs every event at info level before handing it to next.
// next may be nil.
func NewPublisher(logger *slog.Logger, next ports.EventPublisher) *Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Publisher{
		logger: logger.With("component", "domain_events"),
		next:   next,
	}
}

func (p *Publisher) Publish(ctx context.Context, events ...kernel.DomainEvent) error {
	for _, event := range events {
		attrs := []any{
			"event", event.EventName(),
			"aggregateId", event.AggregateID().String(),
			"occurredAt", event.OccurredAt(),
		}
		for k, v := range event.Attributes() {
			attrs = append(attrs, k, v)
		}
		p.logger.InfoContext(ctx, "Domain event", attrs...)
	}

	if p.next == nil {
		return nil
	}
	return p.next.Publish(ctx, events...)
}
