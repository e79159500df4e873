package ports

import (
	"context"

	"kitchenpos/internal/core/domain/model/kernel"
)

// EventPublisher delivers domain events after the transaction that produced them
// has committed. Delivery is best effort; a failure never undoes the commit.
type EventPublisher interface {
	Publish(ctx context.Context, events ...kernel.DomainEvent) error
}
