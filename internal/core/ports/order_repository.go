package ports

import (
	"context"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for orders. Line items are
// always stored and loaded together with their order.
type OrderRepository interface {
	// Add persists a new order with its line items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the status of an existing order. Line items are immutable
	// and are not written again.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its line items. Returns an
	// errs.ErrObjectNotFound error when there is none.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllByTableID retrieves every order ever placed on the table, whatever
	// its status.
	GetAllByTableID(ctx context.Context, tableID kernel.UUID) ([]*order.Order, error)
}
