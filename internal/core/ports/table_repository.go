package ports

import (
	"context"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/table"
)

// TableRepository defines the persistence contract for order tables.
type TableRepository interface {
	// Add persists a new table.
	Add(ctx context.Context, aggregate *table.OrderTable) error

	// Update persists the guests, empty flag and group membership of a table.
	Update(ctx context.Context, aggregate *table.OrderTable) error

	// Get retrieves a table by identifier. Returns an errs.ErrObjectNotFound
	// error when there is none.
	Get(ctx context.Context, id kernel.UUID) (*table.OrderTable, error)

	// GetByIDs retrieves the tables in the order of ids. Duplicate ids are
	// resolved once. Returns an errs.ErrObjectNotFound error naming the first
	// id that matches no table.
	GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*table.OrderTable, error)

	// GetAllByGroupID retrieves every table that belongs to the group.
	GetAllByGroupID(ctx context.Context, groupID kernel.UUID) ([]*table.OrderTable, error)
}
