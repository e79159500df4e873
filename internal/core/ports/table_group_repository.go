package ports

import (
	"context"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/table"
)

// TableGroupRepository defines the persistence contract for table groups.
// Member tables are stored by TableRepository; a group only keeps its own row.
type TableGroupRepository interface {
	Add(ctx context.Context, aggregate *table.TableGroup) error

	// Get retrieves a group with the identifiers of its current members.
	Get(ctx context.Context, id kernel.UUID) (*table.TableGroup, error)

	// Remove deletes the group. Its members must have been detached first.
	Remove(ctx context.Context, aggregate *table.TableGroup) error
}
