package queries

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/guard"
)

var ErrListTablesQueryIsNotConstructed = errors.New(
	"ListTablesQuery must be created via NewListTablesQuery constructor",
)

type ListTablesQuery struct {
	guard guard.ConstructorGuard
}

func NewListTablesQuery() ListTablesQuery {
	return ListTablesQuery{guard: guard.NewConstructorGuard()}
}

func (q ListTablesQuery) Validate() error {
	return q.guard.Validate(ErrListTablesQueryIsNotConstructed)
}

// ListTablesQueryResponse has a nil TableGroupID for tables outside any group.
type ListTablesQueryResponse struct {
	ID             kernel.UUID
	NumberOfGuests int
	Empty          bool
	TableGroupID   *kernel.UUID
}
