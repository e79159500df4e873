package queries

import (
	"errors"

	"kitchenpos/internal/pkg/guard"
)

var ErrGetTableOccupancyQueryIsNotConstructed = errors.New(
	"GetTableOccupancyQuery must be created via NewGetTableOccupancyQuery constructor",
)

// GetTableOccupancyQuery summarizes how the floor is used right now.
type GetTableOccupancyQuery struct {
	guard guard.ConstructorGuard
}

func NewGetTableOccupancyQuery() GetTableOccupancyQuery {
	return GetTableOccupancyQuery{guard: guard.NewConstructorGuard()}
}

func (q GetTableOccupancyQuery) Validate() error {
	return q.guard.Validate(ErrGetTableOccupancyQueryIsNotConstructed)
}

// GetTableOccupancyQueryResponse counts tables by state. ActiveOrders counts
// orders that are not completed.
type GetTableOccupancyQueryResponse struct {
	EmptyTables    int64
	OccupiedTables int64
	GroupedTables  int64
	ActiveOrders   int64
}
