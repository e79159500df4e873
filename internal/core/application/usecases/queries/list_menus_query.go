package queries

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/guard"
)

var ErrListMenusQueryIsNotConstructed = errors.New(
	"ListMenusQuery must be created via NewListMenusQuery constructor",
)

// ListMenusQuery lists every menu with its menu products.
type ListMenusQuery struct {
	guard guard.ConstructorGuard
}

func NewListMenusQuery() ListMenusQuery {
	return ListMenusQuery{guard: guard.NewConstructorGuard()}
}

func (q ListMenusQuery) Validate() error {
	return q.guard.Validate(ErrListMenusQueryIsNotConstructed)
}

type ListMenusQueryResponse struct {
	ID           kernel.UUID
	Name         string
	Price        kernel.Price
	MenuGroupID  kernel.UUID
	MenuProducts []MenuProductResponse
}

type MenuProductResponse struct {
	ID        kernel.UUID
	ProductID kernel.UUID
	Quantity  int64
}
