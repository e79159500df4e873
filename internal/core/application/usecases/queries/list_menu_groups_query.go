package queries

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/guard"
)

var ErrListMenuGroupsQueryIsNotConstructed = errors.New(
	"ListMenuGroupsQuery must be created via NewListMenuGroupsQuery constructor",
)

type ListMenuGroupsQuery struct {
	guard guard.ConstructorGuard
}

func NewListMenuGroupsQuery() ListMenuGroupsQuery {
	return ListMenuGroupsQuery{guard: guard.NewConstructorGuard()}
}

func (q ListMenuGroupsQuery) Validate() error {
	return q.guard.Validate(ErrListMenuGroupsQueryIsNotConstructed)
}

type ListMenuGroupsQueryResponse struct {
	ID   kernel.UUID
	Name string
}
