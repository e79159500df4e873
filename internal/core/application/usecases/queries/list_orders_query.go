package queries

import (
	"errors"
	"time"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery lists every order with its line items, whatever the status.
type ListOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewListOrdersQuery() ListOrdersQuery {
	return ListOrdersQuery{guard: guard.NewConstructorGuard()}
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

type ListOrdersQueryResponse struct {
	ID           kernel.UUID
	OrderTableID kernel.UUID
	OrderStatus  order.Status
	OrderedTime  time.Time
	LineItems    []OrderLineItemResponse
}

// OrderLineItemResponse carries the menu snapshot taken when the order was placed.
type OrderLineItemResponse struct {
	ID            kernel.UUID
	MenuID        kernel.UUID
	MenuName      string
	MenuPrice     kernel.Price
	MenuGroupName string
	Quantity      int64
	MenuProducts  []OrderMenuProductResponse
}

type OrderMenuProductResponse struct {
	ProductName string
	Price       kernel.Price
	Quantity    int64
}
