package order

import "kitchenpos/internal/pkg/errs"

// ErrOrdersNotCompleted is returned when a table still has an order that is not completed.
var ErrOrdersNotCompleted = errs.NewPreconditionFailedError("not every order of the table is completed")

// Orders is the set of orders placed on one table.
type Orders struct {
	items []*Order
}

func NewOrders(orders []*Order) Orders {
	return Orders{items: append([]*Order(nil), orders...)}
}

func (o Orders) Len() int {
	return len(o.items)
}

// AllCompleted reports whether every order is in Completion. No orders at all
// counts as completed.
func (o Orders) AllCompleted() bool {
	for _, item := range o.items {
		if !item.Status().IsCompleted() {
			return false
		}
	}
	return true
}

// ValidateChangeEmpty fails while any order of the table is still being served.
func (o Orders) ValidateChangeEmpty() error {
	if !o.AllCompleted() {
		return ErrOrdersNotCompleted
	}
	return nil
}
