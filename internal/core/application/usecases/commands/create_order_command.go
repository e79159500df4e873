package commands

import (
	"errors"
	"fmt"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// OrderLineRequest is one menu and the quantity ordered of it.
type OrderLineRequest struct {
	MenuID   kernel.UUID
	Quantity int64
}

// CreateOrderCommand represents a request to place an order on a table.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), tableID,
//	    []OrderLineRequest{{MenuID: chickenMenuID, Quantity: 2}})
//	if errors.Is(err, order.ErrOrderLineItemsEmpty) {
//	    // nothing was ordered
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	tableID kernel.UUID
	lines   []OrderLineRequest

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand rejects an empty line list with order.ErrOrderLineItemsEmpty
// and a quantity below 1 with an invalid-value error.
func NewCreateOrderCommand(orderID, tableID kernel.UUID, lines []OrderLineRequest) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTableID(tableID),
		cmd.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID { return c.orderID }
func (c CreateOrderCommand) TableID() kernel.UUID { return c.tableID }

func (c CreateOrderCommand) Lines() []OrderLineRequest {
	return append([]OrderLineRequest(nil), c.lines...)
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setTableID(tableID kernel.UUID) error {
	if err := tableID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderTableId", err)
	}
	c.tableID = tableID
	return nil
}

func (c *CreateOrderCommand) setLines(lines []OrderLineRequest) error {
	if len(lines) == 0 {
		return order.ErrOrderLineItemsEmpty
	}
	for i, line := range lines {
		if err := line.MenuID.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause(fmt.Sprintf("orderLineItems[%d].menuId", i), err)
		}
		if line.Quantity < 1 {
			return errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("orderLineItems[%d].quantity", i), fmt.Errorf("%d is less than 1", line.Quantity))
		}
	}
	c.lines = append([]OrderLineRequest(nil), lines...)
	return nil
}
