package order

import (
	"errors"
	"time"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrOrderLineItemsEmpty is returned when an order is placed without line items.
	ErrOrderLineItemsEmpty = errs.NewValueIsRequiredError("orderLineItems")
)

// Order is what one table ordered in one go.
//
// Order follows these invariants:
//   - Must have a valid identifier and belong to a table
//   - Holds at least one line item, each with a quantity of at least 1
//   - Starts in Cooking; once in Completion its status never changes again
//
// The table is referenced by identifier only. Whether the table may take an
// order is decided by the placing service, not by the order.
type Order struct {
	id        kernel.UUID
	tableID   kernel.UUID
	status    Status
	orderedAt time.Time
	lineItems []*OrderLineItem

	events []kernel.DomainEvent

	isConstructed bool
}

// NewOrder places an order in the Cooking status and records a PlacedEvent.
// The line items are attached to the new order.
//
// Example:
//
//	snapshot, _ := order.NewOrderMenu("fried chicken", price, "chicken")
//	li, _ := order.NewOrderLineItem(kernel.NewUUID(), menuID, snapshot, 2)
//	o, err := order.NewOrder(kernel.NewUUID(), tableID, time.Now(), []*order.OrderLineItem{li})
func NewOrder(id, tableID kernel.UUID, orderedAt time.Time, lineItems []*OrderLineItem) (*Order, error) {
	o := &Order{
		status:        Cooking,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setTableID(tableID),
		o.setOrderedAt(orderedAt),
		o.setLineItems(lineItems),
	); err != nil {
		return nil, err
	}

	o.record(PlacedEvent{
		orderID:       o.id,
		tableID:       o.tableID,
		lineItemCount: len(o.lineItems),
		occurredAt:    orderedAt,
	})

	return o, nil
}

// RestoreOrder rebuilds a stored order. No event is recorded.
func RestoreOrder(
	id, tableID kernel.UUID,
	status Status,
	orderedAt time.Time,
	lineItems []*OrderLineItem,
) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setID(id),
		o.setTableID(tableID),
		o.setStatus(status),
		o.setOrderedAt(orderedAt),
		o.setLineItems(lineItems),
	); err != nil {
		return nil, err
	}

	return o, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID      { return o.id }
func (o *Order) TableID() kernel.UUID { return o.tableID }
func (o *Order) Status() Status       { return o.status }
func (o *Order) OrderedAt() time.Time { return o.orderedAt }

// LineItems returns the order's line items in the order they were placed.
func (o *Order) LineItems() []*OrderLineItem {
	return append([]*OrderLineItem(nil), o.lineItems...)
}

// ChangeStatus moves the order to next and records a StatusChangedEvent.
// A completed order refuses every change with ErrOrderAlreadyCompleted.
func (o *Order) ChangeStatus(next Status, at time.Time) error {
	changed, err := o.status.ChangeTo(next)
	if err != nil {
		return err
	}

	previous := o.status
	o.status = changed
	o.record(StatusChangedEvent{
		orderID:    o.id,
		tableID:    o.tableID,
		from:       previous,
		to:         changed,
		occurredAt: at,
	})
	return nil
}

// PullEvents returns the events recorded since the last call and forgets them.
func (o *Order) PullEvents() []kernel.DomainEvent {
	events := o.events
	o.events = nil
	return events
}

func (o *Order) record(event kernel.DomainEvent) {
	o.events = append(o.events, event)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setTableID(tableID kernel.UUID) error {
	if err := tableID.Validate(); err != nil {
		return err
	}
	o.tableID = tableID
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setOrderedAt(orderedAt time.Time) error {
	if orderedAt.IsZero() {
		return errs.NewValueIsRequiredError("orderedTime")
	}
	o.orderedAt = orderedAt
	return nil
}

func (o *Order) setLineItems(lineItems []*OrderLineItem) error {
	if len(lineItems) == 0 {
		return ErrOrderLineItemsEmpty
	}
	for _, li := range lineItems {
		if err := li.Validate(); err != nil {
			return err
		}
	}

	o.lineItems = make([]*OrderLineItem, 0, len(lineItems))
	for _, li := range lineItems {
		li.orderID = o.id
		o.lineItems = append(o.lineItems, li)
	}
	return nil
}
