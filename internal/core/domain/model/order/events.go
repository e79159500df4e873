package order

import (
	"strconv"
	"time"

	"kitchenpos/internal/core/domain/model/kernel"
)

const (
	PlacedEventName        = "order.placed"
	StatusChangedEventName = "order.status_changed"
)

// PlacedEvent is recorded when an order is placed on a table.
type PlacedEvent struct {
	orderID       kernel.UUID
	tableID       kernel.UUID
	lineItemCount int
	occurredAt    time.Time
}

func (e PlacedEvent) EventName() string        { return PlacedEventName }
func (e PlacedEvent) AggregateID() kernel.UUID { return e.orderID }
func (e PlacedEvent) OccurredAt() time.Time    { return e.occurredAt }
func (e PlacedEvent) TableID() kernel.UUID     { return e.tableID }

func (e PlacedEvent) Attributes() map[string]string {
	return map[string]string{
		"orderId":       e.orderID.String(),
		"orderTableId":  e.tableID.String(),
		"lineItemCount": strconv.Itoa(e.lineItemCount),
	}
}

// StatusChangedEvent is recorded on every accepted status change.
type StatusChangedEvent struct {
	orderID    kernel.UUID
	tableID    kernel.UUID
	from       Status
	to         Status
	occurredAt time.Time
}

func (e StatusChangedEvent) EventName() string        { return StatusChangedEventName }
func (e StatusChangedEvent) AggregateID() kernel.UUID { return e.orderID }
func (e StatusChangedEvent) OccurredAt() time.Time    { return e.occurredAt }
func (e StatusChangedEvent) From() Status             { return e.from }
func (e StatusChangedEvent) To() Status               { return e.to }

func (e StatusChangedEvent) Attributes() map[string]string {
	return map[string]string{
		"orderId":      e.orderID.String(),
		"orderTableId": e.tableID.String(),
		"from":         e.from.String(),
		"to":           e.to.String(),
	}
}
