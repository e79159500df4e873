// Package orderrepo persists orders together with their line items and the
// menu products each line item was sold with.
package orderrepo

import (
	"errors"
	"time"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO stores the status by name (COOKING, MEAL, COMPLETION) so rows stay
// readable from SQL and the read side can filter on it directly.
type OrderDTO struct {
	ID           uuid.UUID          `gorm:"type:uuid;primaryKey"`
	OrderTableID uuid.UUID          `gorm:"type:uuid;not null;index"`
	OrderStatus  string             `gorm:"type:varchar(16);not null;index"`
	OrderedTime  time.Time          `gorm:"type:timestamptz;not null"`
	LineItems    []OrderLineItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineItemDTO keeps a snapshot of the menu taken when the order was placed.
type OrderLineItemDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Seq           int             `gorm:"not null"`
	MenuID        uuid.UUID       `gorm:"type:uuid;not null"`
	MenuName      string          `gorm:"type:varchar(255);not null"`
	MenuPrice     decimal.Decimal `gorm:"type:numeric(19,2);not null"`
	MenuGroupName string          `gorm:"type:varchar(255);not null"`
	Quantity      int64           `gorm:"not null"`

	MenuProducts []OrderMenuProductDTO `gorm:"foreignKey:LineItemID;constraint:OnDelete:CASCADE"`
}

func (OrderLineItemDTO) TableName() string {
	return "order_line_items"
}

type OrderMenuProductDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	LineItemID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Seq         int             `gorm:"not null"`
	ProductName string          `gorm:"type:varchar(255);not null"`
	Price       decimal.Decimal `gorm:"type:numeric(19,2);not null"`
	Quantity    int64           `gorm:"not null"`
}

func (OrderMenuProductDTO) TableName() string {
	return "order_menu_products"
}

func fromDomain(o *order.Order) OrderDTO {
	lineItems := o.LineItems()
	dto := OrderDTO{
		ID:           o.ID().Bytes(),
		OrderTableID: o.TableID().Bytes(),
		OrderStatus:  o.Status().String(),
		OrderedTime:  o.OrderedAt().UTC(),
		LineItems:    make([]OrderLineItemDTO, 0, len(lineItems)),
	}

	for i, li := range lineItems {
		liDTO := OrderLineItemDTO{
			ID:            li.ID().Bytes(),
			OrderID:       dto.ID,
			Seq:           i,
			MenuID:        li.MenuID().Bytes(),
			MenuName:      li.Menu().Name(),
			MenuPrice:     li.Menu().Price().Amount(),
			MenuGroupName: li.Menu().MenuGroupName(),
			Quantity:      li.Quantity(),
		}

		// Snapshot rows have no identity in the domain; a fresh id per row is enough.
		for j, mp := range li.Menu().Products() {
			liDTO.MenuProducts = append(liDTO.MenuProducts, OrderMenuProductDTO{
				ID:          uuid.New(),
				LineItemID:  liDTO.ID,
				Seq:         j,
				ProductName: mp.ProductName(),
				Price:       mp.Price().Amount(),
				Quantity:    mp.Quantity(),
			})
		}

		dto.LineItems = append(dto.LineItems, liDTO)
	}

	return dto
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, idErr := kernel.UUIDFromBytes(dto.ID[:])
	tableID, tableErr := kernel.UUIDFromBytes(dto.OrderTableID[:])
	status, statusErr := order.ParseStatus(dto.OrderStatus)
	if err := errors.Join(idErr, tableErr, statusErr); err != nil {
		return nil, err
	}

	lineItems := make([]*order.OrderLineItem, 0, len(dto.LineItems))
	for _, liDTO := range dto.LineItems {
		li, err := lineItemToDomain(liDTO)
		if err != nil {
			return nil, err
		}
		lineItems = append(lineItems, li)
	}

	return order.RestoreOrder(id, tableID, status, dto.OrderedTime, lineItems)
}

func lineItemToDomain(dto OrderLineItemDTO) (*order.OrderLineItem, error) {
	id, idErr := kernel.UUIDFromBytes(dto.ID[:])
	orderID, orderErr := kernel.UUIDFromBytes(dto.OrderID[:])
	menuID, menuErr := kernel.UUIDFromBytes(dto.MenuID[:])
	price, priceErr := kernel.NewPrice(dto.MenuPrice)
	if err := errors.Join(idErr, orderErr, menuErr, priceErr); err != nil {
		return nil, err
	}

	products := make([]order.OrderMenuProduct, 0, len(dto.MenuProducts))
	for _, mpDTO := range dto.MenuProducts {
		mpPrice, err := kernel.NewPrice(mpDTO.Price)
		if err != nil {
			return nil, err
		}
		mp, err := order.NewOrderMenuProduct(mpDTO.ProductName, mpPrice, mpDTO.Quantity)
		if err != nil {
			return nil, err
		}
		products = append(products, mp)
	}

	snapshot, err := order.NewOrderMenu(dto.MenuName, price, dto.MenuGroupName, products...)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrderLineItem(id, orderID, menuID, snapshot, dto.Quantity)
}
