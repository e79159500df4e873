package services

import (
	"errors"
	"fmt"
	"time"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"
	"kitchenpos/internal/core/domain/model/menugroup"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/core/domain/model/product"
	"kitchenpos/internal/core/domain/model/table"
	"kitchenpos/internal/pkg/errs"
)

// ErrOrderTableEmpty is returned when an order is placed on a table nobody sits at.
var ErrOrderTableEmpty = errs.NewPreconditionFailedError("cannot place an order on an empty table")

// OrderLine is one requested menu of an order, with the menu, its group and
// its products already loaded. Products may hold more than the menu uses.
type OrderLine struct {
	LineItemID kernel.UUID
	Menu       *menu.Menu
	MenuGroup  *menugroup.MenuGroup
	Products   map[kernel.UUID]*product.Product
	Quantity   int64
}

// OrderPlacer places orders on tables.
//
// Business rules:
//   - The table must be occupied
//   - Each line item copies the menu name, price and group name as they are now
//   - Each line item also copies the name, price and quantity of every menu product
//   - Every line needs a quantity of at least 1
//
// Example usage:
//
//	placer := services.NewOrderPlacer()
//	o, err := placer.Place(kernel.NewUUID(), orderTable, []services.OrderLine{
//	    {LineItemID: kernel.NewUUID(), Menu: chickenMenu, MenuGroup: chickenGroup, Products: products, Quantity: 2},
//	}, time.Now())
type OrderPlacer struct{}

func NewOrderPlacer() OrderPlacer {
	return OrderPlacer{}
}

// Place builds a new order for orderTable. The table is only read.
func (p OrderPlacer) Place(
	orderID kernel.UUID,
	orderTable *table.OrderTable,
	lines []OrderLine,
	orderedAt time.Time,
) (*order.Order, error) {
	if len(lines) == 0 {
		return nil, order.ErrOrderLineItemsEmpty
	}
	if err := orderTable.Validate(); err != nil {
		return nil, err
	}
	if orderTable.IsEmpty() {
		return nil, fmt.Errorf("order table %s: %w", orderTable.ID(), ErrOrderTableEmpty)
	}

	lineItems := make([]*order.OrderLineItem, 0, len(lines))
	for _, line := range lines {
		li, err := p.lineItem(line)
		if err != nil {
			return nil, err
		}
		lineItems = append(lineItems, li)
	}

	return order.NewOrder(orderID, orderTable.ID(), orderedAt, lineItems)
}

func (p OrderPlacer) lineItem(line OrderLine) (*order.OrderLineItem, error) {
	if err := errors.Join(line.Menu.Validate(), line.MenuGroup.Validate()); err != nil {
		return nil, err
	}
	if !line.Menu.MenuGroupID().IsEqual(line.MenuGroup.ID()) {
		return nil, errs.NewValueIsInvalidErrorWithCause("menuGroup",
			fmt.Errorf("menu %s is not listed under group %s", line.Menu.ID(), line.MenuGroup.ID()))
	}

	products, err := p.menuProducts(line)
	if err != nil {
		return nil, err
	}
	snapshot, err := order.NewOrderMenu(line.Menu.Name(), line.Menu.Price(), line.MenuGroup.Name(), products...)
	if err != nil {
		return nil, err
	}
	return order.NewOrderLineItem(line.LineItemID, line.Menu.ID(), snapshot, line.Quantity)
}

func (p OrderPlacer) menuProducts(line OrderLine) ([]order.OrderMenuProduct, error) {
	menuProducts := line.Menu.MenuProducts()
	snapshots := make([]order.OrderMenuProduct, 0, len(menuProducts))
	for _, mp := range menuProducts {
		prod, ok := line.Products[mp.ProductID()]
		if !ok {
			return nil, errs.NewObjectNotFoundError("productId", mp.ProductID().String())
		}
		if err := prod.Validate(); err != nil {
			return nil, err
		}
		snapshot, err := order.NewOrderMenuProduct(prod.Name(), prod.Price(), mp.Quantity())
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, snapshot)
	}
	return snapshots, nil
}
