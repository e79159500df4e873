package order

import (
	"errors"
	"fmt"
	"slices"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/errs"
)

var ErrOrderLineItemIsNotConstructed = errors.New("OrderLineItem must be created via NewOrderLineItem or RestoreOrderLineItem constructor")

// OrderMenuProduct is one product of an ordered menu, as it was when the order
// was placed.
type OrderMenuProduct struct {
	productName string
	price       kernel.Price
	quantity    int64
}

func NewOrderMenuProduct(productName string, price kernel.Price, quantity int64) (OrderMenuProduct, error) {
	if productName == "" {
		return OrderMenuProduct{}, errs.NewValueIsRequiredError("productName")
	}
	if err := price.Validate(); err != nil {
		return OrderMenuProduct{}, err
	}
	if quantity < 0 {
		return OrderMenuProduct{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is negative", quantity),
		)
	}
	return OrderMenuProduct{productName: productName, price: price, quantity: quantity}, nil
}

func (p OrderMenuProduct) ProductName() string { return p.productName }
func (p OrderMenuProduct) Price() kernel.Price { return p.price }
func (p OrderMenuProduct) Quantity() int64     { return p.quantity }

// OrderMenu is the state of a menu at the moment it was ordered. Later changes to
// the menu, its group or its products do not reach existing orders.
type OrderMenu struct {
	name          string
	price         kernel.Price
	menuGroupName string
	products      []OrderMenuProduct
}

// NewOrderMenu copies products, so the caller may reuse the slice.
func NewOrderMenu(
	name string,
	price kernel.Price,
	menuGroupName string,
	products ...OrderMenuProduct,
) (OrderMenu, error) {
	if name == "" {
		return OrderMenu{}, errs.NewValueIsRequiredError("menuName")
	}
	if err := price.Validate(); err != nil {
		return OrderMenu{}, err
	}
	return OrderMenu{
		name:          name,
		price:         price,
		menuGroupName: menuGroupName,
		products:      slices.Clone(products),
	}, nil
}

func (m OrderMenu) Name() string          { return m.name }
func (m OrderMenu) Price() kernel.Price   { return m.price }
func (m OrderMenu) MenuGroupName() string { return m.menuGroupName }

// Products returns a copy of the menu's products in menu order.
func (m OrderMenu) Products() []OrderMenuProduct { return slices.Clone(m.products) }

// OrderLineItem is a quantity of one menu on an order. It is immutable once the
// order is placed.
type OrderLineItem struct {
	id       kernel.UUID
	orderID  kernel.UUID
	menuID   kernel.UUID
	menu     OrderMenu
	quantity int64

	isConstructed bool
}

// NewOrderLineItem creates a line item that is not yet attached to an order.
// Quantity must be at least 1.
func NewOrderLineItem(id, menuID kernel.UUID, menu OrderMenu, quantity int64) (*OrderLineItem, error) {
	li := &OrderLineItem{isConstructed: true}

	if err := errors.Join(
		li.setID(id),
		li.setMenuID(menuID),
		li.setMenu(menu),
		li.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return li, nil
}

// RestoreOrderLineItem rebuilds a line item of a stored order.
func RestoreOrderLineItem(
	id, orderID, menuID kernel.UUID,
	menu OrderMenu,
	quantity int64,
) (*OrderLineItem, error) {
	li, err := NewOrderLineItem(id, menuID, menu, quantity)
	if err != nil {
		return nil, err
	}
	li.orderID = orderID
	return li, nil
}

func (li *OrderLineItem) Validate() error {
	if li == nil || !li.isConstructed {
		return ErrOrderLineItemIsNotConstructed
	}
	return nil
}

func (li *OrderLineItem) ID() kernel.UUID      { return li.id }
func (li *OrderLineItem) OrderID() kernel.UUID { return li.orderID }
func (li *OrderLineItem) MenuID() kernel.UUID  { return li.menuID }
func (li *OrderLineItem) Menu() OrderMenu      { return li.menu }
func (li *OrderLineItem) Quantity() int64      { return li.quantity }

func (li *OrderLineItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	li.id = id
	return nil
}

func (li *OrderLineItem) setMenuID(menuID kernel.UUID) error {
	if err := menuID.Validate(); err != nil {
		return err
	}
	li.menuID = menuID
	return nil
}

func (li *OrderLineItem) setMenu(menu OrderMenu) error {
	if menu.name == "" {
		return errs.NewValueIsRequiredError("menuName")
	}
	li.menu = menu
	return nil
}

func (li *OrderLineItem) setQuantity(quantity int64) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is less than 1", quantity))
	}
	li.quantity = quantity
	return nil
}
