package menu

import (
	"errors"
	"fmt"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"
)

var ErrMenuProductIsNotConstructed = errors.New("MenuProduct must be created via NewMenuProduct or RestoreMenuProduct constructor")

// MenuProduct is one line of a menu's composition: quantity units of a product.
//
// It keeps the product's unit price as seen when the menu was registered, which is
// what the menu price invariant is checked against. The owning menu is referenced by
// identifier only; it is assigned by NewMenu.
type MenuProduct struct {
	id           kernel.UUID
	menuID       kernel.UUID
	productID    kernel.UUID
	productPrice kernel.Price
	quantity     int64

	guard guard.ConstructorGuard
}

// NewMenuProduct creates a menu line for a menu that does not exist yet.
func NewMenuProduct(id, productID kernel.UUID, productPrice kernel.Price, quantity int64) (*MenuProduct, error) {
	mp := &MenuProduct{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		mp.setID(id),
		mp.setProductID(productID),
		mp.setProductPrice(productPrice),
		mp.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return mp, nil
}

// RestoreMenuProduct rebuilds a menu line loaded from storage together with its menu.
func RestoreMenuProduct(
	id, menuID, productID kernel.UUID,
	productPrice kernel.Price,
	quantity int64,
) (*MenuProduct, error) {
	mp, err := NewMenuProduct(id, productID, productPrice, quantity)
	if err != nil {
		return nil, err
	}
	if err = menuID.Validate(); err != nil {
		return nil, err
	}
	mp.menuID = menuID
	return mp, nil
}

func (mp *MenuProduct) Validate() error {
	if mp == nil {
		return ErrMenuProductIsNotConstructed
	}
	return mp.guard.Validate(ErrMenuProductIsNotConstructed)
}

func (mp *MenuProduct) ID() kernel.UUID            { return mp.id }
func (mp *MenuProduct) MenuID() kernel.UUID        { return mp.menuID }
func (mp *MenuProduct) ProductID() kernel.UUID     { return mp.productID }
func (mp *MenuProduct) ProductPrice() kernel.Price { return mp.productPrice }
func (mp *MenuProduct) Quantity() int64            { return mp.quantity }

// TotalPrice returns productPrice × quantity.
func (mp *MenuProduct) TotalPrice() (kernel.Price, error) {
	return mp.productPrice.Multiply(mp.quantity)
}

func (mp *MenuProduct) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	mp.id = id
	return nil
}

func (mp *MenuProduct) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	mp.productID = productID
	return nil
}

func (mp *MenuProduct) setProductPrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}
	mp.productPrice = price
	return nil
}

func (mp *MenuProduct) setQuantity(quantity int64) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is negative", quantity))
	}
	mp.quantity = quantity
	return nil
}
