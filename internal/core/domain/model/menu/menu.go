package menu

import (
	"errors"
	"fmt"
	"strings"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"
)

var (
	ErrNameIsRequired          = errs.NewValueIsRequiredError("name")
	ErrMenuProductsAreRequired = errs.NewValueIsRequiredError("menuProducts")
	ErrMenuIsNotConstructed    = errors.New("Menu must be created via NewMenu or RestoreMenu constructor")

	// ErrMenuPriceExceedsProducts is returned when a menu costs more than its products bought separately.
	ErrMenuPriceExceedsProducts = errs.NewValueIsInvalidErrorWithCause(
		"price", errors.New("menu price exceeds the sum of its product prices"))
)

// Menu is a priced combination of products sold as one item, listed under a
// menu group. A menu is immutable once registered; orders copy its name and price
// into their line items.
//
// Invariant: price ≤ Σ(productPrice × quantity) over its menu products.
type Menu struct {
	id           kernel.UUID
	name         string
	price        kernel.Price
	menuGroupID  kernel.UUID
	menuProducts []*MenuProduct

	guard guard.ConstructorGuard
}

// NewMenu creates a menu from freshly built menu products and assigns itself as
// their menu. It fails with an invalid-value error when price is strictly greater
// than the sum of the product prices; an equal price is accepted.
//
// Example:
//
//	chicken, _ := menu.NewMenuProduct(kernel.NewUUID(), chickenID, sixteenThousand, 2)
//	m, err := menu.NewMenu(kernel.NewUUID(), "two fried chickens", thirtyTwoThousand, groupID,
//	    []*menu.MenuProduct{chicken})
func NewMenu(
	id kernel.UUID,
	name string,
	price kernel.Price,
	menuGroupID kernel.UUID,
	menuProducts []*MenuProduct,
) (*Menu, error) {
	m := &Menu{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		m.setID(id),
		m.setName(name),
		m.setPrice(price),
		m.setMenuGroupID(menuGroupID),
		m.setMenuProducts(menuProducts),
	); err != nil {
		return nil, err
	}

	if err := m.validatePrice(); err != nil {
		return nil, err
	}

	for _, mp := range m.menuProducts {
		mp.menuID = m.id
	}

	return m, nil
}

// RestoreMenu rebuilds a menu loaded from storage. The price invariant is checked
// again so corrupted rows are not silently accepted.
func RestoreMenu(
	id kernel.UUID,
	name string,
	price kernel.Price,
	menuGroupID kernel.UUID,
	menuProducts []*MenuProduct,
) (*Menu, error) {
	return NewMenu(id, name, price, menuGroupID, menuProducts)
}

func (m *Menu) Validate() error {
	if m == nil {
		return ErrMenuIsNotConstructed
	}
	return m.guard.Validate(ErrMenuIsNotConstructed)
}

func (m *Menu) ID() kernel.UUID          { return m.id }
func (m *Menu) Name() string             { return m.name }
func (m *Menu) Price() kernel.Price      { return m.price }
func (m *Menu) MenuGroupID() kernel.UUID { return m.menuGroupID }

// MenuProducts returns a copy of the menu's product lines.
func (m *Menu) MenuProducts() []*MenuProduct {
	out := make([]*MenuProduct, len(m.menuProducts))
	copy(out, m.menuProducts)
	return out
}

// ProductsTotal returns Σ(productPrice × quantity).
func (m *Menu) ProductsTotal() (kernel.Price, error) {
	total := kernel.ZeroPrice()
	for _, mp := range m.menuProducts {
		linePrice, err := mp.TotalPrice()
		if err != nil {
			return kernel.Price{}, err
		}
		total = total.Add(linePrice)
	}
	return total, nil
}

func (m *Menu) validatePrice() error {
	total, err := m.ProductsTotal()
	if err != nil {
		return err
	}

	if m.price.IsGreaterThan(total) {
		return fmt.Errorf("%w: %s > %s", ErrMenuPriceExceedsProducts, m.price, total)
	}
	return nil
}

func (m *Menu) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Menu) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}
	m.name = name
	return nil
}

func (m *Menu) setPrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}
	m.price = price
	return nil
}

func (m *Menu) setMenuGroupID(menuGroupID kernel.UUID) error {
	if err := menuGroupID.Validate(); err != nil {
		return err
	}
	m.menuGroupID = menuGroupID
	return nil
}

func (m *Menu) setMenuProducts(menuProducts []*MenuProduct) error {
	if len(menuProducts) == 0 {
		return ErrMenuProductsAreRequired
	}
	for _, mp := range menuProducts {
		if err := mp.Validate(); err != nil {
			return err
		}
	}
	m.menuProducts = append([]*MenuProduct(nil), menuProducts...)
	return nil
}
