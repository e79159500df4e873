package commands

import (
	"errors"
	"fmt"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"
)

var ErrCreateMenuCommandIsNotConstructed = errors.New(
	"CreateMenuCommand must be created via NewCreateMenuCommand constructor",
)

// MenuProductLine is a product and how many of it a menu contains.
type MenuProductLine struct {
	ProductID kernel.UUID
	Quantity  int64
}

// CreateMenuCommand represents a request to register a menu made of existing
// products under an existing menu group.
//
// Example:
//
//	cmd, err := NewCreateMenuCommand(kernel.NewUUID(), "two fried chickens", price, groupID,
//	    []MenuProductLine{{ProductID: chickenID, Quantity: 2}})
//	if err != nil {
//	    return fmt.Errorf("invalid menu data: %w", err)
//	}
//	m, err := handler.Handle(ctx, cmd)
type CreateMenuCommand struct { //nolint:recvcheck //using for validation
	menuID       kernel.UUID
	name         string
	price        kernel.Price
	menuGroupID  kernel.UUID
	menuProducts []MenuProductLine

	guard guard.ConstructorGuard
}

// NewCreateMenuCommand validates the request shape. Whether the group and the
// products exist and whether the price is acceptable is decided by the handler.
func NewCreateMenuCommand(
	menuID kernel.UUID,
	name string,
	price kernel.Price,
	menuGroupID kernel.UUID,
	menuProducts []MenuProductLine,
) (CreateMenuCommand, error) {
	cmd := CreateMenuCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setMenuID(menuID),
		cmd.setName(name),
		cmd.setPrice(price),
		cmd.setMenuGroupID(menuGroupID),
		cmd.setMenuProducts(menuProducts),
	); err != nil {
		return CreateMenuCommand{}, err
	}

	return cmd, nil
}

func (c CreateMenuCommand) Validate() error {
	return c.guard.Validate(ErrCreateMenuCommandIsNotConstructed)
}

func (c CreateMenuCommand) MenuID() kernel.UUID      { return c.menuID }
func (c CreateMenuCommand) Name() string             { return c.name }
func (c CreateMenuCommand) Price() kernel.Price      { return c.price }
func (c CreateMenuCommand) MenuGroupID() kernel.UUID { return c.menuGroupID }

func (c CreateMenuCommand) MenuProducts() []MenuProductLine {
	return append([]MenuProductLine(nil), c.menuProducts...)
}

func (c *CreateMenuCommand) setMenuID(menuID kernel.UUID) error {
	if err := menuID.Validate(); err != nil {
		return err
	}
	c.menuID = menuID
	return nil
}

func (c *CreateMenuCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *CreateMenuCommand) setPrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}
	c.price = price
	return nil
}

func (c *CreateMenuCommand) setMenuGroupID(menuGroupID kernel.UUID) error {
	if err := menuGroupID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("menuGroupId", err)
	}
	c.menuGroupID = menuGroupID
	return nil
}

func (c *CreateMenuCommand) setMenuProducts(lines []MenuProductLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("menuProducts")
	}
	for i, line := range lines {
		if err := line.ProductID.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause(fmt.Sprintf("menuProducts[%d].productId", i), err)
		}
		if line.Quantity < 0 {
			return errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("menuProducts[%d].quantity", i), fmt.Errorf("%d is negative", line.Quantity))
		}
	}
	c.menuProducts = append([]MenuProductLine(nil), lines...)
	return nil
}
