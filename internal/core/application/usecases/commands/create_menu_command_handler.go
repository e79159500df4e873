package commands

import (
	"context"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"
)

// CreateMenuCommandHandler registers menus. The menu products take the current
// price of their product; the menu price is checked against their sum.
type CreateMenuCommandHandler struct {
	uowFactory MenuUoWFactory
}

func NewCreateMenuCommandHandler(uowFactory MenuUoWFactory) CreateMenuCommandHandler {
	return CreateMenuCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle fails with an errs.ErrObjectNotFound error when the menu group or any
// product does not exist, and with menu.ErrMenuPriceExceedsProducts when the
// menu costs more than its products.
func (h CreateMenuCommandHandler) Handle(ctx context.Context, cmd CreateMenuCommand) (*menu.Menu, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.MenuGroupRepository().Get(ctx, cmd.MenuGroupID()); err != nil {
		return nil, err
	}

	productRepo := uow.ProductRepository()
	menuProducts := make([]*menu.MenuProduct, 0, len(cmd.MenuProducts()))
	for _, line := range cmd.MenuProducts() {
		p, err := productRepo.Get(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}

		mp, err := menu.NewMenuProduct(kernel.NewUUID(), p.ID(), p.Price(), line.Quantity)
		if err != nil {
			return nil, err
		}
		menuProducts = append(menuProducts, mp)
	}

	m, err := menu.NewMenu(cmd.MenuID(), cmd.Name(), cmd.Price(), cmd.MenuGroupID(), menuProducts)
	if err != nil {
		return nil, err
	}

	if err = uow.MenuRepository().Add(ctx, m); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return m, nil
}
