package commands

import (
	"context"
	"time"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/core/domain/model/product"
	"kitchenpos/internal/core/domain/services"
)

// CreateOrderCommandHandler places orders. Each line item records the menu
// name, price, group name and products as they are at the time of the order.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	o, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // unknown table, menu or product
//	case errors.Is(err, services.ErrOrderTableEmpty):
//	    // nobody sits at the table
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the table, every ordered menu and the products those menus are
// made of, then lets services.OrderPlacer build the order. Nothing is written
// unless the whole order is valid.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
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

	orderTable, err := uow.TableRepository().Get(ctx, cmd.TableID())
	if err != nil {
		return nil, err
	}

	menuRepo := uow.MenuRepository()
	groupRepo := uow.MenuGroupRepository()
	productRepo := uow.ProductRepository()
	products := make(map[kernel.UUID]*product.Product)
	lines := make([]services.OrderLine, 0, len(cmd.Lines()))
	for _, req := range cmd.Lines() {
		m, err := menuRepo.Get(ctx, req.MenuID)
		if err != nil {
			return nil, err
		}

		group, err := groupRepo.Get(ctx, m.MenuGroupID())
		if err != nil {
			return nil, err
		}

		for _, mp := range m.MenuProducts() {
			if _, ok := products[mp.ProductID()]; ok {
				continue
			}
			p, err := productRepo.Get(ctx, mp.ProductID())
			if err != nil {
				return nil, err
			}
			products[p.ID()] = p
		}

		lines = append(lines, services.OrderLine{
			LineItemID: kernel.NewUUID(),
			Menu:       m,
			MenuGroup:  group,
			Products:   products,
			Quantity:   req.Quantity,
		})
	}

	placed, err := services.NewOrderPlacer().Place(cmd.OrderID(), orderTable, lines, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, placed); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return placed, nil
}
