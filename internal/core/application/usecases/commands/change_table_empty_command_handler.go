package commands

import (
	"context"
	"fmt"

	"kitchenpos/internal/core/domain/model/table"
)

// ChangeTableEmptyCommandHandler sets the empty flag of a table.
//
// The change is refused while the table belongs to a group or while any order
// placed on it is not completed. The second rule is owned by the order side and
// reached through the unit of work's OrderStatusChecker, inside the same
// transaction as the table update.
type ChangeTableEmptyCommandHandler struct {
	uowFactory TableUoWFactory
}

func NewChangeTableEmptyCommandHandler(uowFactory TableUoWFactory) ChangeTableEmptyCommandHandler {
	return ChangeTableEmptyCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h ChangeTableEmptyCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeTableEmptyCommand,
) (*table.OrderTable, error) {
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

	tableRepo := uow.TableRepository()
	orderTable, err := tableRepo.Get(ctx, cmd.TableID())
	if err != nil {
		return nil, err
	}

	if err = orderTable.ValidateChangeEmpty(); err != nil {
		return nil, err
	}

	completed, err := uow.OrderStatusChecker().AllComplete(ctx, orderTable.ID())
	if err != nil {
		return nil, err
	}
	if !completed {
		return nil, fmt.Errorf("order table %s: %w", orderTable.ID(), table.ErrTableHasActiveOrders)
	}

	if err = orderTable.ChangeEmpty(cmd.Empty()); err != nil {
		return nil, err
	}

	if err = tableRepo.Update(ctx, orderTable); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return orderTable, nil
}
