package commands

import (
	"context"

	"kitchenpos/internal/core/domain/model/table"
)

type ChangeNumberOfGuestsCommandHandler struct {
	uowFactory TableUoWFactory
}

func NewChangeNumberOfGuestsCommandHandler(uowFactory TableUoWFactory) ChangeNumberOfGuestsCommandHandler {
	return ChangeNumberOfGuestsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle seats the requested number of guests. An empty table fails with
// table.ErrTableIsEmpty.
func (h ChangeNumberOfGuestsCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeNumberOfGuestsCommand,
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

	if err = orderTable.ChangeNumberOfGuests(cmd.NumberOfGuests()); err != nil {
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
