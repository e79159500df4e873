package commands

import (
	"context"
	"fmt"

	"kitchenpos/internal/core/domain/model/table"
)

// UngroupTablesCommandHandler dissolves a table group.
//
// Every member is checked with the OrderStatusChecker before any member is
// detached. One member with an order that is not completed aborts the whole
// operation and the group stays as it was. On success the members keep being
// occupied and the group record is deleted.
type UngroupTablesCommandHandler struct {
	uowFactory TableUoWFactory
}

func NewUngroupTablesCommandHandler(uowFactory TableUoWFactory) UngroupTablesCommandHandler {
	return UngroupTablesCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h UngroupTablesCommandHandler) Handle(ctx context.Context, cmd UngroupTablesCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	groupRepo := uow.TableGroupRepository()
	tableRepo := uow.TableRepository()

	group, err := groupRepo.Get(ctx, cmd.TableGroupID())
	if err != nil {
		return err
	}

	members, err := tableRepo.GetAllByGroupID(ctx, group.ID())
	if err != nil {
		return err
	}

	checker := uow.OrderStatusChecker()
	for _, member := range members {
		completed, err := checker.AllComplete(ctx, member.ID())
		if err != nil {
			return err
		}
		if !completed {
			return fmt.Errorf("order table %s: %w", member.ID(), table.ErrTableHasActiveOrders)
		}
	}

	if err = group.Ungroup(members); err != nil {
		return err
	}

	for _, member := range members {
		if err = tableRepo.Update(ctx, member); err != nil {
			return err
		}
	}

	if err = groupRepo.Remove(ctx, group); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
