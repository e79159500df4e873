package commands

import (
	"context"
	"time"

	"kitchenpos/internal/core/domain/model/table"
)

// GroupTablesCommandHandler creates table groups. Every member must exist, be
// empty and not belong to another group; on success all members are occupied
// and carry the group id.
type GroupTablesCommandHandler struct {
	uowFactory TableUoWFactory
}

func NewGroupTablesCommandHandler(uowFactory TableUoWFactory) GroupTablesCommandHandler {
	return GroupTablesCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h GroupTablesCommandHandler) Handle(ctx context.Context, cmd GroupTablesCommand) (*table.TableGroup, error) {
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
	tables, err := tableRepo.GetByIDs(ctx, cmd.TableIDs())
	if err != nil {
		return nil, err
	}

	group, err := table.NewTableGroup(cmd.TableGroupID(), time.Now().UTC(), tables)
	if err != nil {
		return nil, err
	}

	if err = uow.TableGroupRepository().Add(ctx, group); err != nil {
		return nil, err
	}

	for _, t := range tables {
		if err = tableRepo.Update(ctx, t); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return group, nil
}
