package commands

import (
	"context"

	"kitchenpos/internal/core/domain/model/menugroup"
)

type CreateMenuGroupCommandHandler struct {
	uowFactory MenuGroupUoWFactory
}

func NewCreateMenuGroupCommandHandler(uowFactory MenuGroupUoWFactory) CreateMenuGroupCommandHandler {
	return CreateMenuGroupCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CreateMenuGroupCommandHandler) Handle(
	ctx context.Context,
	cmd CreateMenuGroupCommand,
) (*menugroup.MenuGroup, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	group, err := menugroup.NewMenuGroup(cmd.MenuGroupID(), cmd.Name())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.MenuGroupRepository().Add(ctx, group); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return group, nil
}
