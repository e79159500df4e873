package commands

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/guard"
)

var ErrUngroupTablesCommandIsNotConstructed = errors.New(
	"UngroupTablesCommand must be created via NewUngroupTablesCommand constructor",
)

type UngroupTablesCommand struct { //nolint:recvcheck //using for validation
	tableGroupID kernel.UUID

	guard guard.ConstructorGuard
}

func NewUngroupTablesCommand(tableGroupID kernel.UUID) (UngroupTablesCommand, error) {
	if err := tableGroupID.Validate(); err != nil {
		return UngroupTablesCommand{}, err
	}

	return UngroupTablesCommand{
		tableGroupID: tableGroupID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c UngroupTablesCommand) Validate() error {
	return c.guard.Validate(ErrUngroupTablesCommandIsNotConstructed)
}

func (c UngroupTablesCommand) TableGroupID() kernel.UUID { return c.tableGroupID }
