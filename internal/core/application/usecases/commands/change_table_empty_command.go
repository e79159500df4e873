package commands

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/guard"
)

var ErrChangeTableEmptyCommandIsNotConstructed = errors.New(
	"ChangeTableEmptyCommand must be created via NewChangeTableEmptyCommand constructor",
)

// ChangeTableEmptyCommand marks a table empty or occupied.
type ChangeTableEmptyCommand struct { //nolint:recvcheck //using for validation
	tableID kernel.UUID
	empty   bool

	guard guard.ConstructorGuard
}

func NewChangeTableEmptyCommand(tableID kernel.UUID, empty bool) (ChangeTableEmptyCommand, error) {
	if err := tableID.Validate(); err != nil {
		return ChangeTableEmptyCommand{}, err
	}

	return ChangeTableEmptyCommand{
		tableID: tableID,
		empty:   empty,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeTableEmptyCommand) Validate() error {
	return c.guard.Validate(ErrChangeTableEmptyCommandIsNotConstructed)
}

func (c ChangeTableEmptyCommand) TableID() kernel.UUID { return c.tableID }
func (c ChangeTableEmptyCommand) Empty() bool          { return c.empty }
