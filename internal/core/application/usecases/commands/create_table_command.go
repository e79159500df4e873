package commands

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/table"
	"kitchenpos/internal/pkg/guard"
)

var ErrCreateTableCommandIsNotConstructed = errors.New(
	"CreateTableCommand must be created via NewCreateTableCommand constructor",
)

type CreateTableCommand struct { //nolint:recvcheck //using for validation
	tableID        kernel.UUID
	numberOfGuests table.NumberOfGuests
	empty          bool

	guard guard.ConstructorGuard
}

// NewCreateTableCommand rejects a negative number of guests.
func NewCreateTableCommand(tableID kernel.UUID, numberOfGuests int, empty bool) (CreateTableCommand, error) {
	cmd := CreateTableCommand{
		empty: empty,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTableID(tableID),
		cmd.setNumberOfGuests(numberOfGuests),
	); err != nil {
		return CreateTableCommand{}, err
	}

	return cmd, nil
}

func (c CreateTableCommand) Validate() error {
	return c.guard.Validate(ErrCreateTableCommandIsNotConstructed)
}

func (c CreateTableCommand) TableID() kernel.UUID                 { return c.tableID }
func (c CreateTableCommand) NumberOfGuests() table.NumberOfGuests { return c.numberOfGuests }
func (c CreateTableCommand) Empty() bool                          { return c.empty }

func (c *CreateTableCommand) setTableID(tableID kernel.UUID) error {
	if err := tableID.Validate(); err != nil {
		return err
	}
	c.tableID = tableID
	return nil
}

func (c *CreateTableCommand) setNumberOfGuests(count int) error {
	n, err := table.NewNumberOfGuests(count)
	if err != nil {
		return err
	}
	c.numberOfGuests = n
	return nil
}
