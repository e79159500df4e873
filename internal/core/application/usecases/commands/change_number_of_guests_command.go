package commands

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/table"
	"kitchenpos/internal/pkg/guard"
)

var ErrChangeNumberOfGuestsCommandIsNotConstructed = errors.New(
	"ChangeNumberOfGuestsCommand must be created via NewChangeNumberOfGuestsCommand constructor",
)

type ChangeNumberOfGuestsCommand struct { //nolint:recvcheck //using for validation
	tableID        kernel.UUID
	numberOfGuests table.NumberOfGuests

	guard guard.ConstructorGuard
}

func NewChangeNumberOfGuestsCommand(tableID kernel.UUID, numberOfGuests int) (ChangeNumberOfGuestsCommand, error) {
	cmd := ChangeNumberOfGuestsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTableID(tableID),
		cmd.setNumberOfGuests(numberOfGuests),
	); err != nil {
		return ChangeNumberOfGuestsCommand{}, err
	}

	return cmd, nil
}

func (c ChangeNumberOfGuestsCommand) Validate() error {
	return c.guard.Validate(ErrChangeNumberOfGuestsCommandIsNotConstructed)
}

func (c ChangeNumberOfGuestsCommand) TableID() kernel.UUID                 { return c.tableID }
func (c ChangeNumberOfGuestsCommand) NumberOfGuests() table.NumberOfGuests { return c.numberOfGuests }

func (c *ChangeNumberOfGuestsCommand) setTableID(tableID kernel.UUID) error {
	if err := tableID.Validate(); err != nil {
		return err
	}
	c.tableID = tableID
	return nil
}

func (c *ChangeNumberOfGuestsCommand) setNumberOfGuests(count int) error {
	n, err := table.NewNumberOfGuests(count)
	if err != nil {
		return err
	}
	c.numberOfGuests = n
	return nil
}
