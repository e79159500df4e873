package commands

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/table"
	"kitchenpos/internal/pkg/guard"
)

var ErrGroupTablesCommandIsNotConstructed = errors.New(
	"GroupTablesCommand must be created via NewGroupTablesCommand constructor",
)

// GroupTablesCommand represents a request to seat one party across several
// tables.
type GroupTablesCommand struct { //nolint:recvcheck //using for validation
	tableGroupID kernel.UUID
	tableIDs     []kernel.UUID

	guard guard.ConstructorGuard
}

// NewGroupTablesCommand fails with table.ErrTableGroupTooSmall when fewer than
// table.MinGroupSize distinct tables are requested.
func NewGroupTablesCommand(tableGroupID kernel.UUID, tableIDs []kernel.UUID) (GroupTablesCommand, error) {
	cmd := GroupTablesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTableGroupID(tableGroupID),
		cmd.setTableIDs(tableIDs),
	); err != nil {
		return GroupTablesCommand{}, err
	}

	return cmd, nil
}

func (c GroupTablesCommand) Validate() error {
	return c.guard.Validate(ErrGroupTablesCommandIsNotConstructed)
}

func (c GroupTablesCommand) TableGroupID() kernel.UUID { return c.tableGroupID }

// TableIDs returns the requested tables without duplicates, in request order.
func (c GroupTablesCommand) TableIDs() []kernel.UUID {
	return append([]kernel.UUID(nil), c.tableIDs...)
}

func (c *GroupTablesCommand) setTableGroupID(tableGroupID kernel.UUID) error {
	if err := tableGroupID.Validate(); err != nil {
		return err
	}
	c.tableGroupID = tableGroupID
	return nil
}

func (c *GroupTablesCommand) setTableIDs(tableIDs []kernel.UUID) error {
	seen := make(map[kernel.UUID]struct{}, len(tableIDs))
	distinct := make([]kernel.UUID, 0, len(tableIDs))
	for _, id := range tableIDs {
		if err := id.Validate(); err != nil {
			return err
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		distinct = append(distinct, id)
	}

	if len(distinct) < table.MinGroupSize {
		return table.ErrTableGroupTooSmall
	}
	c.tableIDs = distinct
	return nil
}
