package table

import (
	"errors"
	"fmt"
	"time"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"
)

// MinGroupSize is the smallest number of tables a group can hold.
const MinGroupSize = 2

var (
	ErrTableGroupIsNotConstructed = errors.New("TableGroup must be created via NewTableGroup or RestoreTableGroup constructor")
	ErrTableGroupTooSmall         = errs.NewValueIsInvalidErrorWithCause(
		"orderTables", fmt.Errorf("at least %d distinct tables are required", MinGroupSize))
	ErrTableNotInGroup = errs.NewPreconditionFailedError("order table does not belong to the table group")
)

// TableGroup joins two or more tables so that one party can sit across them.
//
// Grouping marks every member occupied. Ungrouping detaches every member at once
// or none of them. The group only records its members' identifiers; the member
// tables carry the group's identifier back.
type TableGroup struct {
	id        kernel.UUID
	createdAt time.Time
	tableIDs  []kernel.UUID

	guard guard.ConstructorGuard
}

// NewTableGroup groups tables. Every table must be constructed, empty and not
// grouped yet, and there must be at least MinGroupSize distinct tables. Either
// all tables join the group or, on error, none of them is modified.
func NewTableGroup(id kernel.UUID, createdAt time.Time, tables []*OrderTable) (*TableGroup, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if createdAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("createdAt")
	}
	if countDistinct(tables) < MinGroupSize {
		return nil, ErrTableGroupTooSmall
	}

	for _, t := range tables {
		if err := t.Validate(); err != nil {
			return nil, err
		}
		if err := t.validateCanJoinGroup(); err != nil {
			return nil, fmt.Errorf("order table %s: %w", t.ID(), err)
		}
	}

	group := &TableGroup{
		id:        id,
		createdAt: createdAt,
		tableIDs:  make([]kernel.UUID, 0, len(tables)),
		guard:     guard.NewConstructorGuard(),
	}
	for _, t := range tables {
		t.joinGroup(id)
		group.tableIDs = append(group.tableIDs, t.ID())
	}

	return group, nil
}

// RestoreTableGroup rebuilds a group loaded from storage with the identifiers of
// its current members.
func RestoreTableGroup(id kernel.UUID, createdAt time.Time, tableIDs []kernel.UUID) (*TableGroup, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	for _, tableID := range tableIDs {
		if err := tableID.Validate(); err != nil {
			return nil, err
		}
	}

	return &TableGroup{
		id:        id,
		createdAt: createdAt,
		tableIDs:  append([]kernel.UUID(nil), tableIDs...),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (g *TableGroup) Validate() error {
	if g == nil {
		return ErrTableGroupIsNotConstructed
	}
	return g.guard.Validate(ErrTableGroupIsNotConstructed)
}

func (g *TableGroup) ID() kernel.UUID      { return g.id }
func (g *TableGroup) CreatedAt() time.Time { return g.createdAt }

// TableIDs returns the identifiers of the member tables in grouping order.
func (g *TableGroup) TableIDs() []kernel.UUID {
	return append([]kernel.UUID(nil), g.tableIDs...)
}

// Ungroup detaches the given member tables. Every member must be passed and
// every passed table must be a member; otherwise nothing is changed.
func (g *TableGroup) Ungroup(tables []*OrderTable) error {
	if len(tables) != len(g.tableIDs) {
		return ErrTableNotInGroup
	}
	for _, t := range tables {
		if err := t.Validate(); err != nil {
			return err
		}
		if !g.contains(t) {
			return fmt.Errorf("order table %s: %w", t.ID(), ErrTableNotInGroup)
		}
	}

	for _, t := range tables {
		t.leaveGroup()
	}
	g.tableIDs = nil
	return nil
}

func (g *TableGroup) contains(t *OrderTable) bool {
	groupID := t.TableGroupID()
	if groupID == nil || !groupID.IsEqual(g.id) {
		return false
	}
	for _, id := range g.tableIDs {
		if id.IsEqual(t.ID()) {
			return true
		}
	}
	return false
}

func countDistinct(tables []*OrderTable) int {
	seen := make(map[kernel.UUID]struct{}, len(tables))
	for _, t := range tables {
		if t == nil {
			continue
		}
		seen[t.ID()] = struct{}{}
	}
	return len(seen)
}
