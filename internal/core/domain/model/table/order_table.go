package table

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"
)

var (
	ErrOrderTableIsNotConstructed = errors.New("OrderTable must be created via NewOrderTable or RestoreOrderTable constructor")

	// ErrTableIsGrouped is returned when a grouped table is changed on its own or grouped again.
	ErrTableIsGrouped = errs.NewPreconditionFailedError("order table belongs to a table group")
	// ErrTableIsEmpty is returned when guests are seated at an empty table.
	ErrTableIsEmpty = errs.NewPreconditionFailedError("order table is empty")
	// ErrTableIsNotEmpty is returned when an occupied table is grouped.
	ErrTableIsNotEmpty = errs.NewPreconditionFailedError("order table is not empty")
	// ErrTableHasActiveOrders is returned when a table with uncompleted orders would be freed.
	ErrTableHasActiveOrders = errs.NewPreconditionFailedError("order table has orders that are not completed")
	// ErrEmptyTableWithGuests is returned when a table is created empty but with guests.
	ErrEmptyTableWithGuests = errs.NewValueIsInvalidErrorWithCause(
		"numberOfGuests", errors.New("an empty table cannot have guests"))
)

// OrderTable is a physical table in the restaurant.
//
// Business rules:
//   - An empty table seats no guests; emptying a table resets its guests to 0
//   - Guests cannot be seated at an empty table
//   - A table in a group cannot be emptied or occupied on its own
//   - A table cannot be freed while it has an uncompleted order; that rule is
//     owned by the order side and checked by the caller before ChangeEmpty
//
// The group a table belongs to is held as an identifier, never as a pointer.
type OrderTable struct {
	id             kernel.UUID
	numberOfGuests NumberOfGuests
	empty          bool
	tableGroupID   *kernel.UUID

	guard guard.ConstructorGuard
}

// NewOrderTable creates an ungrouped table.
func NewOrderTable(id kernel.UUID, numberOfGuests int, empty bool) (*OrderTable, error) {
	return RestoreOrderTable(id, numberOfGuests, empty, nil)
}

// RestoreOrderTable rebuilds a table loaded from storage, possibly grouped.
func RestoreOrderTable(id kernel.UUID, numberOfGuests int, empty bool, tableGroupID *kernel.UUID) (*OrderTable, error) {
	t := &OrderTable{
		empty: empty,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setID(id),
		t.setNumberOfGuests(numberOfGuests),
		t.setTableGroupID(tableGroupID),
	); err != nil {
		return nil, err
	}

	if t.empty && t.numberOfGuests > 0 {
		return nil, ErrEmptyTableWithGuests
	}

	return t, nil
}

func (t *OrderTable) Validate() error {
	if t == nil {
		return ErrOrderTableIsNotConstructed
	}
	return t.guard.Validate(ErrOrderTableIsNotConstructed)
}

func (t *OrderTable) IsEqual(other *OrderTable) bool {
	return other != nil && t.id.IsEqual(other.id)
}

func (t *OrderTable) ID() kernel.UUID                { return t.id }
func (t *OrderTable) NumberOfGuests() NumberOfGuests { return t.numberOfGuests }
func (t *OrderTable) IsEmpty() bool                  { return t.empty }
func (t *OrderTable) IsGrouped() bool                { return t.tableGroupID != nil }

// TableGroupID returns the group the table belongs to, or nil.
func (t *OrderTable) TableGroupID() *kernel.UUID {
	if t.tableGroupID == nil {
		return nil
	}
	id := *t.tableGroupID
	return &id
}

// ValidateChangeEmpty checks the table-local preconditions of ChangeEmpty.
func (t *OrderTable) ValidateChangeEmpty() error {
	if t.IsGrouped() {
		return ErrTableIsGrouped
	}
	return nil
}

// ChangeEmpty sets the empty flag. Emptying the table sends its guests away.
// The caller must have confirmed that every order on the table is completed.
func (t *OrderTable) ChangeEmpty(empty bool) error {
	if err := t.ValidateChangeEmpty(); err != nil {
		return err
	}

	t.empty = empty
	if empty {
		t.numberOfGuests = 0
	}
	return nil
}

// ChangeNumberOfGuests seats numberOfGuests at an occupied table.
func (t *OrderTable) ChangeNumberOfGuests(numberOfGuests NumberOfGuests) error {
	if numberOfGuests < 0 {
		return errs.NewValueIsInvalidError("numberOfGuests")
	}
	if t.empty {
		return ErrTableIsEmpty
	}

	t.numberOfGuests = numberOfGuests
	return nil
}

func (t *OrderTable) validateCanJoinGroup() error {
	if t.IsGrouped() {
		return ErrTableIsGrouped
	}
	if !t.empty {
		return ErrTableIsNotEmpty
	}
	return nil
}

// joinGroup marks the table as part of the group and as occupied.
func (t *OrderTable) joinGroup(groupID kernel.UUID) {
	id := groupID
	t.tableGroupID = &id
	t.empty = false
}

// leaveGroup detaches the table. The table stays occupied.
func (t *OrderTable) leaveGroup() {
	t.tableGroupID = nil
	t.empty = false
}

func (t *OrderTable) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *OrderTable) setNumberOfGuests(count int) error {
	n, err := NewNumberOfGuests(count)
	if err != nil {
		return err
	}
	t.numberOfGuests = n
	return nil
}

func (t *OrderTable) setTableGroupID(tableGroupID *kernel.UUID) error {
	if tableGroupID == nil {
		return nil
	}
	if err := tableGroupID.Validate(); err != nil {
		return err
	}
	id := *tableGroupID
	t.tableGroupID = &id
	return nil
}
