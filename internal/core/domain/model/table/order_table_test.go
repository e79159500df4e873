package table_test

import (
	"testing"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/table"
	"kitchenpos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTable(t *testing.T, guests int, empty bool) *table.OrderTable {
	t.Helper()
	ot, err := table.NewOrderTable(kernel.NewUUID(), guests, empty)
	require.NoError(t, err)
	return ot
}

func TestNewOrderTable(t *testing.T) {
	t.Run("should create empty table", func(t *testing.T) {
		ot := newTable(t, 0, true)

		require.NoError(t, ot.Validate())
		assert.True(t, ot.IsEmpty())
		assert.False(t, ot.IsGrouped())
		assert.Nil(t, ot.TableGroupID())
		assert.Equal(t, 0, ot.NumberOfGuests().Int())
	})

	t.Run("should create occupied table with guests", func(t *testing.T) {
		ot := newTable(t, 4, false)

		assert.False(t, ot.IsEmpty())
		assert.Equal(t, 4, ot.NumberOfGuests().Int())
	})

	t.Run("should reject negative guests", func(t *testing.T) {
		_, err := table.NewOrderTable(kernel.NewUUID(), -1, false)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject empty table with guests", func(t *testing.T) {
		_, err := table.NewOrderTable(kernel.NewUUID(), 2, true)

		require.ErrorIs(t, err, table.ErrEmptyTableWithGuests)
	})

	t.Run("should restore grouped table", func(t *testing.T) {
		groupID := kernel.NewUUID()

		ot, err := table.RestoreOrderTable(kernel.NewUUID(), 3, false, &groupID)

		require.NoError(t, err)
		assert.True(t, ot.IsGrouped())
		assert.True(t, ot.TableGroupID().IsEqual(groupID))
	})
}

func TestOrderTable_Validate(t *testing.T) {
	var nilTable *table.OrderTable
	var zero table.OrderTable

	assert.Equal(t, table.ErrOrderTableIsNotConstructed, nilTable.Validate())
	assert.Equal(t, table.ErrOrderTableIsNotConstructed, zero.Validate())
}

func TestOrderTable_ChangeEmpty(t *testing.T) {
	t.Run("emptying resets guests", func(t *testing.T) {
		ot := newTable(t, 4, false)

		require.NoError(t, ot.ChangeEmpty(true))

		assert.True(t, ot.IsEmpty())
		assert.Equal(t, 0, ot.NumberOfGuests().Int())
	})

	t.Run("occupying keeps guests at zero", func(t *testing.T) {
		ot := newTable(t, 0, true)

		require.NoError(t, ot.ChangeEmpty(false))

		assert.False(t, ot.IsEmpty())
		assert.Equal(t, 0, ot.NumberOfGuests().Int())
	})

	t.Run("grouped table cannot change on its own", func(t *testing.T) {
		groupID := kernel.NewUUID()
		ot, err := table.RestoreOrderTable(kernel.NewUUID(), 0, false, &groupID)
		require.NoError(t, err)

		err = ot.ChangeEmpty(true)

		require.ErrorIs(t, err, table.ErrTableIsGrouped)
		require.ErrorIs(t, err, errs.ErrPreconditionFailed)
		assert.False(t, ot.IsEmpty())
	})
}

func TestOrderTable_ChangeNumberOfGuests(t *testing.T) {
	t.Run("should seat guests at occupied table", func(t *testing.T) {
		ot := newTable(t, 0, false)
		guests, err := table.NewNumberOfGuests(5)
		require.NoError(t, err)

		require.NoError(t, ot.ChangeNumberOfGuests(guests))

		assert.Equal(t, 5, ot.NumberOfGuests().Int())
	})

	t.Run("should reject empty table", func(t *testing.T) {
		ot := newTable(t, 0, true)

		err := ot.ChangeNumberOfGuests(2)

		require.ErrorIs(t, err, table.ErrTableIsEmpty)
		assert.Equal(t, 0, ot.NumberOfGuests().Int())
	})

	t.Run("negative count is an invalid argument", func(t *testing.T) {
		_, err := table.NewNumberOfGuests(-3)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
