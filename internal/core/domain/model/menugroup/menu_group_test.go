package menugroup_test

import (
	"testing"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menugroup"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMenuGroup(t *testing.T) {
	t.Run("should create menu group", func(t *testing.T) {
		id := kernel.NewUUID()

		g, err := menugroup.NewMenuGroup(id, "two-chicken sets")

		require.NoError(t, err)
		require.NoError(t, g.Validate())
		assert.True(t, g.ID().IsEqual(id))
		assert.Equal(t, "two-chicken sets", g.Name())
	})

	t.Run("should require name", func(t *testing.T) {
		g, err := menugroup.NewMenuGroup(kernel.NewUUID(), "")

		assert.Nil(t, g)
		require.ErrorIs(t, err, menugroup.ErrNameIsRequired)
	})

	t.Run("should require id", func(t *testing.T) {
		_, err := menugroup.NewMenuGroup(kernel.UUID{}, "sides")

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestMenuGroup_Validate(t *testing.T) {
	var zero menugroup.MenuGroup

	assert.Equal(t, menugroup.ErrMenuGroupIsNotConstructed, zero.Validate())
}
