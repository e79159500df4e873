package order_test

import (
	"testing"
	"time"

	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrders_ValidateChangeEmpty(t *testing.T) {
	completed := func(t *testing.T) *order.Order {
		o := placedOrder(t)
		require.NoError(t, o.ChangeStatus(order.Completion, time.Now()))
		return o
	}

	t.Run("no orders", func(t *testing.T) {
		orders := order.NewOrders(nil)

		assert.True(t, orders.AllCompleted())
		require.NoError(t, orders.ValidateChangeEmpty())
	})

	t.Run("all completed", func(t *testing.T) {
		orders := order.NewOrders([]*order.Order{completed(t), completed(t)})

		assert.Equal(t, 2, orders.Len())
		require.NoError(t, orders.ValidateChangeEmpty())
	})

	t.Run("one still cooking", func(t *testing.T) {
		orders := order.NewOrders([]*order.Order{completed(t), placedOrder(t)})

		assert.False(t, orders.AllCompleted())
		err := orders.ValidateChangeEmpty()
		require.ErrorIs(t, err, order.ErrOrdersNotCompleted)
		require.ErrorIs(t, err, errs.ErrPreconditionFailed)
	})

	t.Run("one in meal", func(t *testing.T) {
		meal := placedOrder(t)
		require.NoError(t, meal.ChangeStatus(order.Meal, time.Now()))

		require.Error(t, order.NewOrders([]*order.Order{meal}).ValidateChangeEmpty())
	})
}
