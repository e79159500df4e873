package order_test

import (
	"testing"
	"time"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lineItem(t *testing.T, quantity int64) *order.OrderLineItem {
	t.Helper()
	price, err := kernel.PriceFromString("16000")
	require.NoError(t, err)
	snapshot, err := order.NewOrderMenu("fried chicken", price, "chicken")
	require.NoError(t, err)
	li, err := order.NewOrderLineItem(kernel.NewUUID(), kernel.NewUUID(), snapshot, quantity)
	require.NoError(t, err)
	return li
}

func placedOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), time.Now(), []*order.OrderLineItem{lineItem(t, 1)})
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	orderID, tableID := kernel.NewUUID(), kernel.NewUUID()
	now := time.Now()

	t.Run("should start cooking and record placement", func(t *testing.T) {
		li := lineItem(t, 2)

		o, err := order.NewOrder(orderID, tableID, now, []*order.OrderLineItem{li})

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.Cooking, o.Status())
		assert.True(t, o.TableID().IsEqual(tableID))
		assert.Equal(t, now, o.OrderedAt())
		require.Len(t, o.LineItems(), 1)
		assert.True(t, o.LineItems()[0].OrderID().IsEqual(orderID))

		events := o.PullEvents()
		require.Len(t, events, 1)
		assert.Equal(t, order.PlacedEventName, events[0].EventName())
		assert.True(t, events[0].AggregateID().IsEqual(orderID))
		assert.Equal(t, "1", events[0].Attributes()["lineItemCount"])
		assert.Empty(t, o.PullEvents())
	})

	t.Run("should reject empty line items", func(t *testing.T) {
		o, err := order.NewOrder(orderID, tableID, now, nil)

		assert.Nil(t, o)
		require.ErrorIs(t, err, order.ErrOrderLineItemsEmpty)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should join every validation error", func(t *testing.T) {
		var missing kernel.UUID

		_, err := order.NewOrder(missing, missing, time.Time{}, nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "UUID")
		assert.Contains(t, err.Error(), "orderedTime")
		assert.Contains(t, err.Error(), "orderLineItems")
	})
}

func TestNewOrderLineItem(t *testing.T) {
	price, err := kernel.PriceFromString("9000")
	require.NoError(t, err)
	snapshot, err := order.NewOrderMenu("noodles", price, "noodle")
	require.NoError(t, err)

	t.Run("should keep the menu snapshot", func(t *testing.T) {
		li, err := order.NewOrderLineItem(kernel.NewUUID(), kernel.NewUUID(), snapshot, 3)

		require.NoError(t, err)
		assert.Equal(t, "noodles", li.Menu().Name())
		assert.Equal(t, "noodle", li.Menu().MenuGroupName())
		assert.True(t, li.Menu().Price().IsEqual(price))
		assert.Equal(t, int64(3), li.Quantity())
	})

	t.Run("should reject quantity below one", func(t *testing.T) {
		for _, quantity := range []int64{0, -1} {
			_, err := order.NewOrderLineItem(kernel.NewUUID(), kernel.NewUUID(), snapshot, quantity)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("should require a menu name", func(t *testing.T) {
		_, err := order.NewOrderMenu("", price, "noodle")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestOrderMenu_Products(t *testing.T) {
	noodlePrice, err := kernel.PriceFromString("7000")
	require.NoError(t, err)
	dumplingPrice, err := kernel.PriceFromString("2500.50")
	require.NoError(t, err)
	menuPrice, err := kernel.PriceFromString("9000")
	require.NoError(t, err)

	noodles, err := order.NewOrderMenuProduct("noodles", noodlePrice, 1)
	require.NoError(t, err)
	dumplings, err := order.NewOrderMenuProduct("dumplings", dumplingPrice, 2)
	require.NoError(t, err)

	t.Run("should keep products in menu order", func(t *testing.T) {
		products := []order.OrderMenuProduct{noodles, dumplings}
		snapshot, err := order.NewOrderMenu("noodle set", menuPrice, "noodle", products...)
		require.NoError(t, err)

		products[0] = dumplings

		got := snapshot.Products()
		require.Len(t, got, 2)
		assert.Equal(t, "noodles", got[0].ProductName())
		assert.True(t, got[0].Price().IsEqual(noodlePrice))
		assert.Equal(t, int64(1), got[0].Quantity())
		assert.Equal(t, "dumplings", got[1].ProductName())
		assert.Equal(t, "2500.5", got[1].Price().String())
		assert.Equal(t, int64(2), got[1].Quantity())
	})

	t.Run("a menu without products has an empty snapshot", func(t *testing.T) {
		snapshot, err := order.NewOrderMenu("noodle set", menuPrice, "noodle")

		require.NoError(t, err)
		assert.Empty(t, snapshot.Products())
	})

	t.Run("should require a product name", func(t *testing.T) {
		_, err := order.NewOrderMenuProduct("", noodlePrice, 1)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject a negative quantity", func(t *testing.T) {
		_, err := order.NewOrderMenuProduct("noodles", noodlePrice, -1)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject an unconstructed price", func(t *testing.T) {
		_, err := order.NewOrderMenuProduct("noodles", kernel.Price{}, 1)

		require.ErrorIs(t, err, kernel.ErrPriceIsNotConstructed)
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	t.Run("should walk the lifecycle", func(t *testing.T) {
		o := placedOrder(t)
		o.PullEvents()

		require.NoError(t, o.ChangeStatus(order.Meal, time.Now()))
		require.NoError(t, o.ChangeStatus(order.Completion, time.Now()))

		assert.Equal(t, order.Completion, o.Status())
		events := o.PullEvents()
		require.Len(t, events, 2)
		changed, ok := events[1].(order.StatusChangedEvent)
		require.True(t, ok)
		assert.Equal(t, order.Meal, changed.From())
		assert.Equal(t, order.Completion, changed.To())
	})

	t.Run("meal may go back to cooking", func(t *testing.T) {
		o := placedOrder(t)
		require.NoError(t, o.ChangeStatus(order.Meal, time.Now()))

		require.NoError(t, o.ChangeStatus(order.Cooking, time.Now()))

		assert.Equal(t, order.Cooking, o.Status())
	})

	t.Run("completed order refuses any change", func(t *testing.T) {
		o := placedOrder(t)
		require.NoError(t, o.ChangeStatus(order.Completion, time.Now()))
		o.PullEvents()

		err := o.ChangeStatus(order.Meal, time.Now())

		require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
		assert.Equal(t, order.Completion, o.Status())
		assert.Empty(t, o.PullEvents())
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should not record events", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), order.Meal, time.Now(),
			[]*order.OrderLineItem{lineItem(t, 1)})

		require.NoError(t, err)
		assert.Equal(t, order.Meal, o.Status())
		assert.Empty(t, o.PullEvents())
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), order.Unknown, time.Now(),
			[]*order.OrderLineItem{lineItem(t, 1)})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_Validate(t *testing.T) {
	var nilOrder *order.Order
	var zero order.Order

	assert.Equal(t, order.ErrOrderIsNotConstructed, nilOrder.Validate())
	assert.Equal(t, order.ErrOrderIsNotConstructed, zero.Validate())
}
