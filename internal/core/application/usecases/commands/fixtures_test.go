package commands_test

import (
	"testing"
	"time"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"
	"kitchenpos/internal/core/domain/model/menugroup"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/core/domain/model/product"
	"kitchenpos/internal/core/domain/model/table"

	"github.com/stretchr/testify/require"
)

func mustPrice(t *testing.T, amount string) kernel.Price {
	t.Helper()
	p, err := kernel.PriceFromString(amount)
	require.NoError(t, err)
	return p
}

func newProduct(t *testing.T, name, price string) *product.Product {
	t.Helper()
	p, err := product.NewProduct(kernel.NewUUID(), name, mustPrice(t, price))
	require.NoError(t, err)
	return p
}

func newMenuGroup(t *testing.T, name string) *menugroup.MenuGroup {
	t.Helper()
	g, err := menugroup.NewMenuGroup(kernel.NewUUID(), name)
	require.NoError(t, err)
	return g
}

// newMenu builds a menu of one unit of p, sold at p's price.
func newMenu(t *testing.T, group *menugroup.MenuGroup, p *product.Product) *menu.Menu {
	t.Helper()
	mp, err := menu.NewMenuProduct(kernel.NewUUID(), p.ID(), p.Price(), 1)
	require.NoError(t, err)
	m, err := menu.NewMenu(kernel.NewUUID(), p.Name(), p.Price(), group.ID(), []*menu.MenuProduct{mp})
	require.NoError(t, err)
	return m
}

func newTable(t *testing.T, guests int, empty bool) *table.OrderTable {
	t.Helper()
	ot, err := table.NewOrderTable(kernel.NewUUID(), guests, empty)
	require.NoError(t, err)
	return ot
}

func groupedTable(t *testing.T, groupID kernel.UUID) *table.OrderTable {
	t.Helper()
	ot, err := table.RestoreOrderTable(kernel.NewUUID(), 0, false, &groupID)
	require.NoError(t, err)
	return ot
}

func storedOrder(t *testing.T, tableID kernel.UUID, status order.Status) *order.Order {
	t.Helper()
	snapshot, err := order.NewOrderMenu("fried chicken", mustPrice(t, "16000"), "chicken")
	require.NoError(t, err)
	li, err := order.NewOrderLineItem(kernel.NewUUID(), kernel.NewUUID(), snapshot, 1)
	require.NoError(t, err)
	o, err := order.RestoreOrder(kernel.NewUUID(), tableID, status, time.Now(), []*order.OrderLineItem{li})
	require.NoError(t, err)
	return o
}
