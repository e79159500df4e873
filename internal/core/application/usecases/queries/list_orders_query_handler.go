package queries

import (
	"context"
	"errors"

	"kitchenpos/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler returns orders oldest first, line items in placement
// order and menu products in menu order.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) ([]ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, index, err := h.orders(ctx)
	if err != nil {
		return nil, err
	}

	lineItems, err := h.attachLineItems(ctx, orders, index)
	if err != nil {
		return nil, err
	}

	if err = h.attachMenuProducts(ctx, orders, lineItems); err != nil {
		return nil, err
	}

	return orders, nil
}

func (h ListOrdersQueryHandler) orders(ctx context.Context) ([]ListOrdersQueryResponse, map[uuid.UUID]int, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, order_table_id, order_status, ordered_time
		FROM orders
		ORDER BY ordered_time, id
	`).Rows()
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	orders := make([]ListOrdersQueryResponse, 0)
	index := make(map[uuid.UUID]int)
	for rows.Next() {
		var (
			id, tableID uuid.UUID
			status      string
			o           ListOrdersQueryResponse
		)
		if err = rows.Scan(&id, &tableID, &status, &o.OrderedTime); err != nil {
			return nil, nil, err
		}

		var idErr, tableErr, statusErr error
		o.ID, idErr = toUUID(id)
		o.OrderTableID, tableErr = toUUID(tableID)
		o.OrderStatus, statusErr = order.ParseStatus(status)
		if err = errors.Join(idErr, tableErr, statusErr); err != nil {
			return nil, nil, err
		}

		o.LineItems = make([]OrderLineItemResponse, 0)
		index[id] = len(orders)
		orders = append(orders, o)
	}

	return orders, index, rows.Err()
}

// lineItemPosition locates a line item as orders[order].LineItems[item].
type lineItemPosition struct {
	order, item int
}

func (h ListOrdersQueryHandler) attachLineItems(
	ctx context.Context,
	orders []ListOrdersQueryResponse,
	index map[uuid.UUID]int,
) (map[uuid.UUID]lineItemPosition, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, order_id, menu_id, menu_name, menu_price, menu_group_name, quantity
		FROM order_line_items
		ORDER BY order_id, seq
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	positions := make(map[uuid.UUID]lineItemPosition)

	for rows.Next() {
		var (
			id, orderID, menuID uuid.UUID
			amount              decimal.Decimal
			li                  OrderLineItemResponse
		)
		err = rows.Scan(&id, &orderID, &menuID, &li.MenuName, &amount, &li.MenuGroupName, &li.Quantity)
		if err != nil {
			return nil, err
		}

		i, ok := index[orderID]
		if !ok {
			continue
		}

		var idErr, menuErr, priceErr error
		li.ID, idErr = toUUID(id)
		li.MenuID, menuErr = toUUID(menuID)
		li.MenuPrice, priceErr = toPrice(amount)
		if err = errors.Join(idErr, menuErr, priceErr); err != nil {
			return nil, err
		}
		li.MenuProducts = make([]OrderMenuProductResponse, 0)
		positions[id] = lineItemPosition{order: i, item: len(orders[i].LineItems)}
		orders[i].LineItems = append(orders[i].LineItems, li)
	}

	return positions, rows.Err()
}

func (h ListOrdersQueryHandler) attachMenuProducts(
	ctx context.Context,
	orders []ListOrdersQueryResponse,
	positions map[uuid.UUID]lineItemPosition,
) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT line_item_id, product_name, price, quantity
		FROM order_menu_products
		ORDER BY line_item_id, seq
	`).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			lineItemID uuid.UUID
			amount     decimal.Decimal
			mp         OrderMenuProductResponse
		)
		if err = rows.Scan(&lineItemID, &mp.ProductName, &amount, &mp.Quantity); err != nil {
			return err
		}

		pos, ok := positions[lineItemID]
		if !ok {
			continue
		}

		if mp.Price, err = toPrice(amount); err != nil {
			return err
		}
		li := &orders[pos.order].LineItems[pos.item]
		li.MenuProducts = append(li.MenuProducts, mp)
	}

	return rows.Err()
}
