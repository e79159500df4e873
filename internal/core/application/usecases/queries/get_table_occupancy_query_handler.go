package queries

import (
	"context"

	"kitchenpos/internal/core/domain/model/order"

	"gorm.io/gorm"
)

type GetTableOccupancyQueryHandler struct {
	db *gorm.DB
}

func NewGetTableOccupancyQueryHandler(db *gorm.DB) GetTableOccupancyQueryHandler {
	return GetTableOccupancyQueryHandler{db: db}
}

func (h GetTableOccupancyQueryHandler) Handle(
	ctx context.Context,
	query GetTableOccupancyQuery,
) (GetTableOccupancyQueryResponse, error) {
	var res GetTableOccupancyQueryResponse
	if err := query.Validate(); err != nil {
		return res, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) FILTER (WHERE empty),
			COUNT(*) FILTER (WHERE NOT empty),
			COUNT(*) FILTER (WHERE table_group_id IS NOT NULL),
			(SELECT COUNT(*) FROM orders WHERE order_status <> ?)
		FROM order_tables
	`, order.Completion.String()).Row()

	err := row.Scan(&res.EmptyTables, &res.OccupiedTables, &res.GroupedTables, &res.ActiveOrders)
	return res, err
}
