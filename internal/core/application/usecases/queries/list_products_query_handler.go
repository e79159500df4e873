package queries

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ListProductsQueryHandler returns every product ordered by name.
type ListProductsQueryHandler struct {
	db *gorm.DB
}

func NewListProductsQueryHandler(db *gorm.DB) ListProductsQueryHandler {
	return ListProductsQueryHandler{db: db}
}

func (h ListProductsQueryHandler) Handle(
	ctx context.Context,
	query ListProductsQuery,
) ([]ListProductsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, price
		FROM products
		ORDER BY name, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]ListProductsQueryResponse, 0)
	for rows.Next() {
		var (
			id     uuid.UUID
			amount decimal.Decimal
			p      ListProductsQueryResponse
		)
		if err = rows.Scan(&id, &p.Name, &amount); err != nil {
			return nil, err
		}

		if p.ID, err = toUUID(id); err != nil {
			return nil, err
		}
		if p.Price, err = toPrice(amount); err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
