package queries

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ListMenusQueryHandler reads menus and their menu products with two statements
// and stitches them together in memory.
type ListMenusQueryHandler struct {
	db *gorm.DB
}

func NewListMenusQueryHandler(db *gorm.DB) ListMenusQueryHandler {
	return ListMenusQueryHandler{db: db}
}

func (h ListMenusQueryHandler) Handle(
	ctx context.Context,
	query ListMenusQuery,
) ([]ListMenusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	menus, index, err := h.menus(ctx)
	if err != nil {
		return nil, err
	}

	if err = h.attachMenuProducts(ctx, menus, index); err != nil {
		return nil, err
	}

	return menus, nil
}

func (h ListMenusQueryHandler) menus(ctx context.Context) ([]ListMenusQueryResponse, map[uuid.UUID]int, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, price, menu_group_id
		FROM menus
		ORDER BY name, id
	`).Rows()
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	menus := make([]ListMenusQueryResponse, 0)
	index := make(map[uuid.UUID]int)
	for rows.Next() {
		var (
			id, groupID uuid.UUID
			amount      decimal.Decimal
			m           ListMenusQueryResponse
		)
		if err = rows.Scan(&id, &m.Name, &amount, &groupID); err != nil {
			return nil, nil, err
		}

		var idErr, groupErr, priceErr error
		m.ID, idErr = toUUID(id)
		m.MenuGroupID, groupErr = toUUID(groupID)
		m.Price, priceErr = toPrice(amount)
		if err = errors.Join(idErr, groupErr, priceErr); err != nil {
			return nil, nil, err
		}

		m.MenuProducts = make([]MenuProductResponse, 0)
		index[id] = len(menus)
		menus = append(menus, m)
	}

	return menus, index, rows.Err()
}

func (h ListMenusQueryHandler) attachMenuProducts(
	ctx context.Context,
	menus []ListMenusQueryResponse,
	index map[uuid.UUID]int,
) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, menu_id, product_id, quantity
		FROM menu_products
		ORDER BY menu_id, id
	`).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id, menuID, productID uuid.UUID
			mp                    MenuProductResponse
		)
		if err = rows.Scan(&id, &menuID, &productID, &mp.Quantity); err != nil {
			return err
		}

		i, ok := index[menuID]
		if !ok {
			continue
		}

		var idErr, productErr error
		mp.ID, idErr = toUUID(id)
		mp.ProductID, productErr = toUUID(productID)
		if err = errors.Join(idErr, productErr); err != nil {
			return err
		}
		menus[i].MenuProducts = append(menus[i].MenuProducts, mp)
	}

	return rows.Err()
}
