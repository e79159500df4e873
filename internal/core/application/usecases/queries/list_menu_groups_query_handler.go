package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListMenuGroupsQueryHandler struct {
	db *gorm.DB
}

func NewListMenuGroupsQueryHandler(db *gorm.DB) ListMenuGroupsQueryHandler {
	return ListMenuGroupsQueryHandler{db: db}
}

func (h ListMenuGroupsQueryHandler) Handle(
	ctx context.Context,
	query ListMenuGroupsQuery,
) ([]ListMenuGroupsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name
		FROM menu_groups
		ORDER BY name, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	groups := make([]ListMenuGroupsQueryResponse, 0)
	for rows.Next() {
		var (
			id uuid.UUID
			g  ListMenuGroupsQueryResponse
		)
		if err = rows.Scan(&id, &g.Name); err != nil {
			return nil, err
		}
		if g.ID, err = toUUID(id); err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return groups, nil
}
