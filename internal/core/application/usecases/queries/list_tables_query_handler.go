package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListTablesQueryHandler struct {
	db *gorm.DB
}

func NewListTablesQueryHandler(db *gorm.DB) ListTablesQueryHandler {
	return ListTablesQueryHandler{db: db}
}

func (h ListTablesQueryHandler) Handle(
	ctx context.Context,
	query ListTablesQuery,
) ([]ListTablesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, number_of_guests, empty, table_group_id
		FROM order_tables
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tables := make([]ListTablesQueryResponse, 0)
	for rows.Next() {
		var (
			id      uuid.UUID
			groupID uuid.NullUUID
			t       ListTablesQueryResponse
		)
		if err = rows.Scan(&id, &t.NumberOfGuests, &t.Empty, &groupID); err != nil {
			return nil, err
		}

		if t.ID, err = toUUID(id); err != nil {
			return nil, err
		}
		if groupID.Valid {
			gid, gidErr := toUUID(groupID.UUID)
			if gidErr != nil {
				return nil, gidErr
			}
			t.TableGroupID = &gid
		}
		tables = append(tables, t)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tables, nil
}
