// Package tablegrouprepo persists table groups. Membership lives on the
// order_tables rows and is read back when a group is loaded.
package tablegrouprepo

import (
	"time"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/table"

	"github.com/google/uuid"
)

type TableGroupDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"type:timestamptz;not null"`
}

func (TableGroupDTO) TableName() string {
	return "table_groups"
}

func fromDomain(g *table.TableGroup) TableGroupDTO {
	return TableGroupDTO{
		ID:        g.ID().Bytes(),
		CreatedAt: g.CreatedAt().UTC(),
	}
}

func toDomain(dto TableGroupDTO, memberIDs []uuid.UUID) (*table.TableGroup, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	tableIDs := make([]kernel.UUID, 0, len(memberIDs))
	for _, raw := range memberIDs {
		tableID, err := kernel.UUIDFromBytes(raw[:])
		if err != nil {
			return nil, err
		}
		tableIDs = append(tableIDs, tableID)
	}

	return table.RestoreTableGroup(id, dto.CreatedAt, tableIDs)
}
