// Package tablerepo persists order tables.
package tablerepo

import (
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/table"

	"github.com/google/uuid"
)

type OrderTableDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	NumberOfGuests int        `gorm:"not null;default:0"`
	Empty          bool       `gorm:"not null"`
	TableGroupID   *uuid.UUID `gorm:"type:uuid;index"`
}

func (OrderTableDTO) TableName() string {
	return "order_tables"
}

func fromDomain(t *table.OrderTable) OrderTableDTO {
	dto := OrderTableDTO{
		ID:             t.ID().Bytes(),
		NumberOfGuests: t.NumberOfGuests().Int(),
		Empty:          t.IsEmpty(),
	}

	if groupID := t.TableGroupID(); groupID != nil {
		raw := groupID.Bytes()
		dto.TableGroupID = &raw
	}

	return dto
}

func toDomain(dto OrderTableDTO) (*table.OrderTable, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var groupID *kernel.UUID
	if dto.TableGroupID != nil {
		gid, err := kernel.UUIDFromBytes(dto.TableGroupID[:])
		if err != nil {
			return nil, err
		}
		groupID = &gid
	}

	return table.RestoreOrderTable(id, dto.NumberOfGuests, dto.Empty, groupID)
}

func toDomainList(dtos []OrderTableDTO) ([]*table.OrderTable, error) {
	tables := make([]*table.OrderTable, 0, len(dtos))
	for _, dto := range dtos {
		t, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	return tables, nil
}
