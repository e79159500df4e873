// Package menugrouprepo persists menu groups.
package menugrouprepo

import (
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menugroup"

	"github.com/google/uuid"
)

type MenuGroupDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"type:varchar(255);not null"`
}

func (MenuGroupDTO) TableName() string {
	return "menu_groups"
}

func fromDomain(g *menugroup.MenuGroup) MenuGroupDTO {
	return MenuGroupDTO{
		ID:   g.ID().Bytes(),
		Name: g.Name(),
	}
}

func toDomain(dto MenuGroupDTO) (*menugroup.MenuGroup, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return menugroup.RestoreMenuGroup(id, dto.Name)
}
