// Package menurepo persists menus together with their menu products.
package menurepo

import (
	"errors"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type MenuDTO struct {
	ID           uuid.UUID        `gorm:"type:uuid;primaryKey"`
	Name         string           `gorm:"type:varchar(255);not null"`
	Price        decimal.Decimal  `gorm:"type:numeric(19,2);not null"`
	MenuGroupID  uuid.UUID        `gorm:"type:uuid;not null;index"`
	MenuProducts []MenuProductDTO `gorm:"foreignKey:MenuID;constraint:OnDelete:CASCADE"`
}

func (MenuDTO) TableName() string {
	return "menus"
}

type MenuProductDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	MenuID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID    uuid.UUID       `gorm:"type:uuid;not null"`
	ProductPrice decimal.Decimal `gorm:"type:numeric(19,2);not null"`
	Quantity     int64           `gorm:"not null"`
}

func (MenuProductDTO) TableName() string {
	return "menu_products"
}

func fromDomain(m *menu.Menu) MenuDTO {
	menuProducts := m.MenuProducts()
	dto := MenuDTO{
		ID:           m.ID().Bytes(),
		Name:         m.Name(),
		Price:        m.Price().Amount(),
		MenuGroupID:  m.MenuGroupID().Bytes(),
		MenuProducts: make([]MenuProductDTO, 0, len(menuProducts)),
	}

	for _, mp := range menuProducts {
		dto.MenuProducts = append(dto.MenuProducts, MenuProductDTO{
			ID:           mp.ID().Bytes(),
			MenuID:       dto.ID,
			ProductID:    mp.ProductID().Bytes(),
			ProductPrice: mp.ProductPrice().Amount(),
			Quantity:     mp.Quantity(),
		})
	}

	return dto
}

func toDomain(dto MenuDTO) (*menu.Menu, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	groupID, err := kernel.UUIDFromBytes(dto.MenuGroupID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewPrice(dto.Price)
	if err != nil {
		return nil, err
	}

	menuProducts := make([]*menu.MenuProduct, 0, len(dto.MenuProducts))
	for _, mpDTO := range dto.MenuProducts {
		mp, err := menuProductToDomain(mpDTO)
		if err != nil {
			return nil, err
		}
		menuProducts = append(menuProducts, mp)
	}

	return menu.RestoreMenu(id, dto.Name, price, groupID, menuProducts)
}

func menuProductToDomain(dto MenuProductDTO) (*menu.MenuProduct, error) {
	id, idErr := kernel.UUIDFromBytes(dto.ID[:])
	menuID, menuErr := kernel.UUIDFromBytes(dto.MenuID[:])
	productID, productErr := kernel.UUIDFromBytes(dto.ProductID[:])
	price, priceErr := kernel.NewPrice(dto.ProductPrice)
	if err := errors.Join(idErr, menuErr, productErr, priceErr); err != nil {
		return nil, err
	}

	return menu.RestoreMenuProduct(id, menuID, productID, price, dto.Quantity)
}
