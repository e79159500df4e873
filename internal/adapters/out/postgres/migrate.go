package postgres

import (
	"kitchenpos/internal/adapters/out/postgres/menugrouprepo"
	"kitchenpos/internal/adapters/out/postgres/menurepo"
	"kitchenpos/internal/adapters/out/postgres/orderrepo"
	"kitchenpos/internal/adapters/out/postgres/productrepo"
	"kitchenpos/internal/adapters/out/postgres/tablegrouprepo"
	"kitchenpos/internal/adapters/out/postgres/tablerepo"

	"gorm.io/gorm"
)

// Tables lists every table owned by the repositories, children after parents.
var Tables = []string{
	"products",
	"menu_groups",
	"menus",
	"menu_products",
	"table_groups",
	"order_tables",
	"orders",
	"order_line_items",
	"order_menu_products",
}

// Migrate creates or updates the schema of every repository.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&productrepo.ProductDTO{},
		&menugrouprepo.MenuGroupDTO{},
		&menurepo.MenuDTO{},
		&menurepo.MenuProductDTO{},
		&tablegrouprepo.TableGroupDTO{},
		&tablerepo.OrderTableDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineItemDTO{},
		&orderrepo.OrderMenuProductDTO{},
	)
}
