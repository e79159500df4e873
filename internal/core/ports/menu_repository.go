package ports

import (
	"context"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"
)

// MenuRepository defines the persistence contract for menus and their menu
// products. Menus are never updated once added.
type MenuRepository interface {
	// Add persists a new menu together with its menu products.
	Add(ctx context.Context, aggregate *menu.Menu) error

	// Get retrieves a menu with its menu products. Returns an
	// errs.ErrObjectNotFound error when there is none.
	Get(ctx context.Context, id kernel.UUID) (*menu.Menu, error)
}
