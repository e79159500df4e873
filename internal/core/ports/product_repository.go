package ports

import (
	"context"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for products.
type ProductRepository interface {
	// Add persists a new product.
	Add(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product by identifier. Returns an errs.ErrObjectNotFound
	// error when there is none.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)
}
