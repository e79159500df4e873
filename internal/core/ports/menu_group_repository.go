package ports

import (
	"context"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menugroup"
)

type MenuGroupRepository interface {
	Add(ctx context.Context, aggregate *menugroup.MenuGroup) error
	Get(ctx context.Context, id kernel.UUID) (*menugroup.MenuGroup, error)
}
