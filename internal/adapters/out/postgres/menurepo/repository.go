package menurepo

import (
	"context"

	"kitchenpos/internal/adapters/out/postgres/pgerr"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"

	"gorm.io/gorm"
)

// GormMenuRepository implements ports.MenuRepository using GORM. Reads go through
// an optional Cache; a nil cache disables caching.
type GormMenuRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
	cache   *Cache
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormMenuRepository(db *gorm.DB, tracker aggregateTracker, cache *Cache) *GormMenuRepository {
	return &GormMenuRepository{
		db:      db,
		tracker: tracker,
		cache:   cache,
	}
}

// Add inserts the menu and its menu products in one statement batch.
// The cache is not filled here because the surrounding transaction may still roll back.
func (r *GormMenuRepository) Add(ctx context.Context, aggregate *menu.Menu) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate(err, "menuId", aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormMenuRepository) Get(ctx context.Context, id kernel.UUID) (*menu.Menu, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	if dto, ok := r.cache.get(id.Bytes()); ok {
		return toDomain(dto)
	}

	var dto MenuDTO
	err := r.db.WithContext(ctx).
		Preload("MenuProducts").
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		return nil, pgerr.Translate(err, "menuId", id)
	}

	r.cache.put(dto)
	return toDomain(dto)
}
