package tablerepo

import (
	"context"

	"kitchenpos/internal/adapters/out/postgres/pgerr"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/table"
	"kitchenpos/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GormTableRepository implements ports.TableRepository using GORM.
type GormTableRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormTableRepository(db *gorm.DB, tracker aggregateTracker) *GormTableRepository {
	return &GormTableRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormTableRepository) Add(ctx context.Context, aggregate *table.OrderTable) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate(err, "orderTableId", aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes every mutable column, zero values included, so an emptied table
// or a detached group id is persisted.
func (r *GormTableRepository) Update(ctx context.Context, aggregate *table.OrderTable) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderTableDTO{}).
		Where("id = ?", dto.ID).
		Select("number_of_guests", "empty", "table_group_id").
		Updates(&dto)
	if result.Error != nil {
		return pgerr.Translate(result.Error, "orderTableId", aggregate.ID())
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderTableId", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormTableRepository) Get(ctx context.Context, id kernel.UUID) (*table.OrderTable, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderTableDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, pgerr.Translate(err, "orderTableId", id)
	}

	return toDomain(dto)
}

func (r *GormTableRepository) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*table.OrderTable, error) {
	keys := make([]string, 0, len(ids))
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		if _, ok := seen[id.Bytes()]; ok {
			continue
		}
		seen[id.Bytes()] = struct{}{}
		keys = append(keys, id.String())
	}

	if len(keys) == 0 {
		return []*table.OrderTable{}, nil
	}

	var dtos []OrderTableDTO
	err := r.db.WithContext(ctx).
		Where("id = ANY(?::uuid[])", pq.Array(keys)).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]OrderTableDTO, len(dtos))
	for _, dto := range dtos {
		byID[dto.ID] = dto
	}

	ordered := make([]OrderTableDTO, 0, len(keys))
	for _, id := range ids {
		dto, ok := byID[id.Bytes()]
		if !ok {
			return nil, errs.NewObjectNotFoundError("orderTableId", id.String())
		}
		if _, pending := seen[id.Bytes()]; !pending {
			continue
		}
		delete(seen, id.Bytes())
		ordered = append(ordered, dto)
	}

	return toDomainList(ordered)
}

func (r *GormTableRepository) GetAllByGroupID(ctx context.Context, groupID kernel.UUID) ([]*table.OrderTable, error) {
	if err := groupID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderTableDTO
	err := r.db.WithContext(ctx).
		Where("table_group_id = ?", groupID.Bytes()).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}
