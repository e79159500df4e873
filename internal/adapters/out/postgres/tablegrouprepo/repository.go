package tablegrouprepo

import (
	"context"

	"kitchenpos/internal/adapters/out/postgres/pgerr"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/table"
	"kitchenpos/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const orderTablesTable = "order_tables"

// GormTableGroupRepository implements ports.TableGroupRepository using GORM.
type GormTableGroupRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormTableGroupRepository(db *gorm.DB, tracker aggregateTracker) *GormTableGroupRepository {
	return &GormTableGroupRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormTableGroupRepository) Add(ctx context.Context, aggregate *table.TableGroup) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate(err, "tableGroupId", aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormTableGroupRepository) Get(ctx context.Context, id kernel.UUID) (*table.TableGroup, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TableGroupDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, pgerr.Translate(err, "tableGroupId", id)
	}

	var memberIDs []uuid.UUID
	err := r.db.WithContext(ctx).
		Table(orderTablesTable).
		Where("table_group_id = ?", dto.ID).
		Order("id").
		Pluck("id", &memberIDs).Error
	if err != nil {
		return nil, err
	}

	return toDomain(dto, memberIDs)
}

func (r *GormTableGroupRepository) Remove(ctx context.Context, aggregate *table.TableGroup) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&TableGroupDTO{}, "id = ?", aggregate.ID().Bytes())
	if result.Error != nil {
		return pgerr.Translate(result.Error, "tableGroupId", aggregate.ID())
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("tableGroupId", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}
