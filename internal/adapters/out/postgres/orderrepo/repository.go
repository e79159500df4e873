package orderrepo

import (
	"context"

	"kitchenpos/internal/adapters/out/postgres/pgerr"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order, its line items and their menu product snapshots.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate(err, "orderId", aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes the order status only.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", aggregate.ID().Bytes()).
		Update("order_status", aggregate.Status().String())
	if result.Error != nil {
		return pgerr.Translate(result.Error, "orderId", aggregate.ID())
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderId", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.withLineItems(ctx).First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		return nil, pgerr.Translate(err, "orderId", id)
	}

	return toDomain(dto)
}

func (r *GormOrderRepository) GetAllByTableID(ctx context.Context, tableID kernel.UUID) ([]*order.Order, error) {
	if err := tableID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	err := r.withLineItems(ctx).
		Where("order_table_id = ?", tableID.Bytes()).
		Order("ordered_time").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

func (r *GormOrderRepository) withLineItems(ctx context.Context) *gorm.DB {
	bySeq := func(db *gorm.DB) *gorm.DB {
		return db.Order("seq")
	}
	return r.db.WithContext(ctx).
		Preload("LineItems", bySeq).
		Preload("LineItems.MenuProducts", bySeq)
}
