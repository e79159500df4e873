package commands_test

import (
	"context"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"
	"kitchenpos/internal/core/domain/model/menugroup"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/core/domain/model/product"
	"kitchenpos/internal/core/domain/model/table"
	"kitchenpos/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *product.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

type MockMenuGroupRepository struct{ mock.Mock }

func (m *MockMenuGroupRepository) Add(ctx context.Context, g *menugroup.MenuGroup) error {
	return m.Called(ctx, g).Error(0)
}

func (m *MockMenuGroupRepository) Get(ctx context.Context, id kernel.UUID) (*menugroup.MenuGroup, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menugroup.MenuGroup), args.Error(1)
}

type MockMenuRepository struct{ mock.Mock }

func (m *MockMenuRepository) Add(ctx context.Context, mn *menu.Menu) error {
	return m.Called(ctx, mn).Error(0)
}

func (m *MockMenuRepository) Get(ctx context.Context, id kernel.UUID) (*menu.Menu, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menu.Menu), args.Error(1)
}

type MockTableRepository struct{ mock.Mock }

func (m *MockTableRepository) Add(ctx context.Context, t *table.OrderTable) error {
	return m.Called(ctx, t).Error(0)
}

func (m *MockTableRepository) Update(ctx context.Context, t *table.OrderTable) error {
	return m.Called(ctx, t).Error(0)
}

func (m *MockTableRepository) Get(ctx context.Context, id kernel.UUID) (*table.OrderTable, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*table.OrderTable), args.Error(1)
}

func (m *MockTableRepository) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*table.OrderTable, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*table.OrderTable), args.Error(1)
}

func (m *MockTableRepository) GetAllByGroupID(ctx context.Context, groupID kernel.UUID) ([]*table.OrderTable, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*table.OrderTable), args.Error(1)
}

type MockTableGroupRepository struct{ mock.Mock }

func (m *MockTableGroupRepository) Add(ctx context.Context, g *table.TableGroup) error {
	return m.Called(ctx, g).Error(0)
}

func (m *MockTableGroupRepository) Get(ctx context.Context, id kernel.UUID) (*table.TableGroup, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*table.TableGroup), args.Error(1)
}

func (m *MockTableGroupRepository) Remove(ctx context.Context, g *table.TableGroup) error {
	return m.Called(ctx, g).Error(0)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllByTableID(ctx context.Context, tableID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, tableID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockOrderStatusChecker struct{ mock.Mock }

func (m *MockOrderStatusChecker) AllComplete(ctx context.Context, tableID kernel.UUID) (bool, error) {
	args := m.Called(ctx, tableID)
	return args.Bool(0), args.Error(1)
}

// MockUoW satisfies every unit of work interface of the commands package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) ProductRepository() ports.ProductRepository {
	return m.Called().Get(0).(ports.ProductRepository)
}

func (m *MockUoW) MenuGroupRepository() ports.MenuGroupRepository {
	return m.Called().Get(0).(ports.MenuGroupRepository)
}

func (m *MockUoW) MenuRepository() ports.MenuRepository {
	return m.Called().Get(0).(ports.MenuRepository)
}

func (m *MockUoW) TableRepository() ports.TableRepository {
	return m.Called().Get(0).(ports.TableRepository)
}

func (m *MockUoW) TableGroupRepository() ports.TableGroupRepository {
	return m.Called().Get(0).(ports.TableGroupRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockUoW) OrderStatusChecker() ports.OrderStatusChecker {
	return m.Called().Get(0).(ports.OrderStatusChecker)
}

// MockUoWFactory hands out uow as whichever unit of work interface T a handler needs.
type MockUoWFactory[T any] struct {
	mock.Mock
}

func (m *MockUoWFactory[T]) Create() T {
	return m.Called().Get(0).(T)
}
