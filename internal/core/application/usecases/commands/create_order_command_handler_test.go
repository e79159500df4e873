package commands_test

import (
	"testing"

	"kitchenpos/internal/core/application/usecases/commands"
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/order"
	"kitchenpos/internal/core/domain/services"
	"kitchenpos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	t.Run("empty line items", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), nil)

		require.ErrorIs(t, err, order.ErrOrderLineItemsEmpty)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("quantity below one", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(),
			[]commands.OrderLineRequest{{MenuID: kernel.NewUUID(), Quantity: 0}})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("missing table", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.UUID{},
			[]commands.OrderLineRequest{{MenuID: kernel.NewUUID(), Quantity: 1}})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestCreateOrderCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()

	type fixture struct {
		cmd       commands.CreateOrderCommand
		uow       *MockUoW
		orderRepo *MockOrderRepository
		factory   *MockUoWFactory[commands.OrderUoW]
	}

	setup := func(t *testing.T, empty bool) fixture {
		t.Helper()
		group := newMenuGroup(t, "chicken")
		chicken := newProduct(t, "fried chicken", "16000")
		m := newMenu(t, group, chicken)
		orderTable := newTable(t, 0, empty)
		cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), orderTable.ID(),
			[]commands.OrderLineRequest{{MenuID: m.ID(), Quantity: 2}})
		require.NoError(t, err)

		tableRepo := new(MockTableRepository)
		tableRepo.On("Get", ctx, orderTable.ID()).Return(orderTable, nil).Once()
		menuRepo := new(MockMenuRepository)
		menuRepo.On("Get", ctx, m.ID()).Return(m, nil).Once()
		groupRepo := new(MockMenuGroupRepository)
		groupRepo.On("Get", ctx, group.ID()).Return(group, nil).Once()
		productRepo := new(MockProductRepository)
		productRepo.On("Get", ctx, chicken.ID()).Return(chicken, nil).Once()

		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("TableRepository").Return(tableRepo).Once()
		uow.On("MenuRepository").Return(menuRepo).Once()
		uow.On("MenuGroupRepository").Return(groupRepo).Once()
		uow.On("ProductRepository").Return(productRepo).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		factory := new(MockUoWFactory[commands.OrderUoW])
		factory.On("Create").Return(uow).Once()
		return fixture{cmd: cmd, uow: uow, orderRepo: new(MockOrderRepository), factory: factory}
	}

	t.Run("places a cooking order", func(t *testing.T) {
		f := setup(t, false)
		f.uow.On("OrderRepository").Return(f.orderRepo).Once()
		f.orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()
		f.uow.On("Commit", ctx).Return(nil).Once()

		o, err := commands.NewCreateOrderCommandHandler(f.factory).Handle(ctx, f.cmd)

		require.NoError(t, err)
		assert.Equal(t, order.Cooking, o.Status())
		require.Len(t, o.LineItems(), 1)
		assert.Equal(t, "chicken", o.LineItems()[0].Menu().MenuGroupName())
		assert.Equal(t, int64(2), o.LineItems()[0].Quantity())
		products := o.LineItems()[0].Menu().Products()
		require.Len(t, products, 1)
		assert.Equal(t, "fried chicken", products[0].ProductName())
		assert.Equal(t, "16000", products[0].Price().String())
		assert.Equal(t, int64(1), products[0].Quantity())
		f.orderRepo.AssertExpectations(t)
		f.uow.AssertExpectations(t)
	})

	t.Run("empty table is refused", func(t *testing.T) {
		f := setup(t, true)

		o, err := commands.NewCreateOrderCommandHandler(f.factory).Handle(ctx, f.cmd)

		assert.Nil(t, o)
		require.ErrorIs(t, err, services.ErrOrderTableEmpty)
		require.ErrorIs(t, err, errs.ErrPreconditionFailed)
		f.uow.AssertNotCalled(t, "Commit", ctx)
	})

	t.Run("unknown menu", func(t *testing.T) {
		orderTable := newTable(t, 2, false)
		menuID := kernel.NewUUID()
		cmd, _ := commands.NewCreateOrderCommand(kernel.NewUUID(), orderTable.ID(),
			[]commands.OrderLineRequest{{MenuID: menuID, Quantity: 1}})
		tableRepo := new(MockTableRepository)
		tableRepo.On("Get", ctx, orderTable.ID()).Return(orderTable, nil).Once()
		menuRepo := new(MockMenuRepository)
		menuRepo.On("Get", ctx, menuID).Return(nil, errs.NewObjectNotFoundError("menuId", menuID)).Once()
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("TableRepository").Return(tableRepo).Once()
		uow.On("MenuRepository").Return(menuRepo).Once()
		uow.On("MenuGroupRepository").Return(new(MockMenuGroupRepository)).Once()
		uow.On("ProductRepository").Return(new(MockProductRepository)).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		factory := new(MockUoWFactory[commands.OrderUoW])
		factory.On("Create").Return(uow).Once()

		_, err := commands.NewCreateOrderCommandHandler(factory).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		uow.AssertExpectations(t)
	})

	t.Run("unknown product of a menu", func(t *testing.T) {
		group := newMenuGroup(t, "chicken")
		chicken := newProduct(t, "fried chicken", "16000")
		m := newMenu(t, group, chicken)
		orderTable := newTable(t, 2, false)
		cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), orderTable.ID(),
			[]commands.OrderLineRequest{{MenuID: m.ID(), Quantity: 1}})
		require.NoError(t, err)
		tableRepo := new(MockTableRepository)
		tableRepo.On("Get", ctx, orderTable.ID()).Return(orderTable, nil).Once()
		menuRepo := new(MockMenuRepository)
		menuRepo.On("Get", ctx, m.ID()).Return(m, nil).Once()
		groupRepo := new(MockMenuGroupRepository)
		groupRepo.On("Get", ctx, group.ID()).Return(group, nil).Once()
		productRepo := new(MockProductRepository)
		productRepo.On("Get", ctx, chicken.ID()).
			Return(nil, errs.NewObjectNotFoundError("productId", chicken.ID())).Once()
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("TableRepository").Return(tableRepo).Once()
		uow.On("MenuRepository").Return(menuRepo).Once()
		uow.On("MenuGroupRepository").Return(groupRepo).Once()
		uow.On("ProductRepository").Return(productRepo).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		factory := new(MockUoWFactory[commands.OrderUoW])
		factory.On("Create").Return(uow).Once()

		_, err = commands.NewCreateOrderCommandHandler(factory).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		uow.AssertNotCalled(t, "OrderRepository")
		uow.AssertExpectations(t)
	})
}
