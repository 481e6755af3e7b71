package commands_test

import (
	"testing"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	trackedOrder := newTestOrder(t)
	cmd, err := commands.NewCancelOrderCommand(trackedOrder.ID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, trackedOrder.ID()).Return(trackedOrder, nil).Once(),
		repo.On("Update", mock.Anything, trackedOrder).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	err = h.Handle(ctx, kernel.RoleUser, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, trackedOrder.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_ForbiddenRole(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCancelOrderCommand(kernel.NewUUID())
	require.NoError(t, err)

	factory := new(MockOrderUoWFactory)
	h := commands.NewCancelOrderCommandHandler(factory)
	err = h.Handle(ctx, kernel.RoleRestaurant, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrForbiddenRole)
	factory.AssertNotCalled(t, "Create")
}

func TestCancelOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCancelOrderCommand(kernel.NewUUID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, cmd.OrderID()).Return(nil, errs.ErrOrderNotFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	err = h.Handle(ctx, kernel.RoleUser, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrOrderNotFound)
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_DeliveredOrderStillCancellable(t *testing.T) {
	ctx := t.Context()
	trackedOrder := newTestOrder(t)
	require.NoError(t, trackedOrder.ChangeStatus(order.Delivered))

	cmd, err := commands.NewCancelOrderCommand(trackedOrder.ID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, trackedOrder.ID()).Return(trackedOrder, nil).Once(),
		repo.On("Update", mock.Anything, trackedOrder).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	err = h.Handle(ctx, kernel.RoleUser, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, trackedOrder.Status())
}
