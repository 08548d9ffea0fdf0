package commands_test

import (
	"context"
	"testing"

	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/domain/model/driver"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func inTransitTestOrder(t *testing.T, driverID kernel.UUID) *order.AgencyOrder {
	t.Helper()

	assignment, err := order.NewDeliveryAssignment(driverID, "Kim Minsu", "010-1234-5678", "68루 2549")
	require.NoError(t, err)
	return dispatchTestOrder(t, order.InTransit, &assignment)
}

func TestCompleteDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()

	driverID := kernel.NewUUID()
	assignedDriver, err := driver.RestoreDriver(driverID, "Kim Minsu", "010-1234-5678", "68루 2549", true)
	require.NoError(t, err)

	testOrder := inTransitTestOrder(t, driverID)
	cmd, err := commands.NewCompleteDeliveryCommand(testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockDispatchOrderRepository)
	driverRepo := new(MockDispatchDriverRepository)
	uow := new(MockDispatchUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("UpdateWithStatus", ctx, mock.AnythingOfType("*order.AgencyOrder"), order.InTransit).
			Return(nil).
			Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Get", ctx, driverID).Return(assignedDriver, nil).Once(),
		driverRepo.On("Release", ctx, driverID).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCompleteDeliveryCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.False(t, assignedDriver.IsDelivering())

	updateCall := orderRepo.Calls[1]
	completed := updateCall.Arguments[1].(*order.AgencyOrder)
	assert.Equal(t, order.Delivered, completed.Status())
	require.NotNil(t, completed.Assignment()) // snapshot retained for history

	orderRepo.AssertExpectations(t)
	driverRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCompleteDeliveryCommandHandler_Handle_NotInTransit(t *testing.T) {
	ctx := context.Background()

	testOrder := dispatchTestOrder(t, order.ReadyToShip, nil)
	cmd, err := commands.NewCompleteDeliveryCommand(testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockDispatchOrderRepository)
	driverRepo := new(MockDispatchDriverRepository)
	uow := new(MockDispatchUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCompleteDeliveryCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	driverRepo.AssertNotCalled(t, "Release")
	uow.AssertNotCalled(t, "Commit")
}

func TestCompleteDeliveryCommandHandler_Handle_DriverAlreadyFree(t *testing.T) {
	ctx := context.Background()

	driverID := kernel.NewUUID()
	freeDriver, err := driver.NewDriver(driverID, "Kim Minsu", "", "")
	require.NoError(t, err)

	testOrder := inTransitTestOrder(t, driverID)
	cmd, err := commands.NewCompleteDeliveryCommand(testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockDispatchOrderRepository)
	driverRepo := new(MockDispatchDriverRepository)
	uow := new(MockDispatchUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("UpdateWithStatus", ctx, mock.AnythingOfType("*order.AgencyOrder"), order.InTransit).
			Return(nil).
			Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Get", ctx, driverID).Return(freeDriver, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCompleteDeliveryCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	driverRepo.AssertNotCalled(t, "Release", ctx, driverID)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestCompleteDeliveryCommandHandler_Handle_AlreadyDelivered(t *testing.T) {
	ctx := context.Background()

	driverID := kernel.NewUUID()
	assignment, err := order.NewDeliveryAssignment(driverID, "Kim Minsu", "", "")
	require.NoError(t, err)
	testOrder := dispatchTestOrder(t, order.Delivered, &assignment)

	cmd, err := commands.NewCompleteDeliveryCommand(testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockDispatchOrderRepository)
	uow := new(MockDispatchUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCompleteDeliveryCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	orderRepo.AssertNotCalled(t, "UpdateWithStatus")
}
