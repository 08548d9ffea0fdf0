package commands

import (
	"context"
)

// CompleteDeliveryCommandHandler finalizes an in-transit order.
// The terminal status transition and the driver release share one
// transaction, so a driver is never freed while the order still reads
// InTransit, and vice versa.
type CompleteDeliveryCommandHandler struct {
	uowFactory DispatchUoWFactory
}

// NewCompleteDeliveryCommandHandler creates a handler for delivery completion.
func NewCompleteDeliveryCommandHandler(uowFactory DispatchUoWFactory) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the completion command.
// Moves the order from InTransit to Delivered with a status compare-and-set,
// then releases the assigned driver back to the free pool. The assignment
// snapshot stays on the order for history.
func (h CompleteDeliveryCommandHandler) Handle(ctx context.Context, cmd CompleteDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	previous := aggregate.Status()
	driverID, err := aggregate.CompleteDelivery()
	if err != nil {
		return err
	}

	if err = orderRepo.UpdateWithStatus(ctx, aggregate, previous); err != nil {
		return err
	}

	driverRepo := uow.DriverRepository()

	assignedDriver, err := driverRepo.Get(ctx, driverID)
	if err != nil {
		return err
	}

	if err = assignedDriver.FinishDelivery(); err != nil {
		return err
	}

	if err = driverRepo.Release(ctx, assignedDriver.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
