package commands

import (
	"context"

	"supplychain/internal/core/domain/model/order"
)

// AssignDriverCommandHandler orchestrates the dispatch of an approved order.
// Booking the driver's exclusivity flag and advancing the order status are
// both compare-and-set updates inside one transaction; two dispatchers racing
// for the same driver or the same order serialize on those guards, and the
// loser gets a conflict with nothing half-applied.
type AssignDriverCommandHandler struct {
	uowFactory DispatchUoWFactory
}

// NewAssignDriverCommandHandler creates a handler for dispatch operations.
func NewAssignDriverCommandHandler(uowFactory DispatchUoWFactory) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the dispatch command.
// Books the driver through the aggregate first, persists the booking with the
// flag compare-and-set, snapshots the driver's contact details into the
// order's delivery assignment, and advances the order from ReadyToShip to
// InTransit with a status compare-and-set.
func (h AssignDriverCommandHandler) Handle(ctx context.Context, cmd AssignDriverCommand) error {
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

	driverRepo := uow.DriverRepository()
	orderRepo := uow.OrderRepository()

	assignedDriver, err := driverRepo.Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	if err = assignedDriver.StartDelivery(); err != nil {
		return err
	}

	// The flag compare-and-set stays authoritative: the aggregate check reads
	// a snapshot, the row update serializes concurrent bookings.
	if err = driverRepo.MarkDelivering(ctx, assignedDriver.ID()); err != nil {
		return err
	}

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	assignment, err := order.NewDeliveryAssignment(
		assignedDriver.ID(),
		assignedDriver.Name(),
		assignedDriver.Phone(),
		assignedDriver.Vehicle(),
	)
	if err != nil {
		return err
	}

	previous := aggregate.Status()
	if err = aggregate.Dispatch(assignment); err != nil {
		return err
	}

	if err = orderRepo.UpdateWithStatus(ctx, aggregate, previous); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
