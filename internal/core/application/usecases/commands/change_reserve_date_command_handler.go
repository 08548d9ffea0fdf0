package commands

import (
	"context"

	"supplychain/internal/pkg/errs"
)

// ChangeReserveDateCommandHandler reschedules a not-yet-dispatched order.
type ChangeReserveDateCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewChangeReserveDateCommandHandler creates a handler for rescheduling operations.
func NewChangeReserveDateCommandHandler(uowFactory OrderUoWFactory) ChangeReserveDateCommandHandler {
	return ChangeReserveDateCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rescheduling command.
// An order belonging to a different agency is reported as not found, never as
// forbidden. The update carries a compare-and-set on the status read in this
// transaction, so a dispatch racing with the reschedule invalidates it.
func (h ChangeReserveDateCommandHandler) Handle(ctx context.Context, cmd ChangeReserveDateCommand) error {
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
	if !aggregate.IsOwnedBy(cmd.AgencyID()) {
		return errs.NewObjectNotFoundError("order", cmd.OrderID().String())
	}

	if err = aggregate.ChangeReserveDate(cmd.ReserveDate()); err != nil {
		return err
	}

	if err = orderRepo.UpdateWithStatus(ctx, aggregate, aggregate.Status()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
