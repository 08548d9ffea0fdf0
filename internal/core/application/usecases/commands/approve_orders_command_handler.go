package commands

import (
	"context"
)

// ApproveOrdersCommandHandler handles head office approval of pending orders.
// The whole batch commits or rolls back together: if any order in the
// selection is no longer PendingApproval, the batch fails and none of them
// advance.
type ApproveOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewApproveOrdersCommandHandler creates a handler for approval operations.
func NewApproveOrdersCommandHandler(uowFactory OrderUoWFactory) ApproveOrdersCommandHandler {
	return ApproveOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the approval command.
// Each order is moved from PendingApproval to ReadyToShip with a
// compare-and-set on the previous status, so a concurrent approval of the
// same order surfaces as ConcurrencyConflictError instead of a double
// transition.
func (h ApproveOrdersCommandHandler) Handle(ctx context.Context, cmd ApproveOrdersCommand) error {
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

	for _, orderID := range cmd.OrderIDs() {
		aggregate, err := orderRepo.Get(ctx, orderID)
		if err != nil {
			return err
		}

		previous := aggregate.Status()
		if err = aggregate.Approve(); err != nil {
			return err
		}

		if err = orderRepo.UpdateWithStatus(ctx, aggregate, previous); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
