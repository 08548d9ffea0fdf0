package commands

import (
	"context"

	"supplychain/internal/pkg/errs"
)

// DeleteOrdersCommandHandler handles agency order cancellation.
// Every order in the batch is checked for ownership and deletability before
// any row is removed; the batch commits or rolls back as one.
type DeleteOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDeleteOrdersCommandHandler creates a handler for order deletion operations.
func NewDeleteOrdersCommandHandler(uowFactory OrderUoWFactory) DeleteOrdersCommandHandler {
	return DeleteOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order deletion command.
// Orders of other agencies are reported as not found. Dispatched orders fail
// the deletability check with an InvalidTransitionError. The final bulk
// delete is guarded against dispatches racing the deletion: fewer deleted
// rows than requested means a conflict and a full rollback.
func (h DeleteOrdersCommandHandler) Handle(ctx context.Context, cmd DeleteOrdersCommand) error {
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
		if !aggregate.IsOwnedBy(cmd.AgencyID()) {
			return errs.NewObjectNotFoundError("order", orderID.String())
		}
		if err = aggregate.ValidateDelete(); err != nil {
			return err
		}
	}

	if err := orderRepo.Delete(ctx, cmd.OrderIDs()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
