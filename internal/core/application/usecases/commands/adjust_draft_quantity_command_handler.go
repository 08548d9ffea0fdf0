package commands

import (
	"context"
)

// AdjustDraftQuantityCommandHandler handles draft quantity adjustments.
// The read is agency-scoped, so an agency can never adjust another agency's
// draft; such a draft simply does not exist from its point of view.
type AdjustDraftQuantityCommandHandler struct {
	uowFactory DraftUoWFactory
}

// NewAdjustDraftQuantityCommandHandler creates a handler for quantity adjustments.
func NewAdjustDraftQuantityCommandHandler(uowFactory DraftUoWFactory) AdjustDraftQuantityCommandHandler {
	return AdjustDraftQuantityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the quantity adjustment command.
// Loads the draft, applies the clamped delta and persists the result within
// a transaction.
func (h AdjustDraftQuantityCommandHandler) Handle(ctx context.Context, cmd AdjustDraftQuantityCommand) error {
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

	draftRepo := uow.DraftRepository()

	readyOrder, err := draftRepo.Get(ctx, cmd.AgencyID(), cmd.DraftID())
	if err != nil {
		return err
	}

	readyOrder.AdjustQuantity(cmd.Delta())

	if err = draftRepo.Update(ctx, readyOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
