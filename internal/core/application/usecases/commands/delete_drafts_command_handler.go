package commands

import (
	"context"
)

// DeleteDraftsCommandHandler handles bulk draft deletion.
type DeleteDraftsCommandHandler struct {
	uowFactory DraftUoWFactory
}

// NewDeleteDraftsCommandHandler creates a handler for draft deletion operations.
func NewDeleteDraftsCommandHandler(uowFactory DraftUoWFactory) DeleteDraftsCommandHandler {
	return DeleteDraftsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the draft deletion command.
// The agency-scoped load fails with ObjectNotFoundError when any selected
// draft is missing or belongs to another agency; after that read, a delete
// count short of the selection means a concurrent promotion consumed a draft
// mid-flight, which rolls the whole deletion back with a conflict.
func (h DeleteDraftsCommandHandler) Handle(ctx context.Context, cmd DeleteDraftsCommand) error {
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

	if _, err := draftRepo.GetMany(ctx, cmd.AgencyID(), cmd.DraftIDs()); err != nil {
		return err
	}

	if err := draftRepo.DeleteMany(ctx, cmd.AgencyID(), cmd.DraftIDs()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
