package commands

import (
	"context"

	"supplychain/internal/core/domain/model/draft"
	"supplychain/internal/core/ports"
)

// AddDraftCommandHandler handles the business logic for adding a draft line
// item. Reads the catalog once to freeze the product name and unit price into
// the draft, so later catalog edits cannot change what the agency drafted.
type AddDraftCommandHandler struct {
	uowFactory DraftUoWFactory
	catalog    ports.CatalogReader
}

// NewAddDraftCommandHandler creates a handler for draft creation operations.
func NewAddDraftCommandHandler(uowFactory DraftUoWFactory, catalog ports.CatalogReader) AddDraftCommandHandler {
	return AddDraftCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
	}
}

// Handle processes the add draft command.
// Snapshots the product from the catalog and persists the new draft within a
// transaction. Returns ObjectNotFoundError when the product does not exist.
func (h AddDraftCommandHandler) Handle(ctx context.Context, cmd AddDraftCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	product, err := h.catalog.GetProduct(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	readyOrder, err := draft.NewReadyOrder(
		cmd.DraftID(),
		cmd.AgencyID(),
		product.ID,
		product.Name,
		product.UnitPrice,
		cmd.Quantity(),
	)
	if err != nil {
		return err
	}

	if err = uow.DraftRepository().Add(ctx, readyOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
