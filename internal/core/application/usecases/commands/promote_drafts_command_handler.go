package commands

import (
	"context"
	"time"

	"supplychain/internal/core/domain/services"
	"supplychain/internal/core/ports"
)

// PromoteDraftsCommandHandler orchestrates the promotion of drafts into a
// confirmed order. The order insert and the draft deletion run in one
// transaction: either the basket lines become an order and disappear, or
// nothing changes. A concurrent promotion or deletion of any selected draft
// rolls the whole promotion back with a conflict.
type PromoteDraftsCommandHandler struct {
	uowFactory PromotionUoWFactory
	catalog    ports.CatalogReader
}

// NewPromoteDraftsCommandHandler creates a handler for promotion operations.
func NewPromoteDraftsCommandHandler(
	uowFactory PromotionUoWFactory,
	catalog ports.CatalogReader,
) PromoteDraftsCommandHandler {
	return PromoteDraftsCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
	}
}

// Handle processes the promotion command.
// Loads the selected drafts (agency-scoped), derives the order aggregate
// through the OrderPromoter, persists it and consumes the drafts, all within
// a single transaction.
func (h PromoteDraftsCommandHandler) Handle(ctx context.Context, cmd PromoteDraftsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	agency, err := h.catalog.GetAgency(ctx, cmd.AgencyID())
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

	draftRepo := uow.DraftRepository()
	orderRepo := uow.OrderRepository()

	drafts, err := draftRepo.GetMany(ctx, cmd.AgencyID(), cmd.DraftIDs())
	if err != nil {
		return err
	}

	aggregate, err := services.NewOrderPromoter().Promote(
		cmd.OrderID(),
		cmd.AgencyID(),
		agency.Name,
		drafts,
		time.Now(),
		cmd.ReserveDate(),
	)
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	if err = draftRepo.DeleteMany(ctx, cmd.AgencyID(), cmd.DraftIDs()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
