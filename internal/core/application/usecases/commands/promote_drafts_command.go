package commands

import (
	"errors"
	"fmt"
	"time"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"
	"supplychain/internal/pkg/guard"
)

// minReserveLeadDays is the minimum number of days between today and the
// requested arrival date. Orders need the head office approval round and a
// logistics slot before anything moves, so same-day and next-day reserve
// dates are rejected up front.
const minReserveLeadDays = 3

var (
	ErrPromoteDraftsCommandIsNotConstructed = errors.New(
		"PromoteDraftsCommand must be created via NewPromoteDraftsCommand constructor",
	)
	ErrReserveDateTooSoon = fmt.Errorf("reserve date must be at least %d days ahead", minReserveLeadDays)
)

// PromoteDraftsCommand represents an agency's request to turn a selection of
// drafts into a confirmed order awaiting head office approval.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewPromoteDraftsCommand(orderID, agencyID, draftIDs, reserveDate)
//	if err != nil {
//	    return fmt.Errorf("invalid promotion request: %w", err)
//	}
//
//	handler := NewPromoteDraftsCommandHandler(uowFactory, catalog)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("promotion failed: %w", err)
//	}
type PromoteDraftsCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	agencyID    kernel.UUID
	draftIDs    []kernel.UUID
	reserveDate time.Time

	guard guard.ConstructorGuard
}

// NewPromoteDraftsCommand creates a command to promote drafts into an order.
// Validates that the draft selection is non-empty and the reserve date honors
// the minimum lead time.
func NewPromoteDraftsCommand(
	orderID kernel.UUID,
	agencyID kernel.UUID,
	draftIDs []kernel.UUID,
	reserveDate time.Time,
) (PromoteDraftsCommand, error) {
	cmd := PromoteDraftsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setAgencyID(agencyID),
		cmd.setDraftIDs(draftIDs),
		cmd.setReserveDate(reserveDate),
	); err != nil {
		return PromoteDraftsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PromoteDraftsCommand) Validate() error {
	return c.guard.Validate(ErrPromoteDraftsCommandIsNotConstructed)
}

// OrderID returns the identity for the order about to be created.
func (c PromoteDraftsCommand) OrderID() kernel.UUID {
	return c.orderID
}

// AgencyID returns the promoting agency.
func (c PromoteDraftsCommand) AgencyID() kernel.UUID {
	return c.agencyID
}

// DraftIDs returns the drafts selected for promotion.
func (c PromoteDraftsCommand) DraftIDs() []kernel.UUID {
	return c.draftIDs
}

// ReserveDate returns the requested arrival date.
func (c PromoteDraftsCommand) ReserveDate() time.Time {
	return c.reserveDate
}

func (c *PromoteDraftsCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PromoteDraftsCommand) setAgencyID(agencyID kernel.UUID) error {
	if err := agencyID.Validate(); err != nil {
		return err
	}

	c.agencyID = agencyID
	return nil
}

func (c *PromoteDraftsCommand) setDraftIDs(draftIDs []kernel.UUID) error {
	if len(draftIDs) == 0 {
		return ErrDraftIDsAreRequired
	}
	for _, id := range draftIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	c.draftIDs = draftIDs
	return nil
}

func (c *PromoteDraftsCommand) setReserveDate(reserveDate time.Time) error {
	if err := validateReserveDate(reserveDate); err != nil {
		return err
	}

	c.reserveDate = reserveDate
	return nil
}

// validateReserveDate checks the minimum lead time on a calendar-day basis:
// the reserve date's day must be at least minReserveLeadDays after today.
// Time-of-day is ignored on both sides.
func validateReserveDate(reserveDate time.Time) error {
	if reserveDate.IsZero() {
		return errs.NewValueIsRequiredError("reserveDate")
	}

	earliest := truncateToDay(time.Now()).AddDate(0, 0, minReserveLeadDays)
	if truncateToDay(reserveDate).Before(earliest) {
		return ErrReserveDateTooSoon
	}
	return nil
}

func truncateToDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
