package commands

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

var (
	ErrAdjustDraftQuantityCommandIsNotConstructed = errors.New(
		"AdjustDraftQuantityCommand must be created via NewAdjustDraftQuantityCommand constructor",
	)
	ErrDeltaIsZero = errors.New("quantity delta must not be zero")
)

// AdjustDraftQuantityCommand represents an agency's request to change a draft
// quantity by a signed delta. The aggregate clamps the result to the minimum
// quantity, so an oversized negative delta leaves the draft at one unit rather
// than failing.
type AdjustDraftQuantityCommand struct { //nolint:recvcheck //using for validation
	agencyID kernel.UUID
	draftID  kernel.UUID
	delta    int

	guard guard.ConstructorGuard
}

// NewAdjustDraftQuantityCommand creates a command to adjust a draft quantity.
// The delta may be positive or negative but not zero.
func NewAdjustDraftQuantityCommand(
	agencyID kernel.UUID,
	draftID kernel.UUID,
	delta int,
) (AdjustDraftQuantityCommand, error) {
	cmd := AdjustDraftQuantityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAgencyID(agencyID),
		cmd.setDraftID(draftID),
		cmd.setDelta(delta),
	); err != nil {
		return AdjustDraftQuantityCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdjustDraftQuantityCommand) Validate() error {
	return c.guard.Validate(ErrAdjustDraftQuantityCommandIsNotConstructed)
}

// AgencyID returns the agency that owns the draft.
func (c AdjustDraftQuantityCommand) AgencyID() kernel.UUID {
	return c.agencyID
}

// DraftID returns the draft being adjusted.
func (c AdjustDraftQuantityCommand) DraftID() kernel.UUID {
	return c.draftID
}

// Delta returns the signed quantity change.
func (c AdjustDraftQuantityCommand) Delta() int {
	return c.delta
}

func (c *AdjustDraftQuantityCommand) setAgencyID(agencyID kernel.UUID) error {
	if err := agencyID.Validate(); err != nil {
		return err
	}

	c.agencyID = agencyID
	return nil
}

func (c *AdjustDraftQuantityCommand) setDraftID(draftID kernel.UUID) error {
	if err := draftID.Validate(); err != nil {
		return err
	}

	c.draftID = draftID
	return nil
}

func (c *AdjustDraftQuantityCommand) setDelta(delta int) error {
	if delta == 0 {
		return ErrDeltaIsZero
	}

	c.delta = delta
	return nil
}
