package commands

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

var (
	ErrDeleteDraftsCommandIsNotConstructed = errors.New(
		"DeleteDraftsCommand must be created via NewDeleteDraftsCommand constructor",
	)
	ErrDraftIDsAreRequired = errors.New("at least one draft id is required")
)

// DeleteDraftsCommand represents an agency's request to remove one or more
// drafts from its basket.
type DeleteDraftsCommand struct { //nolint:recvcheck //using for validation
	agencyID kernel.UUID
	draftIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteDraftsCommand creates a command to delete draft line items.
// Requires a non-empty list of valid draft identifiers.
func NewDeleteDraftsCommand(agencyID kernel.UUID, draftIDs []kernel.UUID) (DeleteDraftsCommand, error) {
	cmd := DeleteDraftsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAgencyID(agencyID),
		cmd.setDraftIDs(draftIDs),
	); err != nil {
		return DeleteDraftsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteDraftsCommand) Validate() error {
	return c.guard.Validate(ErrDeleteDraftsCommandIsNotConstructed)
}

// AgencyID returns the agency that owns the drafts.
func (c DeleteDraftsCommand) AgencyID() kernel.UUID {
	return c.agencyID
}

// DraftIDs returns the drafts to delete.
func (c DeleteDraftsCommand) DraftIDs() []kernel.UUID {
	return c.draftIDs
}

func (c *DeleteDraftsCommand) setAgencyID(agencyID kernel.UUID) error {
	if err := agencyID.Validate(); err != nil {
		return err
	}

	c.agencyID = agencyID
	return nil
}

func (c *DeleteDraftsCommand) setDraftIDs(draftIDs []kernel.UUID) error {
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
