package commands

import (
	"errors"

	"supplychain/internal/core/domain/model/draft"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

var (
	ErrAddDraftCommandIsNotConstructed = errors.New(
		"AddDraftCommand must be created via NewAddDraftCommand constructor",
	)
	ErrQuantityIsInvalid = errors.New("quantity must be at least 1")
)

// AddDraftCommand represents an agency's request to put a product into its
// draft basket. The catalog price and name are snapshotted by the handler at
// execution time, not carried by the command.
//
// Example:
//
//	draftID := kernel.NewUUID()
//	cmd, err := NewAddDraftCommand(draftID, agencyID, productID, 3)
//	if err != nil {
//	    return fmt.Errorf("invalid draft data: %w", err)
//	}
//
//	handler := NewAddDraftCommandHandler(uowFactory, catalog)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to add draft: %w", err)
//	}
type AddDraftCommand struct { //nolint:recvcheck //using for validation
	draftID   kernel.UUID
	agencyID  kernel.UUID
	productID kernel.UUID
	quantity  int

	guard guard.ConstructorGuard
}

// NewAddDraftCommand creates a command to add a draft line item.
// Validates that all identifiers are valid and quantity is at least 1.
func NewAddDraftCommand(
	draftID kernel.UUID,
	agencyID kernel.UUID,
	productID kernel.UUID,
	quantity int,
) (AddDraftCommand, error) {
	cmd := AddDraftCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDraftID(draftID),
		cmd.setAgencyID(agencyID),
		cmd.setProductID(productID),
		cmd.setQuantity(quantity),
	); err != nil {
		return AddDraftCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddDraftCommand) Validate() error {
	return c.guard.Validate(ErrAddDraftCommandIsNotConstructed)
}

// DraftID returns the identifier for the new draft line item.
func (c AddDraftCommand) DraftID() kernel.UUID {
	return c.draftID
}

// AgencyID returns the agency that owns the draft basket.
func (c AddDraftCommand) AgencyID() kernel.UUID {
	return c.agencyID
}

// ProductID returns the catalog product being drafted.
func (c AddDraftCommand) ProductID() kernel.UUID {
	return c.productID
}

// Quantity returns the requested amount.
func (c AddDraftCommand) Quantity() int {
	return c.quantity
}

func (c *AddDraftCommand) setDraftID(draftID kernel.UUID) error {
	if err := draftID.Validate(); err != nil {
		return err
	}

	c.draftID = draftID
	return nil
}

func (c *AddDraftCommand) setAgencyID(agencyID kernel.UUID) error {
	if err := agencyID.Validate(); err != nil {
		return err
	}

	c.agencyID = agencyID
	return nil
}

func (c *AddDraftCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *AddDraftCommand) setQuantity(quantity int) error {
	if quantity < draft.MinQuantity {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}
