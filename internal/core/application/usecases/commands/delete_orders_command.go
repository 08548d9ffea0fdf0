package commands

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

var ErrDeleteOrdersCommandIsNotConstructed = errors.New(
	"DeleteOrdersCommand must be created via NewDeleteOrdersCommand constructor",
)

// DeleteOrdersCommand represents an agency cancelling one or more of its
// orders. Only orders that have not been dispatched are eligible.
type DeleteOrdersCommand struct { //nolint:recvcheck //using for validation
	agencyID kernel.UUID
	orderIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteOrdersCommand creates a command to delete orders.
// Requires a non-empty list of valid order identifiers.
func NewDeleteOrdersCommand(agencyID kernel.UUID, orderIDs []kernel.UUID) (DeleteOrdersCommand, error) {
	cmd := DeleteOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAgencyID(agencyID),
		cmd.setOrderIDs(orderIDs),
	); err != nil {
		return DeleteOrdersCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteOrdersCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrdersCommandIsNotConstructed)
}

// AgencyID returns the agency that owns the orders.
func (c DeleteOrdersCommand) AgencyID() kernel.UUID {
	return c.agencyID
}

// OrderIDs returns the orders to delete.
func (c DeleteOrdersCommand) OrderIDs() []kernel.UUID {
	return c.orderIDs
}

func (c *DeleteOrdersCommand) setAgencyID(agencyID kernel.UUID) error {
	if err := agencyID.Validate(); err != nil {
		return err
	}

	c.agencyID = agencyID
	return nil
}

func (c *DeleteOrdersCommand) setOrderIDs(orderIDs []kernel.UUID) error {
	if len(orderIDs) == 0 {
		return ErrOrderIDsAreRequired
	}
	for _, id := range orderIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	c.orderIDs = orderIDs
	return nil
}
