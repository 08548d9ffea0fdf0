package commands

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

var (
	ErrApproveOrdersCommandIsNotConstructed = errors.New(
		"ApproveOrdersCommand must be created via NewApproveOrdersCommand constructor",
	)
	ErrOrderIDsAreRequired = errors.New("at least one order id is required")
)

// ApproveOrdersCommand represents the head office confirming a batch of
// pending orders, releasing them to logistics as ReadyToShip.
type ApproveOrdersCommand struct { //nolint:recvcheck //using for validation
	orderIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewApproveOrdersCommand creates a command to approve pending orders.
// Requires a non-empty list of valid order identifiers.
func NewApproveOrdersCommand(orderIDs []kernel.UUID) (ApproveOrdersCommand, error) {
	cmd := ApproveOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderIDs(orderIDs); err != nil {
		return ApproveOrdersCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveOrdersCommand) Validate() error {
	return c.guard.Validate(ErrApproveOrdersCommandIsNotConstructed)
}

// OrderIDs returns the orders to approve.
func (c ApproveOrdersCommand) OrderIDs() []kernel.UUID {
	return c.orderIDs
}

func (c *ApproveOrdersCommand) setOrderIDs(orderIDs []kernel.UUID) error {
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
