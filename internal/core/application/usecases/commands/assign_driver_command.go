package commands

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

var ErrAssignDriverCommandIsNotConstructed = errors.New(
	"AssignDriverCommand must be created via NewAssignDriverCommand constructor",
)

// AssignDriverCommand represents logistics dispatching an approved order with
// a specific driver.
//
// Example:
//
//	cmd, err := NewAssignDriverCommand(orderID, driverID)
//	if err != nil {
//	    return fmt.Errorf("invalid dispatch request: %w", err)
//	}
//
//	handler := NewAssignDriverCommandHandler(uowFactory)
//	err = handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrConcurrencyConflict) {
//	    // the driver was booked or the order dispatched by someone else first
//	}
type AssignDriverCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignDriverCommand creates a command to dispatch an order with a driver.
func NewAssignDriverCommand(orderID kernel.UUID, driverID kernel.UUID) (AssignDriverCommand, error) {
	cmd := AssignDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDriverID(driverID),
	); err != nil {
		return AssignDriverCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDriverCommand) Validate() error {
	return c.guard.Validate(ErrAssignDriverCommandIsNotConstructed)
}

// OrderID returns the order to dispatch.
func (c AssignDriverCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DriverID returns the driver to book.
func (c AssignDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c *AssignDriverCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignDriverCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}
