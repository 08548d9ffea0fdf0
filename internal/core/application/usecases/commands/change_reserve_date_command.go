package commands

import (
	"errors"
	"time"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

var ErrChangeReserveDateCommandIsNotConstructed = errors.New(
	"ChangeReserveDateCommand must be created via NewChangeReserveDateCommand constructor",
)

// ChangeReserveDateCommand represents an agency moving the requested arrival
// date of one of its not-yet-dispatched orders. The new date honors the same
// minimum lead time as promotion.
type ChangeReserveDateCommand struct { //nolint:recvcheck //using for validation
	agencyID    kernel.UUID
	orderID     kernel.UUID
	reserveDate time.Time

	guard guard.ConstructorGuard
}

// NewChangeReserveDateCommand creates a command to change an order's reserve date.
func NewChangeReserveDateCommand(
	agencyID kernel.UUID,
	orderID kernel.UUID,
	reserveDate time.Time,
) (ChangeReserveDateCommand, error) {
	cmd := ChangeReserveDateCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAgencyID(agencyID),
		cmd.setOrderID(orderID),
		cmd.setReserveDate(reserveDate),
	); err != nil {
		return ChangeReserveDateCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeReserveDateCommand) Validate() error {
	return c.guard.Validate(ErrChangeReserveDateCommandIsNotConstructed)
}

// AgencyID returns the agency claiming ownership of the order.
func (c ChangeReserveDateCommand) AgencyID() kernel.UUID {
	return c.agencyID
}

// OrderID returns the order being rescheduled.
func (c ChangeReserveDateCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ReserveDate returns the new requested arrival date.
func (c ChangeReserveDateCommand) ReserveDate() time.Time {
	return c.reserveDate
}

func (c *ChangeReserveDateCommand) setAgencyID(agencyID kernel.UUID) error {
	if err := agencyID.Validate(); err != nil {
		return err
	}

	c.agencyID = agencyID
	return nil
}

func (c *ChangeReserveDateCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ChangeReserveDateCommand) setReserveDate(reserveDate time.Time) error {
	if err := validateReserveDate(reserveDate); err != nil {
		return err
	}

	c.reserveDate = reserveDate
	return nil
}
