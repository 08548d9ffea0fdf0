package driver

import (
	"errors"
	"fmt"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"
	"supplychain/internal/pkg/guard"
)

// Domain errors for driver operations.
var (
	// ErrNameIsRequired is returned when attempting to create a driver without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrDriverIsNotConstructed is returned when using an improperly initialized Driver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver or RestoreDriver")
)

// Driver represents a logistics company's delivery driver. It is the system's
// only true mutual-exclusion resource: a driver flagged as currently
// delivering may not be assigned to a second concurrent order.
//
// Business rules:
//   - A free driver becomes delivering when booked for a dispatch
//   - A delivering driver cannot be booked again until released
//   - Completing (or reconciling) a delivery releases the driver
//
// The delivering flag and the order's InTransit transition must be persisted
// together; the storage layer enforces that with an atomic check-and-set,
// while this aggregate guards the in-memory side of the rule.
type Driver struct {
	id         kernel.UUID
	name       string
	phone      string
	vehicle    string
	delivering bool

	guard guard.ConstructorGuard
}

// NewDriver creates a free driver with the given identity and vehicle.
// Phone and vehicle may be empty; the name may not.
func NewDriver(id kernel.UUID, name, phone, vehicle string) (*Driver, error) {
	d := &Driver{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
	); err != nil {
		return nil, err
	}

	d.phone = phone
	d.vehicle = vehicle
	return d, nil
}

// RestoreDriver reconstructs a driver from persistent storage, including the
// delivering flag as it was persisted.
func RestoreDriver(id kernel.UUID, name, phone, vehicle string, delivering bool) (*Driver, error) {
	d, err := NewDriver(id, name, phone, vehicle)
	if err != nil {
		return nil, err
	}

	d.delivering = delivering
	return d, nil
}

// Validate ensures the driver was created through a constructor.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

// Name returns the driver's display name.
func (d *Driver) Name() string {
	return d.name
}

// Phone returns the driver's contact phone.
func (d *Driver) Phone() string {
	return d.phone
}

// Vehicle returns the driver's vehicle identifier.
func (d *Driver) Vehicle() string {
	return d.vehicle
}

// IsDelivering reports whether the driver is bound to an active delivery.
func (d *Driver) IsDelivering() bool {
	return d.delivering
}

// StartDelivery books the driver for a dispatch. A driver that is already
// delivering returns a ConcurrencyConflictError; the caller surfaces it so
// the client can pick another driver.
func (d *Driver) StartDelivery() error {
	if d.delivering {
		return errs.NewConcurrencyConflictErrorWithCause("driver", d.id.String(),
			fmt.Errorf("driver %s is already delivering", d.name))
	}

	d.delivering = true
	return nil
}

// FinishDelivery releases the driver after the order reached its terminal
// state, freeing the driver for reassignment.
func (d *Driver) FinishDelivery() error {
	if !d.delivering {
		return errs.NewValueIsInvalidErrorWithCause("delivering",
			fmt.Errorf("driver %s is not delivering", d.name))
	}

	d.delivering = false
	return nil
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	d.name = name
	return nil
}
