package order

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"
	"supplychain/internal/pkg/guard"
)

// ErrAssignmentIsNotConstructed is returned when a DeliveryAssignment was not
// created through NewDeliveryAssignment.
var ErrAssignmentIsNotConstructed = errors.New(
	"DeliveryAssignment must be created via NewDeliveryAssignment constructor",
)

// DeliveryAssignment binds a driver to an in-flight order. Driver name, phone
// and vehicle are denormalized snapshots taken at dispatch time so the order's
// history stays accurate even if the driver record changes later.
type DeliveryAssignment struct {
	driverID    kernel.UUID
	driverName  string
	driverPhone string
	vehicle     string

	guard guard.ConstructorGuard
}

// NewDeliveryAssignment creates an assignment snapshot for the given driver.
// The phone and vehicle snapshots may be empty; the name may not.
func NewDeliveryAssignment(driverID kernel.UUID, driverName, driverPhone, vehicle string) (DeliveryAssignment, error) {
	if err := driverID.Validate(); err != nil {
		return DeliveryAssignment{}, err
	}
	if driverName == "" {
		return DeliveryAssignment{}, errs.NewValueIsRequiredError("driverName")
	}

	return DeliveryAssignment{
		driverID:    driverID,
		driverName:  driverName,
		driverPhone: driverPhone,
		vehicle:     vehicle,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the assignment was created through NewDeliveryAssignment.
func (a DeliveryAssignment) Validate() error {
	return a.guard.Validate(ErrAssignmentIsNotConstructed)
}

// DriverID returns the assigned driver's identity.
func (a DeliveryAssignment) DriverID() kernel.UUID {
	return a.driverID
}

// DriverName returns the driver name snapshot taken at dispatch.
func (a DeliveryAssignment) DriverName() string {
	return a.driverName
}

// DriverPhone returns the driver phone snapshot taken at dispatch.
func (a DeliveryAssignment) DriverPhone() string {
	return a.driverPhone
}

// Vehicle returns the vehicle identifier snapshot taken at dispatch.
func (a DeliveryAssignment) Vehicle() string {
	return a.vehicle
}
