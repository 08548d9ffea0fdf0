package order

import (
	"fmt"

	"supplychain/internal/pkg/errs"
)

// Status represents the lifecycle state of a confirmed agency order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct business workflow across the three actor roles.
//
// State transitions:
//
//	PendingApproval ──> ReadyToShip ──> InTransit ──> Delivered
//	 (head office        (logistics      (delivery
//	  approval)           dispatch)       completion)
//
// Delivered is terminal; no further transitions are legal from it.
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// PendingApproval is the initial status of a newly promoted order.
	// Orders in this status are waiting for head-office approval.
	PendingApproval

	// ReadyToShip indicates the head office approved the order.
	// Orders in this status are waiting for a logistics dispatch.
	ReadyToShip

	// InTransit indicates a driver was assigned and the delivery is underway.
	InTransit

	// Delivered indicates the order reached the agency.
	// This is a final state with no further transitions allowed.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:         "Unknown",
		PendingApproval: "PendingApproval",
		ReadyToShip:     "ReadyToShip",
		InTransit:       "InTransit",
		Delivered:       "Delivered",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		PendingApproval: "PendingApproval",
		ReadyToShip:     "ReadyToShip",
		InTransit:       "InTransit",
		Delivered:       "Delivered",
	}
}

// StatusFromString parses the human-readable status name used on the wire.
// Unknown and unrecognized names fail.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
// Unknown (0) and any out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errsInvalidStatus(s)
	}
	return nil
}

// String returns the human-readable name of the status.
// It implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Approve transitions the status to ReadyToShip.
//
// Valid transitions:
//   - PendingApproval -> ReadyToShip
//
// Any other source state returns an InvalidTransitionError naming the
// current and requested states.
func (s Status) Approve() (Status, error) {
	if s != PendingApproval {
		return 0, errsInvalidTransition(s, ReadyToShip)
	}
	return ReadyToShip, nil
}

// Dispatch transitions the status to InTransit.
//
// Valid transitions:
//   - ReadyToShip -> InTransit
//
// The caller is responsible for booking a free driver in the same logical
// unit of work; this method only guards the status side of the transition.
func (s Status) Dispatch() (Status, error) {
	if s != ReadyToShip {
		return 0, errsInvalidTransition(s, InTransit)
	}
	return InTransit, nil
}

// Complete transitions the status to Delivered.
//
// Valid transitions:
//   - InTransit -> Delivered
//
// Delivered is terminal; completing an already delivered order fails.
func (s Status) Complete() (Status, error) {
	if s != InTransit {
		return 0, errsInvalidTransition(s, Delivered)
	}
	return Delivered, nil
}

// IsDispatched reports whether the order has progressed to InTransit or beyond.
// Reserve-date edits and order deletion are only legal before this point.
func (s Status) IsDispatched() bool {
	return s == InTransit || s == Delivered
}

// IsTerminal reports whether no further transitions are legal.
func (s Status) IsTerminal() bool {
	return s == Delivered
}
