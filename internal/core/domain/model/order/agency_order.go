package order

import (
	"errors"
	"fmt"
	"time"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"
)

var (
	// ErrAgencyOrderIsNotConstructed is returned when an AgencyOrder instance was
	// not created through NewAgencyOrder or RestoreAgencyOrder.
	ErrAgencyOrderIsNotConstructed = errors.New(
		"AgencyOrder must be created via NewAgencyOrder or RestoreAgencyOrder",
	)
	// ErrItemsAreRequired is returned when an order is promoted with no line items.
	ErrItemsAreRequired = errs.NewValueIsRequiredError("items")
	// ErrAgencyNameIsRequired is returned when the agency name snapshot is empty.
	ErrAgencyNameIsRequired = errs.NewValueIsRequiredError("agencyName")
)

// AgencyOrder is the confirmed unit of work of the order lifecycle: the order
// header plus its immutable line items. It is the aggregate root shared by all
// three actor roles; each role mutates only the slice of state its transition
// owns.
//
// AgencyOrder follows these invariants:
//   - Items are frozen at promotion; only status, reserve date (pre-dispatch)
//     and the delivery assignment may change afterwards
//   - Total amount always equals the sum of item line totals
//   - Status transitions follow the PendingApproval -> ReadyToShip ->
//     InTransit -> Delivered workflow; Delivered is terminal
//   - An assignment exists exactly when the order is InTransit or Delivered
type AgencyOrder struct {
	id             kernel.UUID
	agencyID       kernel.UUID
	agencyName     string
	orderedAt      time.Time
	reserveDate    time.Time
	status         Status
	productSummary string
	items          []Item
	totalQuantity  int
	totalAmount    int64
	assignment     *DeliveryAssignment

	isConstructed bool
}

// NewAgencyOrder creates a freshly promoted order in PendingApproval status.
//
// Parameters:
//   - id: unique identifier for the order
//   - agencyID: the agency the order belongs to
//   - agencyName: agency display name snapshot taken at promotion
//   - orderedAt: promotion timestamp, immutable afterwards
//   - reserveDate: requested arrival date (lead-time validation is the
//     promoting command's concern, not the aggregate's)
//   - items: the frozen line items derived from the consumed drafts
//
// The product summary, total quantity and total amount are derived from the
// items and never supplied by the caller.
func NewAgencyOrder(
	id kernel.UUID,
	agencyID kernel.UUID,
	agencyName string,
	orderedAt time.Time,
	reserveDate time.Time,
	items []Item,
) (*AgencyOrder, error) {
	o := &AgencyOrder{
		status:        PendingApproval,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setAgencyID(agencyID),
		o.setAgencyName(agencyName),
		o.setOrderedAt(orderedAt),
		o.setReserveDate(reserveDate),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreAgencyOrder reconstructs an order aggregate from persistent storage,
// including its current status and optional delivery assignment. The restored
// aggregate behaves identically to one created through normal domain
// operations.
func RestoreAgencyOrder(
	id kernel.UUID,
	agencyID kernel.UUID,
	agencyName string,
	orderedAt time.Time,
	reserveDate time.Time,
	status Status,
	items []Item,
	assignment *DeliveryAssignment,
) (*AgencyOrder, error) {
	o, err := NewAgencyOrder(id, agencyID, agencyName, orderedAt, reserveDate, items)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	hasAssignment := assignment != nil
	if hasAssignment {
		if err = assignment.Validate(); err != nil {
			return nil, err
		}
	}
	if hasAssignment != status.IsDispatched() {
		return nil, errs.NewValueIsInvalidErrorWithCause("assignment",
			fmt.Errorf("%s order and assignment presence are inconsistent", status))
	}

	o.status = status
	o.assignment = assignment
	return o, nil
}

// Validate ensures the order was created through a constructor.
func (o *AgencyOrder) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrAgencyOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *AgencyOrder) IsEqual(other *AgencyOrder) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's immutable identity.
func (o *AgencyOrder) ID() kernel.UUID {
	return o.id
}

// AgencyID returns the owning agency.
func (o *AgencyOrder) AgencyID() kernel.UUID {
	return o.agencyID
}

// AgencyName returns the agency display name snapshot.
func (o *AgencyOrder) AgencyName() string {
	return o.agencyName
}

// OrderedAt returns the promotion timestamp.
func (o *AgencyOrder) OrderedAt() time.Time {
	return o.orderedAt
}

// ReserveDate returns the requested arrival date.
func (o *AgencyOrder) ReserveDate() time.Time {
	return o.reserveDate
}

// Status returns the current lifecycle status.
func (o *AgencyOrder) Status() Status {
	return o.status
}

// ProductSummary returns the denormalized product display string, e.g.
// "Americano Beans 1kg (+2 more)".
func (o *AgencyOrder) ProductSummary() string {
	return o.productSummary
}

// Items returns a copy of the frozen line items.
func (o *AgencyOrder) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// TotalQuantity returns the sum of item quantities.
func (o *AgencyOrder) TotalQuantity() int {
	return o.totalQuantity
}

// TotalAmount returns the sum of item line totals.
func (o *AgencyOrder) TotalAmount() int64 {
	return o.totalAmount
}

// Assignment returns the delivery assignment, or nil before dispatch.
func (o *AgencyOrder) Assignment() *DeliveryAssignment {
	return o.assignment
}

// IsOwnedBy reports whether the order belongs to the given agency.
func (o *AgencyOrder) IsOwnedBy(agencyID kernel.UUID) bool {
	return o.agencyID.IsEqual(agencyID)
}

// Approve moves the order from PendingApproval to ReadyToShip.
// Only the head office may trigger this transition; role enforcement is the
// command handler's concern.
func (o *AgencyOrder) Approve() error {
	newStatus, err := o.status.Approve()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Dispatch binds a driver to the order and moves it from ReadyToShip to
// InTransit. The driver's own exclusivity flag must be booked in the same
// unit of work; the aggregate only records the assignment snapshot.
func (o *AgencyOrder) Dispatch(assignment DeliveryAssignment) error {
	if err := assignment.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Dispatch()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.assignment = &assignment
	return nil
}

// CompleteDelivery moves the order from InTransit to Delivered and returns
// the driver to release. The assignment snapshot is retained for history.
func (o *AgencyOrder) CompleteDelivery() (kernel.UUID, error) {
	newStatus, err := o.status.Complete()
	if err != nil {
		return kernel.UUID{}, err
	}

	o.status = newStatus
	return o.assignment.DriverID(), nil
}

// ChangeReserveDate updates the requested arrival date. The date is mutable
// only while the order has not been dispatched.
func (o *AgencyOrder) ChangeReserveDate(reserveDate time.Time) error {
	if o.status.IsDispatched() {
		return errs.NewInvalidTransitionErrorWithCause(o.status.String(), o.status.String(),
			fmt.Errorf("reserve date is immutable once dispatched"))
	}
	return o.setReserveDate(reserveDate)
}

// ValidateDelete checks whether the order may still be deleted.
// Deletion is only legal before dispatch; from InTransit or Delivered it
// fails with an InvalidTransitionError.
func (o *AgencyOrder) ValidateDelete() error {
	if o.status.IsDispatched() {
		return errs.NewInvalidTransitionErrorWithCause(o.status.String(), "Deleted",
			fmt.Errorf("orders cannot be deleted once dispatched"))
	}
	return nil
}

func (o *AgencyOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *AgencyOrder) setAgencyID(agencyID kernel.UUID) error {
	if err := agencyID.Validate(); err != nil {
		return err
	}
	o.agencyID = agencyID
	return nil
}

func (o *AgencyOrder) setAgencyName(agencyName string) error {
	if agencyName == "" {
		return ErrAgencyNameIsRequired
	}
	o.agencyName = agencyName
	return nil
}

func (o *AgencyOrder) setOrderedAt(orderedAt time.Time) error {
	if orderedAt.IsZero() {
		return errs.NewValueIsRequiredError("orderedAt")
	}
	o.orderedAt = orderedAt
	return nil
}

func (o *AgencyOrder) setReserveDate(reserveDate time.Time) error {
	if reserveDate.IsZero() {
		return errs.NewValueIsRequiredError("reserveDate")
	}
	o.reserveDate = reserveDate
	return nil
}

func (o *AgencyOrder) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	var totalQuantity int
	var totalAmount int64
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		totalQuantity += item.Quantity()
		totalAmount += item.LineTotal()
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	o.totalQuantity = totalQuantity
	o.totalAmount = totalAmount
	o.productSummary = summarizeProducts(o.items)
	return nil
}

// summarizeProducts collapses the item names into the denormalized display
// string shown in list views: the first product plus a count of the rest.
func summarizeProducts(items []Item) string {
	if len(items) == 1 {
		return items[0].ProductName()
	}
	return fmt.Sprintf("%s (+%d more)", items[0].ProductName(), len(items)-1)
}
