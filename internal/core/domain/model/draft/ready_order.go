package draft

import (
	"errors"
	"fmt"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"
)

const (
	// MinQuantity is the floor every draft quantity is clamped to.
	MinQuantity = 1
)

var (
	// ErrReadyOrderIsNotConstructed is returned when a ReadyOrder instance was not
	// created through one of the constructor functions.
	ErrReadyOrderIsNotConstructed = errors.New("ReadyOrder must be created via NewReadyOrder or RestoreReadyOrder")
	// ErrProductNameIsRequired is returned when the snapshotted product name is empty.
	ErrProductNameIsRequired = errs.NewValueIsRequiredError("productName")
)

// ReadyOrder is a tentative, unconfirmed line item an agency intends to order.
// It belongs to exactly one agency; no other role can see or mutate it.
//
// ReadyOrder follows these invariants:
//   - Quantity is always at least MinQuantity, after construction and after
//     every adjustment, regardless of how large a negative delta is applied
//   - Unit price and product name are snapshots taken from the catalog when the
//     draft was created and never re-read afterwards
//   - Line total always equals quantity times unit price
//
// A ReadyOrder is destroyed individually, in bulk, or atomically consumed when
// promoted into an order aggregate; it never survives promotion.
type ReadyOrder struct {
	id          kernel.UUID
	agencyID    kernel.UUID
	productID   kernel.UUID
	productName string
	unitPrice   int64
	quantity    int
	lineTotal   int64

	isConstructed bool
}

// NewReadyOrder creates a draft line item with a catalog price snapshot.
//
// Parameters:
//   - id: unique identifier for the draft
//   - agencyID: the owning agency
//   - productID: the catalog product being drafted
//   - productName: product display name snapshot taken at call time
//   - unitPrice: catalog unit price snapshot taken at call time (must not be negative)
//   - quantity: requested amount (must be at least MinQuantity)
//
// Returns a validation error if any parameter is invalid.
func NewReadyOrder(
	id kernel.UUID,
	agencyID kernel.UUID,
	productID kernel.UUID,
	productName string,
	unitPrice int64,
	quantity int,
) (*ReadyOrder, error) {
	ro := &ReadyOrder{isConstructed: true}

	if err := errors.Join(
		ro.setID(id),
		ro.setAgencyID(agencyID),
		ro.setProductID(productID),
		ro.setProductName(productName),
		ro.setUnitPrice(unitPrice),
		ro.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	ro.recalculate()
	return ro, nil
}

// RestoreReadyOrder reconstructs a draft from persistent storage.
// Unlike NewReadyOrder it accepts the persisted line total as-is after
// verifying it still matches quantity times price.
func RestoreReadyOrder(
	id kernel.UUID,
	agencyID kernel.UUID,
	productID kernel.UUID,
	productName string,
	unitPrice int64,
	quantity int,
	lineTotal int64,
) (*ReadyOrder, error) {
	ro, err := NewReadyOrder(id, agencyID, productID, productName, unitPrice, quantity)
	if err != nil {
		return nil, err
	}

	if ro.lineTotal != lineTotal {
		return nil, errs.NewValueIsInvalidErrorWithCause("lineTotal",
			fmt.Errorf("%d does not equal %d * %d", lineTotal, quantity, unitPrice))
	}

	return ro, nil
}

// Validate ensures the draft was created through a constructor.
func (ro *ReadyOrder) Validate() error {
	if ro == nil || !ro.isConstructed {
		return ErrReadyOrderIsNotConstructed
	}
	return nil
}

// ID returns the draft's unique identifier.
func (ro *ReadyOrder) ID() kernel.UUID {
	return ro.id
}

// AgencyID returns the owning agency.
func (ro *ReadyOrder) AgencyID() kernel.UUID {
	return ro.agencyID
}

// ProductID returns the drafted catalog product.
func (ro *ReadyOrder) ProductID() kernel.UUID {
	return ro.productID
}

// ProductName returns the product display name snapshot.
func (ro *ReadyOrder) ProductName() string {
	return ro.productName
}

// UnitPrice returns the unit price snapshot taken at draft time.
func (ro *ReadyOrder) UnitPrice() int64 {
	return ro.unitPrice
}

// Quantity returns the current quantity.
func (ro *ReadyOrder) Quantity() int {
	return ro.quantity
}

// LineTotal returns quantity times the unit price snapshot.
func (ro *ReadyOrder) LineTotal() int64 {
	return ro.lineTotal
}

// IsOwnedBy reports whether the draft belongs to the given agency.
func (ro *ReadyOrder) IsOwnedBy(agencyID kernel.UUID) bool {
	return ro.agencyID.IsEqual(agencyID)
}

// AdjustQuantity applies a positive or negative delta to the quantity,
// clamping the result to MinQuantity and recomputing the line total.
// The resulting quantity never drops below MinQuantity no matter how large
// a negative delta is applied.
func (ro *ReadyOrder) AdjustQuantity(delta int) {
	ro.quantity += delta
	if ro.quantity < MinQuantity {
		ro.quantity = MinQuantity
	}
	ro.recalculate()
}

func (ro *ReadyOrder) recalculate() {
	ro.lineTotal = int64(ro.quantity) * ro.unitPrice
}

func (ro *ReadyOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	ro.id = id
	return nil
}

func (ro *ReadyOrder) setAgencyID(agencyID kernel.UUID) error {
	if err := agencyID.Validate(); err != nil {
		return err
	}
	ro.agencyID = agencyID
	return nil
}

func (ro *ReadyOrder) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	ro.productID = productID
	return nil
}

func (ro *ReadyOrder) setProductName(productName string) error {
	if productName == "" {
		return ErrProductNameIsRequired
	}
	ro.productName = productName
	return nil
}

func (ro *ReadyOrder) setUnitPrice(unitPrice int64) error {
	if unitPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice",
			fmt.Errorf("%d is negative", unitPrice))
	}
	ro.unitPrice = unitPrice
	return nil
}

func (ro *ReadyOrder) setQuantity(quantity int) error {
	if quantity < MinQuantity {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is less than %d", quantity, MinQuantity))
	}
	ro.quantity = quantity
	return nil
}
