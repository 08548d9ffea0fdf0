package order

import (
	"errors"
	"fmt"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"
	"supplychain/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item was not created through NewItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is one immutable line of a confirmed order. Product name and unit price
// are frozen at promotion time and never re-read from the catalog afterwards,
// preserving historical accuracy against later catalog edits.
type Item struct {
	productID   kernel.UUID
	productName string
	quantity    int
	unitPrice   int64
	lineTotal   int64

	guard guard.ConstructorGuard
}

// NewItem creates an immutable order line. Quantity must be at least one,
// unit price must not be negative; the line total is derived, never supplied.
func NewItem(productID kernel.UUID, productName string, quantity int, unitPrice int64) (Item, error) {
	if err := productID.Validate(); err != nil {
		return Item{}, err
	}
	if productName == "" {
		return Item{}, errs.NewValueIsRequiredError("productName")
	}
	if quantity < 1 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is less than 1", quantity))
	}
	if unitPrice < 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("unitPrice",
			fmt.Errorf("%d is negative", unitPrice))
	}

	return Item{
		productID:   productID,
		productName: productName,
		quantity:    quantity,
		unitPrice:   unitPrice,
		lineTotal:   int64(quantity) * unitPrice,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the item was created through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ProductID returns the catalog product this line was frozen from.
func (i Item) ProductID() kernel.UUID {
	return i.productID
}

// ProductName returns the product display name snapshot.
func (i Item) ProductName() string {
	return i.productName
}

// Quantity returns the confirmed quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the unit price snapshot.
func (i Item) UnitPrice() int64 {
	return i.unitPrice
}

// LineTotal returns quantity times the unit price snapshot.
func (i Item) LineTotal() int64 {
	return i.lineTotal
}
