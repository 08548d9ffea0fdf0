package services

import (
	"errors"
	"time"

	"supplychain/internal/core/domain/model/draft"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/pkg/errs"
)

// ErrNoDraftsSelected is returned when a promotion is attempted with an empty
// draft selection.
var ErrNoDraftsSelected = errors.New("no drafts selected for promotion")

// OrderPromoter is the domain service that turns a selection of agency drafts
// into a confirmed order aggregate. It owns the derivation rules of promotion:
// every draft becomes one frozen order item carrying the draft's price and
// name snapshots, and all drafts must belong to the promoting agency.
//
// The all-or-nothing persistence contract of promotion (create the order,
// delete the drafts, commit both or neither) is the command handler's concern;
// this service only builds a valid aggregate.
//
// Example usage:
//
//	promoter := services.NewOrderPromoter()
//	agencyOrder, err := promoter.Promote(orderID, agencyID, "Busan Agency", drafts, now, reserveDate)
//	if err != nil {
//	    // a draft was invalid or belonged to another agency
//	}
type OrderPromoter struct{}

// NewOrderPromoter creates a new OrderPromoter instance.
func NewOrderPromoter() OrderPromoter {
	return OrderPromoter{}
}

// Promote derives a PendingApproval order aggregate from the given drafts.
//
// Parameters:
//   - orderID: identity for the new aggregate
//   - agencyID: the promoting agency; every draft must be owned by it
//   - agencyName: agency display name snapshot embedded in the order
//   - drafts: the selected draft line items, each with quantity >= 1
//   - orderedAt: the promotion timestamp
//   - reserveDate: the requested arrival date
//
// A draft owned by another agency fails with an ObjectNotFoundError rather
// than a permission error: cross-tenant drafts are invisible, not forbidden.
func (p OrderPromoter) Promote(
	orderID kernel.UUID,
	agencyID kernel.UUID,
	agencyName string,
	drafts []*draft.ReadyOrder,
	orderedAt time.Time,
	reserveDate time.Time,
) (*order.AgencyOrder, error) {
	if len(drafts) == 0 {
		return nil, ErrNoDraftsSelected
	}

	items := make([]order.Item, 0, len(drafts))
	for _, d := range drafts {
		if err := d.Validate(); err != nil {
			return nil, err
		}
		if !d.IsOwnedBy(agencyID) {
			return nil, errs.NewObjectNotFoundError("draft", d.ID().String())
		}

		item, err := order.NewItem(d.ProductID(), d.ProductName(), d.Quantity(), d.UnitPrice())
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return order.NewAgencyOrder(orderID, agencyID, agencyName, orderedAt, reserveDate, items)
}
