package services_test

import (
	"testing"
	"time"

	"supplychain/internal/core/domain/model/draft"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/core/domain/services"
	"supplychain/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDraft(t *testing.T, agencyID kernel.UUID, name string, quantity int, unitPrice int64) *draft.ReadyOrder {
	t.Helper()
	d, err := draft.NewReadyOrder(kernel.NewUUID(), agencyID, kernel.NewUUID(), name, unitPrice, quantity)
	require.NoError(t, err)
	return d
}

func TestOrderPromoter_Promote(t *testing.T) {
	promoter := services.NewOrderPromoter()
	agencyID := kernel.NewUUID()
	now := time.Now()
	reserveDate := now.AddDate(0, 0, 4)

	t.Run("should derive one item per draft with frozen snapshots", func(t *testing.T) {
		drafts := []*draft.ReadyOrder{
			newDraft(t, agencyID, "Americano Beans 1kg", 2, 1000),
			newDraft(t, agencyID, "Filter Paper", 3, 500),
		}

		o, err := promoter.Promote(kernel.NewUUID(), agencyID, "Busan Agency", drafts, now, reserveDate)

		require.NoError(t, err)
		assert.Equal(t, order.PendingApproval, o.Status())
		require.Len(t, o.Items(), 2)
		assert.Equal(t, int64(3500), o.TotalAmount())
		assert.Equal(t, 5, o.TotalQuantity())
		assert.Equal(t, "Americano Beans 1kg", o.Items()[0].ProductName())
		assert.Equal(t, int64(1000), o.Items()[0].UnitPrice())
		assert.Equal(t, reserveDate, o.ReserveDate())
	})

	t.Run("should reject empty selection", func(t *testing.T) {
		_, err := promoter.Promote(kernel.NewUUID(), agencyID, "Busan Agency", nil, now, reserveDate)
		require.ErrorIs(t, err, services.ErrNoDraftsSelected)
	})

	t.Run("should reject a draft owned by another agency", func(t *testing.T) {
		drafts := []*draft.ReadyOrder{
			newDraft(t, agencyID, "Americano Beans 1kg", 2, 1000),
			newDraft(t, kernel.NewUUID(), "Filter Paper", 3, 500),
		}

		_, err := promoter.Promote(kernel.NewUUID(), agencyID, "Busan Agency", drafts, now, reserveDate)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should reject an unconstructed draft", func(t *testing.T) {
		drafts := []*draft.ReadyOrder{{}}

		_, err := promoter.Promote(kernel.NewUUID(), agencyID, "Busan Agency", drafts, now, reserveDate)

		require.ErrorIs(t, err, draft.ErrReadyOrderIsNotConstructed)
	})
}
