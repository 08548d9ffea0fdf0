package order_test

import (
	"testing"
	"time"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItem(t *testing.T, name string, quantity int, unitPrice int64) order.Item {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), name, quantity, unitPrice)
	require.NoError(t, err)
	return item
}

func testOrder(t *testing.T, items ...order.Item) *order.AgencyOrder {
	t.Helper()
	if len(items) == 0 {
		items = []order.Item{testItem(t, "Americano Beans 1kg", 2, 1000)}
	}
	o, err := order.NewAgencyOrder(
		kernel.NewUUID(), kernel.NewUUID(), "Busan Agency",
		time.Now(), time.Now().AddDate(0, 0, 4), items,
	)
	require.NoError(t, err)
	return o
}

func testAssignment(t *testing.T) order.DeliveryAssignment {
	t.Helper()
	a, err := order.NewDeliveryAssignment(kernel.NewUUID(), "Kim Minsu", "010-1234-5678", "68루 2549")
	require.NoError(t, err)
	return a
}

func TestNewItem(t *testing.T) {
	t.Run("should derive line total", func(t *testing.T) {
		item := testItem(t, "Drip Kettle", 3, 42000)

		assert.Equal(t, int64(126000), item.LineTotal())
		require.NoError(t, item.Validate())
	})

	t.Run("should reject invalid inputs", func(t *testing.T) {
		_, err := order.NewItem(kernel.NewUUID(), "", 1, 100)
		require.Error(t, err)

		_, err = order.NewItem(kernel.NewUUID(), "Drip Kettle", 0, 100)
		require.Error(t, err)

		_, err = order.NewItem(kernel.NewUUID(), "Drip Kettle", 1, -1)
		require.Error(t, err)

		_, err = order.NewItem(kernel.UUID{}, "Drip Kettle", 1, 100)
		require.Error(t, err)
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		var item order.Item
		require.ErrorIs(t, item.Validate(), order.ErrItemIsNotConstructed)
	})
}

func TestNewAgencyOrder(t *testing.T) {
	t.Run("should start in PendingApproval with derived totals", func(t *testing.T) {
		items := []order.Item{
			testItem(t, "Americano Beans 1kg", 2, 1000),
			testItem(t, "Filter Paper", 3, 500),
		}

		o := testOrder(t, items...)

		assert.Equal(t, order.PendingApproval, o.Status())
		assert.Equal(t, 5, o.TotalQuantity())
		assert.Equal(t, int64(3500), o.TotalAmount())
		assert.Equal(t, "Americano Beans 1kg (+1 more)", o.ProductSummary())
		assert.Nil(t, o.Assignment())
	})

	t.Run("total amount always equals sum of item totals", func(t *testing.T) {
		items := []order.Item{
			testItem(t, "A", 7, 1234),
			testItem(t, "B", 1, 999),
			testItem(t, "C", 12, 50),
		}

		o := testOrder(t, items...)

		var want int64
		for _, item := range o.Items() {
			want += item.LineTotal()
		}
		assert.Equal(t, want, o.TotalAmount())
	})

	t.Run("single item summary has no suffix", func(t *testing.T) {
		o := testOrder(t, testItem(t, "Filter Paper", 1, 500))
		assert.Equal(t, "Filter Paper", o.ProductSummary())
	})

	t.Run("should reject empty item list", func(t *testing.T) {
		_, err := order.NewAgencyOrder(
			kernel.NewUUID(), kernel.NewUUID(), "Busan Agency",
			time.Now(), time.Now().AddDate(0, 0, 4), nil,
		)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject empty agency name", func(t *testing.T) {
		_, err := order.NewAgencyOrder(
			kernel.NewUUID(), kernel.NewUUID(), "",
			time.Now(), time.Now().AddDate(0, 0, 4),
			[]order.Item{testItem(t, "A", 1, 1)},
		)
		require.Error(t, err)
	})

	t.Run("items are returned as a copy", func(t *testing.T) {
		o := testOrder(t)
		items := o.Items()
		items[0] = order.Item{}
		assert.NoError(t, o.Items()[0].Validate())
	})
}

func TestAgencyOrder_Lifecycle(t *testing.T) {
	t.Run("full happy path", func(t *testing.T) {
		o := testOrder(t, testItem(t, "Americano Beans 1kg", 2, 1000))
		assignment := testAssignment(t)

		require.NoError(t, o.Approve())
		assert.Equal(t, order.ReadyToShip, o.Status())

		require.NoError(t, o.Dispatch(assignment))
		assert.Equal(t, order.InTransit, o.Status())
		require.NotNil(t, o.Assignment())
		assert.Equal(t, "Kim Minsu", o.Assignment().DriverName())

		driverID, err := o.CompleteDelivery()
		require.NoError(t, err)
		assert.True(t, driverID.IsEqual(assignment.DriverID()))
		assert.Equal(t, order.Delivered, o.Status())

		// The assignment snapshot survives completion for history.
		assert.NotNil(t, o.Assignment())

		// Total was not disturbed by any transition.
		assert.Equal(t, int64(2000), o.TotalAmount())
	})

	t.Run("dispatch requires approval first", func(t *testing.T) {
		o := testOrder(t)

		err := o.Dispatch(testAssignment(t))

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.PendingApproval, o.Status())
		assert.Nil(t, o.Assignment())
	})

	t.Run("complete requires dispatch first", func(t *testing.T) {
		o := testOrder(t)
		require.NoError(t, o.Approve())

		_, err := o.CompleteDelivery()

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.ReadyToShip, o.Status())
	})

	t.Run("dispatch rejects unconstructed assignment", func(t *testing.T) {
		o := testOrder(t)
		require.NoError(t, o.Approve())

		err := o.Dispatch(order.DeliveryAssignment{})

		require.Error(t, err)
		assert.Equal(t, order.ReadyToShip, o.Status())
	})
}

func TestAgencyOrder_ChangeReserveDate(t *testing.T) {
	t.Run("should change before dispatch", func(t *testing.T) {
		o := testOrder(t)
		newDate := time.Now().AddDate(0, 0, 10)

		require.NoError(t, o.ChangeReserveDate(newDate))
		assert.Equal(t, newDate, o.ReserveDate())

		require.NoError(t, o.Approve())
		require.NoError(t, o.ChangeReserveDate(newDate.AddDate(0, 0, 1)))
	})

	t.Run("should be immutable once dispatched", func(t *testing.T) {
		o := testOrder(t)
		require.NoError(t, o.Approve())
		require.NoError(t, o.Dispatch(testAssignment(t)))
		before := o.ReserveDate()

		err := o.ChangeReserveDate(time.Now().AddDate(0, 0, 20))

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, before, o.ReserveDate())
	})
}

func TestAgencyOrder_ValidateDelete(t *testing.T) {
	o := testOrder(t)
	require.NoError(t, o.ValidateDelete())

	require.NoError(t, o.Approve())
	require.NoError(t, o.ValidateDelete())

	require.NoError(t, o.Dispatch(testAssignment(t)))
	require.ErrorIs(t, o.ValidateDelete(), errs.ErrInvalidTransition)

	_, err := o.CompleteDelivery()
	require.NoError(t, err)
	require.ErrorIs(t, o.ValidateDelete(), errs.ErrInvalidTransition)
}

func TestRestoreAgencyOrder(t *testing.T) {
	items := []order.Item{testItem(t, "Americano Beans 1kg", 2, 1000)}
	id, agencyID := kernel.NewUUID(), kernel.NewUUID()
	orderedAt := time.Now()
	reserveDate := orderedAt.AddDate(0, 0, 5)

	t.Run("should restore dispatched order with assignment", func(t *testing.T) {
		assignment := testAssignment(t)

		o, err := order.RestoreAgencyOrder(
			id, agencyID, "Busan Agency", orderedAt, reserveDate,
			order.InTransit, items, &assignment,
		)

		require.NoError(t, err)
		assert.Equal(t, order.InTransit, o.Status())
		require.NotNil(t, o.Assignment())
	})

	t.Run("should reject dispatched order without assignment", func(t *testing.T) {
		_, err := order.RestoreAgencyOrder(
			id, agencyID, "Busan Agency", orderedAt, reserveDate,
			order.InTransit, items, nil,
		)
		require.Error(t, err)
	})

	t.Run("should reject pending order with assignment", func(t *testing.T) {
		assignment := testAssignment(t)
		_, err := order.RestoreAgencyOrder(
			id, agencyID, "Busan Agency", orderedAt, reserveDate,
			order.PendingApproval, items, &assignment,
		)
		require.Error(t, err)
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		_, err := order.RestoreAgencyOrder(
			id, agencyID, "Busan Agency", orderedAt, reserveDate,
			order.Unknown, items, nil,
		)
		require.Error(t, err)
	})
}
