package driver_test

import (
	"testing"

	"supplychain/internal/core/domain/model/driver"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDriver(t *testing.T) {
	t.Run("should create free driver", func(t *testing.T) {
		id := kernel.NewUUID()

		d, err := driver.NewDriver(id, "Kim Minsu", "010-1234-5678", "68루 2549")

		require.NoError(t, err)
		assert.True(t, d.ID().IsEqual(id))
		assert.Equal(t, "Kim Minsu", d.Name())
		assert.Equal(t, "010-1234-5678", d.Phone())
		assert.Equal(t, "68루 2549", d.Vehicle())
		assert.False(t, d.IsDelivering())
		require.NoError(t, d.Validate())
	})

	t.Run("should reject empty name", func(t *testing.T) {
		_, err := driver.NewDriver(kernel.NewUUID(), "", "", "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject zero id", func(t *testing.T) {
		_, err := driver.NewDriver(kernel.UUID{}, "Kim Minsu", "", "")
		require.Error(t, err)
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		var d driver.Driver
		require.ErrorIs(t, d.Validate(), driver.ErrDriverIsNotConstructed)
	})
}

func TestDriver_StartDelivery(t *testing.T) {
	t.Run("should book a free driver", func(t *testing.T) {
		d, err := driver.NewDriver(kernel.NewUUID(), "Kim Minsu", "", "")
		require.NoError(t, err)

		require.NoError(t, d.StartDelivery())
		assert.True(t, d.IsDelivering())
	})

	t.Run("should conflict on a busy driver", func(t *testing.T) {
		d, err := driver.NewDriver(kernel.NewUUID(), "Kim Minsu", "", "")
		require.NoError(t, err)
		require.NoError(t, d.StartDelivery())

		err = d.StartDelivery()

		require.ErrorIs(t, err, errs.ErrConcurrencyConflict)
		assert.True(t, d.IsDelivering())
	})
}

func TestDriver_FinishDelivery(t *testing.T) {
	t.Run("should release a busy driver", func(t *testing.T) {
		d, err := driver.RestoreDriver(kernel.NewUUID(), "Kim Minsu", "", "", true)
		require.NoError(t, err)

		require.NoError(t, d.FinishDelivery())
		assert.False(t, d.IsDelivering())

		// Released driver can be booked again.
		require.NoError(t, d.StartDelivery())
	})

	t.Run("should reject releasing a free driver", func(t *testing.T) {
		d, err := driver.NewDriver(kernel.NewUUID(), "Kim Minsu", "", "")
		require.NoError(t, err)

		require.Error(t, d.FinishDelivery())
	})
}

func TestRestoreDriver(t *testing.T) {
	d, err := driver.RestoreDriver(kernel.NewUUID(), "Kim Minsu", "010-1234-5678", "68루 2549", true)

	require.NoError(t, err)
	assert.True(t, d.IsDelivering())
	require.NoError(t, d.Validate())
}
