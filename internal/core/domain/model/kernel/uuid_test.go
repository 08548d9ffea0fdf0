package kernel_test

import (
	"testing"

	"supplychain/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID_ProducesDistinctValidIDs(t *testing.T) {
	first := kernel.NewUUID()
	second := kernel.NewUUID()

	require.NoError(t, first.Validate())
	require.NoError(t, second.Validate())
	assert.False(t, first.IsEqual(second))
}

func TestUUIDFromString_RoundTrip(t *testing.T) {
	original := kernel.NewUUID()

	parsed, err := kernel.UUIDFromString(original.String())

	require.NoError(t, err)
	assert.True(t, parsed.IsEqual(original))
}

func TestUUIDFromString_RejectsGarbage(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"not_a_uuid", "order-42"},
		{"truncated", "550e8400-e29b-41d4-a716"},
		{"bad_hex", "550e8400-e29b-41d4-a716-44665544zzzz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := kernel.UUIDFromString(tt.input)

			assert.Error(t, err)
		})
	}
}

func TestUUIDFromBytes_RoundTripThroughStorageForm(t *testing.T) {
	original := kernel.NewUUID()
	stored := original.Bytes()

	restored, err := kernel.UUIDFromBytes(stored[:])

	require.NoError(t, err)
	assert.True(t, restored.IsEqual(original))
}

func TestUUIDFromBytes_RejectsWrongLength(t *testing.T) {
	_, err := kernel.UUIDFromBytes([]byte{0x01, 0x02, 0x03})

	assert.Error(t, err)
}

func TestUUIDFromBytes_RejectsNilUUID(t *testing.T) {
	// A zeroed uuid column must not restore into a passing identifier.
	_, err := kernel.UUIDFromBytes(make([]byte, 16))

	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestUUID_Validate_ZeroValue(t *testing.T) {
	var id kernel.UUID

	err := id.Validate()

	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestUUID_IsEqual_CopyNamesSameEntity(t *testing.T) {
	id := kernel.NewUUID()
	copied := id

	assert.True(t, id.IsEqual(copied))
	assert.Equal(t, id.String(), copied.String())
}
