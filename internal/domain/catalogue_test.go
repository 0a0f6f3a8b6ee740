package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/JBarber-BookingService/pkg/types"
)

func TestNewSlotCatalogue(t *testing.T) {
	catalogue, err := NewSlotCatalogue([]string{"09:00 AM", "09:30 AM", "02:00 PM"})
	require.NoError(t, err)

	assert.Equal(t, 3, catalogue.Len())
	assert.True(t, catalogue.Contains(types.SlotLabel("09:00 AM")))
	assert.False(t, catalogue.Contains(types.SlotLabel("10:00 AM")))

	// Порядок конфигурации сохраняется
	labels := catalogue.Labels()
	assert.Equal(t, []types.SlotLabel{"09:00 AM", "09:30 AM", "02:00 PM"}, labels)
}

func TestNewSlotCatalogue_Empty(t *testing.T) {
	_, err := NewSlotCatalogue(nil)
	assert.ErrorIs(t, err, ErrEmptyCatalogue)
}

func TestNewSlotCatalogue_Duplicate(t *testing.T) {
	_, err := NewSlotCatalogue([]string{"09:00 AM", "09:00 AM"})
	assert.ErrorIs(t, err, ErrDuplicateSlot)
}

func TestNewSlotCatalogue_InvalidLabel(t *testing.T) {
	_, err := NewSlotCatalogue([]string{"09:00 AM", "garbage"})
	assert.Error(t, err)
}

func TestSlotCatalogue_LabelsCopy(t *testing.T) {
	catalogue, err := NewSlotCatalogue([]string{"09:00 AM", "09:30 AM"})
	require.NoError(t, err)

	labels := catalogue.Labels()
	labels[0] = "mutated"

	assert.Equal(t, types.SlotLabel("09:00 AM"), catalogue.Labels()[0])
}
