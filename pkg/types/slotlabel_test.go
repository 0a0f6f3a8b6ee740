package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotLabel_Rank(t *testing.T) {
	tests := []struct {
		label string
		want  int
	}{
		{"12:00 AM", 0},
		{"12:30 AM", 30},
		{"01:00 AM", 100},
		{"09:00 AM", 900},
		{"11:30 AM", 1130},
		{"12:00 PM", 1200},
		{"12:30 PM", 1230},
		{"01:00 PM", 1300},
		{"02:00 PM", 1400},
		{"11:30 PM", 2330},
		// 24-часовые метки ранжируются как есть
		{"09:00", 900},
		{"14:30", 1430},
		{"23:30", 2330},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, SlotLabel(tt.label).Rank())
		})
	}
}

func TestSlotLabel_Rank_Invalid(t *testing.T) {
	// Нечитаемые метки уходят в конец сортировки, а не ломают её
	assert.Equal(t, 9999, SlotLabel("garbage").Rank())
	assert.Equal(t, 9999, SlotLabel("").Rank())
}

func TestSlotLabel_IsBefore(t *testing.T) {
	// Лексикографический порядок строк дал бы обратный результат:
	// "02:00 PM" < "09:00 AM" как строки
	assert.True(t, SlotLabel("09:00 AM").IsBefore(SlotLabel("02:00 PM")))
	assert.True(t, SlotLabel("12:00 AM").IsBefore(SlotLabel("12:00 PM")))
	assert.False(t, SlotLabel("11:30 PM").IsBefore(SlotLabel("11:00 PM")))
	assert.False(t, SlotLabel("10:00 AM").IsBefore(SlotLabel("10:00 AM")))
}

func TestNewSlotLabelFromString(t *testing.T) {
	label, err := NewSlotLabelFromString("09:30 AM")
	require.NoError(t, err)
	assert.Equal(t, "09:30 AM", label.String())

	_, err = NewSlotLabelFromString("")
	assert.Error(t, err)

	_, err = NewSlotLabelFromString("not a time")
	assert.Error(t, err)
}
