package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schnittwerk/SW-SchedulingService/pkg/types"
)

func TestGenerateTimeSlots(t *testing.T) {
	slots, err := GenerateTimeSlots("09:00", "11:00", 30)
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"09:00", "09:30", "10:00", "10:30"}, slots)
}

func TestGenerateTimeSlots_LastSlotStartsBeforeClose(t *testing.T) {
	// Последний слот начинается до закрытия, даже если его конец выходит
	// за рабочее окно
	slots, err := GenerateTimeSlots("09:00", "18:00", 30)
	require.NoError(t, err)
	require.NotEmpty(t, slots)
	assert.Equal(t, types.TimeString("17:30"), slots[len(slots)-1])
	assert.Len(t, slots, 18)

	for _, s := range slots {
		assert.False(t, s.IsBefore("09:00"), "slot %s before open", s)
		assert.True(t, s.IsBefore("18:00"), "slot %s not before close", s)
	}
}

func TestGenerateTimeSlots_EmptyWindow(t *testing.T) {
	slots, err := GenerateTimeSlots("18:00", "18:00", 30)
	require.NoError(t, err)
	assert.Empty(t, slots)

	slots, err = GenerateTimeSlots("18:00", "09:00", 30)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateTimeSlots_InvalidBounds(t *testing.T) {
	_, err := GenerateTimeSlots("open", "18:00", 30)
	assert.Error(t, err)

	_, err = GenerateTimeSlots("09:00", "", 30)
	assert.Error(t, err)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name         string
		aStart, aEnd types.TimeString
		bStart, bEnd types.TimeString
		want         bool
	}{
		{"identical", "09:00", "10:00", "09:00", "10:00", true},
		{"partial overlap", "09:00", "10:00", "09:30", "10:30", true},
		{"contained", "09:00", "12:00", "10:00", "11:00", true},
		{"disjoint", "09:00", "10:00", "11:00", "12:00", false},
		{"touching end-to-start", "09:00", "10:00", "10:00", "11:00", false},
		{"touching start-to-end", "10:00", "11:00", "09:00", "10:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			// Симметрично
			assert.Equal(t, tt.want, Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}

func TestIsOnSlotGrid(t *testing.T) {
	assert.True(t, IsOnSlotGrid("09:00", "09:00", 30))
	assert.True(t, IsOnSlotGrid("09:00", "10:30", 30))
	assert.False(t, IsOnSlotGrid("09:00", "10:15", 30))
	assert.False(t, IsOnSlotGrid("09:00", "08:30", 30), "before open")

	// Сетка привязана к открытию, не к целому часу
	assert.True(t, IsOnSlotGrid("09:15", "10:15", 30))
	assert.False(t, IsOnSlotGrid("09:15", "10:00", 30))
}
