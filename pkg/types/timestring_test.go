package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeString_Validate(t *testing.T) {
	valid := []string{"00:00", "09:00", "12:30", "23:59"}
	for _, s := range valid {
		assert.NoError(t, TimeString(s).Validate(), s)
	}

	invalid := []string{"", "9:00", "24:00", "12:60", "12-30", "12:30:00", "noon"}
	for _, s := range invalid {
		assert.Error(t, TimeString(s).Validate(), s)
	}
}

func TestTimeString_MinutesOfDay(t *testing.T) {
	min, err := TimeString("09:30").MinutesOfDay()
	require.NoError(t, err)
	assert.Equal(t, 570, min)

	min, err = TimeString("00:00").MinutesOfDay()
	require.NoError(t, err)
	assert.Equal(t, 0, min)
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := TimeString("09:00").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:30"), got)

	// Перенос через полночь
	got, err = TimeString("23:30").AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("00:30"), got)
}

func TestTimeString_Comparison(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("09:30"))
	assert.False(t, TimeString("09:30").IsBefore("09:30"))
	assert.True(t, TimeString("18:00").IsAfter("09:00"))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("09:30"))
	assert.Equal(t, TimeString("09:30"), ts)

	// Postgres TIME приходит как HH:MM:SS
	require.NoError(t, ts.Scan("14:00:00"))
	assert.Equal(t, TimeString("14:00"), ts)

	require.NoError(t, ts.Scan([]byte("16:30")))
	assert.Equal(t, TimeString("16:30"), ts)

	require.NoError(t, ts.Scan(time.Date(2025, 1, 1, 11, 15, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("11:15"), ts)

	assert.Error(t, ts.Scan(42))
}

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("10:00")
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:00"), ts)

	_, err = NewTimeStringFromString("10am")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}
