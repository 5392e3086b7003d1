package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentStatus_CanTransitionTo(t *testing.T) {
	// confirmed — единственное нетерминальное состояние
	assert.True(t, StatusConfirmed.CanTransitionTo(StatusCompleted))
	assert.True(t, StatusConfirmed.CanTransitionTo(StatusCancelled))
	assert.False(t, StatusConfirmed.CanTransitionTo(StatusConfirmed))

	// Терминальные состояния не допускают никаких переходов
	for _, terminal := range []AppointmentStatus{StatusCompleted, StatusCancelled} {
		for _, next := range []AppointmentStatus{StatusConfirmed, StatusCompleted, StatusCancelled} {
			assert.False(t, terminal.CanTransitionTo(next), "%s -> %s", terminal, next)
		}
	}
}

func TestAppointmentStatus_IsTerminal(t *testing.T) {
	assert.False(t, StatusConfirmed.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
}

func TestParseAppointmentStatus(t *testing.T) {
	status, ok := ParseAppointmentStatus("confirmed")
	assert.True(t, ok)
	assert.Equal(t, StatusConfirmed, status)

	_, ok = ParseAppointmentStatus("pending")
	assert.False(t, ok)

	_, ok = ParseAppointmentStatus("")
	assert.False(t, ok)
}

func TestAppointment_Blocks(t *testing.T) {
	// Завершённая запись продолжает занимать слот, отменённая освобождает
	assert.True(t, (&Appointment{Status: StatusConfirmed}).Blocks())
	assert.True(t, (&Appointment{Status: StatusCompleted}).Blocks())
	assert.False(t, (&Appointment{Status: StatusCancelled}).Blocks())
}

func TestISOWeekday(t *testing.T) {
	monday := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 1, ISOWeekday(monday))

	saturday := time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 6, ISOWeekday(saturday))

	sunday := time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 7, ISOWeekday(sunday))
}
