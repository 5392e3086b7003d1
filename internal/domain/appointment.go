package domain

import (
	"time"

	"github.com/schnittwerk/SW-SchedulingService/pkg/types"
)

// AppointmentStatus represents the lifecycle state of an appointment.
type AppointmentStatus string

const (
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// validTransitions is the full transition table of the lifecycle.
// confirmed is the initial state; completed and cancelled are terminal.
var validTransitions = map[AppointmentStatus][]AppointmentStatus{
	StatusConfirmed: {StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
}

// ParseAppointmentStatus validates a raw status string.
func ParseAppointmentStatus(s string) (AppointmentStatus, bool) {
	status := AppointmentStatus(s)
	_, ok := validTransitions[status]
	return status, ok
}

// IsTerminal reports whether no further transitions are allowed.
func (s AppointmentStatus) IsTerminal() bool {
	return len(validTransitions[s]) == 0
}

// CanTransitionTo reports whether the transition s -> next is allowed.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Appointment represents a booked time slot for a stylist.
// EndTime is derived from the service duration at booking time and is never
// recomputed afterwards.
type Appointment struct {
	ID            string
	SalonID       string
	StylistID     string
	ServiceID     string
	CustomerName  string
	CustomerEmail string
	CustomerPhone *string
	Date          time.Time
	StartTime     types.TimeString
	EndTime       types.TimeString
	Status        AppointmentStatus
	Notes         *string
	CreatedAt     time.Time
}

// Blocks reports whether the appointment occupies its stylist's calendar.
// Only cancelled appointments release their interval; completed ones keep
// blocking it.
func (a *Appointment) Blocks() bool {
	return a.Status != StatusCancelled
}

// AppointmentDetails is an appointment joined with the catalog data the
// listing endpoint exposes.
type AppointmentDetails struct {
	Appointment
	ServiceName  string
	ServicePrice float64
	StylistName  string
}

// SalonAppointmentsFilter filters the salon appointment listing.
type SalonAppointmentsFilter struct {
	SalonID string
	Date    *time.Time
	Status  *AppointmentStatus
}

// DayScheduleFilter selects the appointments occupying a calendar date.
// StylistID narrows the schedule to a single stylist; cancelled
// appointments are always excluded.
type DayScheduleFilter struct {
	SalonID   string
	StylistID *string
	Date      time.Time
}
