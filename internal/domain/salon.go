package domain

import (
	"time"

	"github.com/schnittwerk/SW-SchedulingService/pkg/types"
)

// Salon represents the single service location owning all scheduling data.
type Salon struct {
	ID           string
	Name         string
	Address      *string
	Phone        *string
	Email        *string
	OpeningHours *string // informational JSON blob shown on the contact card
	CreatedAt    time.Time
}

// Stylist is the schedulable resource; double-booking protection is scoped
// per stylist per date.
type Stylist struct {
	ID          string
	SalonID     string
	Name        string
	Email       *string
	Phone       *string
	Specialties *string
	IsActive    bool
	CreatedAt   time.Time
}

// Service defines how long a booked appointment occupies the stylist.
type Service struct {
	ID              string
	SalonID         string
	Name            string
	Description     *string
	DurationMinutes int
	Price           float64
	Category        *string
	IsActive        bool
	CreatedAt       time.Time
}

// WorkingHours is the weekly template row for one weekday.
// DayOfWeek uses ISO numbering: Monday=1 .. Sunday=7. A missing row for a
// weekday means the salon is closed that day.
type WorkingHours struct {
	ID           string
	SalonID      string
	DayOfWeek    int
	OpenTime     types.TimeString
	CloseTime    types.TimeString
	IsWorkingDay bool
	CreatedAt    time.Time
}

// IsOpen reports whether the day accepts bookings at all.
func (w *WorkingHours) IsOpen() bool {
	return w != nil && w.IsWorkingDay
}

// ISOWeekday returns the ISO weekday number (Monday=1 .. Sunday=7) of t.
func ISOWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}
