package domain

// Slot grid configuration
const (
	// SlotStepMinutes is the fixed spacing of the candidate slot grid.
	SlotStepMinutes = 30
)

// Business validation constants
const (
	MinServiceDurationMinutes = 5
	MaxServiceDurationMinutes = 480 // 8 hours
	MaxNotesLength            = 500
	MaxCustomerNameLength     = 200
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
