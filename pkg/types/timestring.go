package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// TimeString represents a time of day in "HH:MM" format.
// It is the wire and storage format for slot boundaries and working hours.
type TimeString string

const timeLayout = "15:04"

var (
	// ErrInvalidFormat возвращается при некорректном формате времени
	ErrInvalidFormat = errors.New("types: invalid time string format, expected HH:MM")
)

// NewTimeString creates a TimeString from the time-of-day part of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString parses s and validates the HH:MM format.
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// Validate checks that the value is a well-formed HH:MM time.
func (t TimeString) Validate() error {
	if _, err := time.Parse(timeLayout, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidFormat, string(t))
	}
	return nil
}

// String returns the raw HH:MM representation.
func (t TimeString) String() string {
	return string(t)
}

// IsZero returns true for the empty value.
func (t TimeString) IsZero() bool {
	return t == ""
}

// MinutesOfDay returns the number of minutes since midnight.
func (t TimeString) MinutesOfDay() (int, error) {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, string(t))
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// AddMinutes returns the time shifted forward by the given number of minutes.
// The result wraps within a single day.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, string(t))
	}
	return TimeString(parsed.Add(time.Duration(minutes) * time.Minute).Format(timeLayout)), nil
}

// IsBefore reports whether t is strictly earlier than other.
// Lexicographic comparison is valid for zero-padded HH:MM values.
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter reports whether t is strictly later than other.
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// Value implements driver.Valuer.
func (t TimeString) Value() (driver.Value, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

// Scan implements sql.Scanner. Accepts TEXT, []byte and TIME column values.
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		*t = TimeString(v)
	case []byte:
		*t = TimeString(v)
	case time.Time:
		*t = NewTimeString(v)
	case nil:
		*t = ""
		return nil
	default:
		return fmt.Errorf("types: cannot scan %T into TimeString", src)
	}
	// Postgres TIME columns come back as HH:MM:SS, trim to HH:MM
	if len(*t) > 5 {
		*t = (*t)[:5]
	}
	return t.Validate()
}
