package domain

import (
	"github.com/schnittwerk/SW-SchedulingService/pkg/types"
)

// GenerateTimeSlots produces the candidate start times between open and
// close at a fixed step. The sequence is open, open+step, open+2*step, ...
// and stops strictly before close: every slot start s satisfies
// open <= s < close. Whether a slot's end also fits before close is the
// caller's concern (it depends on the chosen service duration).
func GenerateTimeSlots(open, close types.TimeString, stepMinutes int) ([]types.TimeString, error) {
	if err := open.Validate(); err != nil {
		return nil, err
	}
	if err := close.Validate(); err != nil {
		return nil, err
	}

	slots := make([]types.TimeString, 0)
	current := open

	for current.IsBefore(close) {
		slots = append(slots, current)

		next, err := current.AddMinutes(stepMinutes)
		if err != nil {
			return nil, err
		}
		// AddMinutes wraps at midnight; a wrapped value would loop forever
		if !next.IsAfter(current) {
			break
		}
		current = next
	}

	return slots, nil
}

// Overlaps is the half-open interval overlap test: [aStart, aEnd) and
// [bStart, bEnd) overlap iff aStart < bEnd && bStart < aEnd. Intervals that
// touch at a boundary do not overlap, so back-to-back appointments are
// admissible.
func Overlaps(aStart, aEnd, bStart, bEnd types.TimeString) bool {
	return aStart.IsBefore(bEnd) && bStart.IsBefore(aEnd)
}

// IsOnSlotGrid reports whether start lies on the slot grid anchored at open
// with the given step.
func IsOnSlotGrid(open, start types.TimeString, stepMinutes int) bool {
	openMin, err := open.MinutesOfDay()
	if err != nil {
		return false
	}
	startMin, err := start.MinutesOfDay()
	if err != nil {
		return false
	}
	if startMin < openMin {
		return false
	}
	return (startMin-openMin)%stepMinutes == 0
}
