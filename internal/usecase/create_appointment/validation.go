package create_appointment

import (
	"fmt"
	"strings"

	"github.com/schnittwerk/SW-SchedulingService/internal/domain"
	"github.com/schnittwerk/SW-SchedulingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SalonID == "" {
		return fmt.Errorf("%w: salonID is required", ErrInvalidInput)
	}
	if req.StylistID == "" {
		return fmt.Errorf("%w: stylistID is required", ErrInvalidInput)
	}
	if req.ServiceID == "" {
		return fmt.Errorf("%w: serviceID is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}
	if len(req.CustomerName) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customerName is too long", ErrInvalidInput)
	}

	if strings.TrimSpace(req.CustomerEmail) == "" {
		return fmt.Errorf("%w: customerEmail is required", ErrInvalidInput)
	}
	if !strings.Contains(req.CustomerEmail, "@") {
		return fmt.Errorf("%w: customerEmail is malformed", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: appointmentDate is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes are too long", ErrInvalidInput)
	}

	return nil
}

// validateSlot проверяет, что время начала лежит в рабочем окне и на сетке
// слотов. Конец записи проверками не ограничивается: последний слот сетки
// может закончиться позже закрытия — это осознанное свойство модели.
func validateSlot(start types.TimeString, hours *domain.WorkingHours) error {
	if start.IsBefore(hours.OpenTime) || !start.IsBefore(hours.CloseTime) {
		return fmt.Errorf("%w: start %s is outside working hours %s-%s",
			ErrInvalidTimeSlot, start, hours.OpenTime, hours.CloseTime)
	}

	if !domain.IsOnSlotGrid(hours.OpenTime, start, domain.SlotStepMinutes) {
		return fmt.Errorf("%w: start %s is not aligned to the %d-minute grid",
			ErrInvalidTimeSlot, start, domain.SlotStepMinutes)
	}

	return nil
}

// findOverlap ищет первую блокирующую запись, пересекающуюся с интервалом
// [start, end). Пересечение строгое: соприкасающиеся встык записи допустимы.
func findOverlap(start, end types.TimeString, schedule []*domain.Appointment) *domain.Appointment {
	for _, appt := range schedule {
		if !appt.Blocks() {
			continue
		}
		if domain.Overlaps(start, end, appt.StartTime, appt.EndTime) {
			return appt
		}
	}
	return nil
}
