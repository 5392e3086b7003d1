package get_availability

import (
	"github.com/schnittwerk/SW-SchedulingService/internal/domain"
	"github.com/schnittwerk/SW-SchedulingService/pkg/types"
)

// filterAvailableSlots оставляет из сетки только те слоты, которые может
// взять хотя бы один из кандидатов-мастеров с учётом длительности услуги.
//
// Слот s занят для мастера, если интервал [s, s+duration) пересекается с
// любой его блокирующей записью. Пересечение строгое: запись, кончающаяся
// ровно в s, или начинающаяся ровно в s+duration, слот не занимает.
func filterAvailableSlots(
	grid []types.TimeString,
	durationMinutes int,
	stylists []*domain.Stylist,
	appointments []*domain.Appointment,
) ([]types.TimeString, error) {
	// Группируем записи по мастерам один раз
	byStylist := make(map[string][]*domain.Appointment, len(stylists))
	for _, appt := range appointments {
		if !appt.Blocks() {
			continue
		}
		byStylist[appt.StylistID] = append(byStylist[appt.StylistID], appt)
	}

	available := make([]types.TimeString, 0, len(grid))

	for _, slot := range grid {
		slotEnd, err := slot.AddMinutes(durationMinutes)
		if err != nil {
			return nil, err
		}

		for _, stylist := range stylists {
			if stylistIsFree(slot, slotEnd, byStylist[stylist.ID]) {
				available = append(available, slot)
				break
			}
		}
	}

	return available, nil
}

// stylistIsFree проверяет, свободен ли мастер в интервале [start, end)
func stylistIsFree(start, end types.TimeString, appointments []*domain.Appointment) bool {
	for _, appt := range appointments {
		if domain.Overlaps(start, end, appt.StartTime, appt.EndTime) {
			return false
		}
	}
	return true
}

// resolveDuration выбирает длительность для фильтрации слотов.
// Если услуга выбрана — её длительность; иначе минимальная длительность
// среди активных услуг, чтобы слот считался доступным, когда на него
// влезает хотя бы самая короткая услуга.
func resolveDuration(selected *domain.Service, services []*domain.Service) int {
	if selected != nil {
		return selected.DurationMinutes
	}

	duration := 0
	for _, svc := range services {
		if duration == 0 || svc.DurationMinutes < duration {
			duration = svc.DurationMinutes
		}
	}
	if duration == 0 {
		duration = domain.SlotStepMinutes
	}
	return duration
}
