package get_availability

import (
	"time"

	"github.com/schnittwerk/SW-SchedulingService/internal/domain"
	"github.com/schnittwerk/SW-SchedulingService/pkg/types"
)

// Request модель запроса доступных слотов на дату
type Request struct {
	SalonID   string    // ID салона
	Date      time.Time // Дата (без времени)
	StylistID *string   // Ограничить выдачу одним мастером (опционально)
	ServiceID *string   // Считать доступность под конкретную услугу (опционально)
}

// WorkingWindow рабочее окно салона на день
type WorkingWindow struct {
	Open  types.TimeString
	Close types.TimeString
}

// Response модель ответа с доступностью на дату
type Response struct {
	Available      bool
	Message        string // Причина недоступности (салон закрыт)
	Date           time.Time
	WorkingHours   *WorkingWindow
	Stylists       []*domain.Stylist
	Services       []*domain.Service
	AvailableSlots []types.TimeString
}
