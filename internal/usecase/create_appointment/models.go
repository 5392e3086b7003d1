package create_appointment

import (
	"time"

	"github.com/schnittwerk/SW-SchedulingService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	SalonID       string
	StylistID     string
	ServiceID     string
	CustomerName  string
	CustomerEmail string
	CustomerPhone *string
	Date          time.Time        // Дата записи (без времени)
	StartTime     types.TimeString // Время начала ("10:00")
	Notes         *string
}

// Response модель ответа с созданной записью
type Response struct {
	ID            string
	SalonID       string
	StylistID     string
	ServiceID     string
	CustomerName  string
	CustomerEmail string
	CustomerPhone *string
	Date          time.Time
	StartTime     types.TimeString
	EndTime       types.TimeString // Всегда StartTime + длительность услуги
	Status        string
	Notes         *string

	// Данные услуги на момент бронирования
	ServiceName  string
	ServicePrice float64

	CreatedAt time.Time
}
