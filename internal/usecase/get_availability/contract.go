package get_availability

import (
	"context"

	"github.com/schnittwerk/SW-SchedulingService/internal/domain"
)

// SalonRepository интерфейс репозитория салона
type SalonRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Salon, error)
	// GetWorkingHours получает рабочие часы на день недели (ISO: Пн=1..Вс=7)
	GetWorkingHours(ctx context.Context, salonID string, isoWeekday int) (*domain.WorkingHours, error)
}

// CatalogRepository интерфейс репозитория каталога мастеров и услуг
type CatalogRepository interface {
	ListActiveStylists(ctx context.Context, salonID string) ([]*domain.Stylist, error)
	ListActiveServices(ctx context.Context, salonID string) ([]*domain.Service, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetDaySchedule(ctx context.Context, filter domain.DayScheduleFilter) ([]*domain.Appointment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
