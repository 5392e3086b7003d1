package create_appointment

import (
	"context"

	"github.com/schnittwerk/SW-SchedulingService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	GetDaySchedule(ctx context.Context, filter domain.DayScheduleFilter) ([]*domain.Appointment, error)
}

// SalonRepository интерфейс репозитория салона
type SalonRepository interface {
	GetWorkingHours(ctx context.Context, salonID string, isoWeekday int) (*domain.WorkingHours, error)
}

// CatalogRepository интерфейс репозитория каталога мастеров и услуг
type CatalogRepository interface {
	GetStylist(ctx context.Context, id string) (*domain.Stylist, error)
	GetService(ctx context.Context, id string) (*domain.Service, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// IDGenerator интерфейс генерации идентификаторов (для тестирования)
type IDGenerator interface {
	NewID() string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
