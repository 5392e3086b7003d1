package appointments

import (
	"context"

	"github.com/schnittwerk/SW-SchedulingService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)
	ListBySalon(ctx context.Context, filter domain.SalonAppointmentsFilter) ([]*domain.AppointmentDetails, error)
	UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus, notes *string) error
}

// SalonRepository интерфейс репозитория салона
type SalonRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Salon, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
