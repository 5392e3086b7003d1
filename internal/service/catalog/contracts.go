package catalog

import (
	"context"

	"github.com/schnittwerk/SW-SchedulingService/internal/domain"
)

// SalonRepository интерфейс репозитория салона
type SalonRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Salon, error)
}

// CatalogRepository интерфейс репозитория мастеров и услуг
type CatalogRepository interface {
	ListActiveStylists(ctx context.Context, salonID string) ([]*domain.Stylist, error)
	CreateStylist(ctx context.Context, st *domain.Stylist) (*domain.Stylist, error)
	ListActiveServices(ctx context.Context, salonID string) ([]*domain.Service, error)
	CreateService(ctx context.Context, svc *domain.Service) (*domain.Service, error)
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
