package get_salon

import (
	"context"

	"github.com/schnittwerk/SW-SchedulingService/internal/service/catalog/models"
)

type CatalogService interface {
	GetSalon(ctx context.Context, salonID string) (*models.SalonResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
