package list_services

import (
	"context"

	"github.com/schnittwerk/SW-SchedulingService/internal/service/catalog/models"
)

type CatalogService interface {
	ListServices(ctx context.Context, salonID string) (*models.ServiceListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
