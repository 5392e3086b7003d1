package list_stylists

import (
	"context"

	"github.com/schnittwerk/SW-SchedulingService/internal/service/catalog/models"
)

type CatalogService interface {
	ListStylists(ctx context.Context, salonID string) (*models.StylistListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
