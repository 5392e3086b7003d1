package create_stylist

import (
	"context"

	"github.com/schnittwerk/SW-SchedulingService/internal/service/catalog/models"
)

type CatalogService interface {
	CreateStylist(ctx context.Context, req *models.CreateStylistRequest) (*models.StylistResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
