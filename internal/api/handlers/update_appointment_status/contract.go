package update_appointment_status

import (
	"context"

	"github.com/schnittwerk/SW-SchedulingService/internal/service/appointments/models"
)

type AppointmentsService interface {
	UpdateStatus(ctx context.Context, req *models.UpdateStatusRequest) (*models.StatusUpdateResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
