package get_salon_appointments

import (
	"context"

	"github.com/schnittwerk/SW-SchedulingService/internal/service/appointments/models"
)

type AppointmentsService interface {
	ListBySalon(ctx context.Context, req *models.ListSalonAppointmentsRequest) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
