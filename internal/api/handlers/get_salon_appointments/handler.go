package get_salon_appointments

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/schnittwerk/SW-SchedulingService/internal/api/handlers"
	"github.com/schnittwerk/SW-SchedulingService/internal/domain"
	"github.com/schnittwerk/SW-SchedulingService/internal/service/appointments"
	"github.com/schnittwerk/SW-SchedulingService/internal/service/appointments/models"
)

const (
	msgInvalidDate    = "invalid date filter, expected YYYY-MM-DD"
	msgInvalidRequest = "invalid request parameters"
	msgSalonNotFound  = "salon not found"
)

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/salon/{salonId}/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	salonID := vars["salonId"]

	req := &models.ListSalonAppointmentsRequest{SalonID: salonID}

	if v := r.URL.Query().Get("date"); v != "" {
		date, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			h.logger.Warn("GET /salon/appointments - Invalid date %q: %v", v, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Date = &date
	}
	if v := r.URL.Query().Get("status"); v != "" {
		req.Status = &v
	}

	result, err := h.service.ListBySalon(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrSalonNotFound):
			h.logger.Warn("GET /salon/appointments - Salon not found: salon=%s", salonID)
			handlers.RespondNotFound(w, msgSalonNotFound)

		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /salon/appointments - Invalid request: salon=%s, error=%v", salonID, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("GET /salon/appointments - Failed: salon=%s, error=%v", salonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /salon/appointments - salon=%s, total=%d", salonID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
