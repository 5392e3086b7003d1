package update_appointment_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/schnittwerk/SW-SchedulingService/internal/api/handlers"
	"github.com/schnittwerk/SW-SchedulingService/internal/service/appointments"
	"github.com/schnittwerk/SW-SchedulingService/internal/service/appointments/models"
)

const (
	msgInvalidRequestBody  = "invalid request body"
	msgAppointmentNotFound = "Appointment not found"
	msgInvalidStatus       = "unknown appointment status"
	msgInvalidTransition   = "appointment status can no longer be changed"
	msgInvalidRequest      = "invalid request parameters"
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

// Handle PATCH /api/appointments/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appointmentID := vars["id"]

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateStatus(r.Context(), &models.UpdateStatusRequest{
		AppointmentID: appointmentID,
		Status:        req.Status,
		Notes:         req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments - Not found: id=%s", appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, appointments.ErrInvalidStatus):
			h.logger.Warn("PATCH /appointments - Unknown status %q: id=%s", req.Status, appointmentID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, appointments.ErrInvalidTransition):
			h.logger.Warn("PATCH /appointments - Invalid transition to %q: id=%s", req.Status, appointmentID)
			handlers.RespondConflict(w, msgInvalidTransition)

		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("PATCH /appointments - Invalid request: id=%s, error=%v", appointmentID, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("PATCH /appointments - Failed: id=%s, error=%v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments - id=%s moved to status=%s", appointmentID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
