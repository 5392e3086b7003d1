package create_appointment

import (
	"errors"
	"net/http"

	"github.com/schnittwerk/SW-SchedulingService/internal/api/handlers"
	createAppointment "github.com/schnittwerk/SW-SchedulingService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDateOrTime  = "invalid appointment date or start time, expected YYYY-MM-DD and HH:MM"
	msgServiceNotFound    = "Invalid service selected"
	msgStylistNotFound    = "stylist not found"
	msgSalonClosed        = "Salon is closed on this date"
	msgInvalidTimeSlot    = "requested start time is not a bookable slot"
	msgSlotConflict       = "This time slot is already booked"
	msgInvalidInput       = "invalid appointment data"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse date/time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrSlotConflict):
			h.logger.Warn("POST /appointments - Slot conflict: stylist=%s, date=%s, time=%s",
				req.StylistID, req.AppointmentDate, req.StartTime)
			handlers.RespondBadRequest(w, msgSlotConflict)

		case errors.Is(err, createAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found: service=%s", req.ServiceID)
			handlers.RespondBadRequest(w, msgServiceNotFound)

		case errors.Is(err, createAppointment.ErrStylistNotFound):
			h.logger.Warn("POST /appointments - Stylist not found: stylist=%s", req.StylistID)
			handlers.RespondNotFound(w, msgStylistNotFound)

		case errors.Is(err, createAppointment.ErrSalonClosed):
			h.logger.Warn("POST /appointments - Salon closed: salon=%s, date=%s", req.SalonID, req.AppointmentDate)
			handlers.RespondBadRequest(w, msgSalonClosed)

		case errors.Is(err, createAppointment.ErrInvalidTimeSlot):
			h.logger.Warn("POST /appointments - Invalid time slot: time=%s", req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: stylist=%s, error=%v",
				req.StylistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created: id=%s, stylist=%s, date=%s %s-%s",
		result.ID, req.StylistID, req.AppointmentDate, result.StartTime, result.EndTime)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
