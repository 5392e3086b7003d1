package get_availability

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/schnittwerk/SW-SchedulingService/internal/api/handlers"
	"github.com/schnittwerk/SW-SchedulingService/internal/domain"
	getAvailability "github.com/schnittwerk/SW-SchedulingService/internal/usecase/get_availability"
)

const (
	msgInvalidDate     = "invalid date format, expected YYYY-MM-DD"
	msgSalonNotFound   = "salon not found"
	msgStylistNotFound = "stylist not found"
	msgServiceNotFound = "service not found"
	msgInvalidRequest  = "invalid request parameters"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/availability/{salonId}/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	salonID := vars["salonId"]

	date, err := time.Parse(domain.DateFormat, vars["date"])
	if err != nil {
		h.logger.Warn("GET /availability - Invalid date %q: %v", vars["date"], err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	req := &getAvailability.Request{
		SalonID: salonID,
		Date:    date,
	}
	if v := r.URL.Query().Get("stylistId"); v != "" {
		req.StylistID = &v
	}
	if v := r.URL.Query().Get("serviceId"); v != "" {
		req.ServiceID = &v
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrSalonNotFound):
			h.logger.Warn("GET /availability - Salon not found: salon=%s", salonID)
			handlers.RespondNotFound(w, msgSalonNotFound)

		case errors.Is(err, getAvailability.ErrStylistNotFound):
			h.logger.Warn("GET /availability - Stylist not found: salon=%s", salonID)
			handlers.RespondNotFound(w, msgStylistNotFound)

		case errors.Is(err, getAvailability.ErrServiceNotFound):
			h.logger.Warn("GET /availability - Service not found: salon=%s", salonID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid request: salon=%s, error=%v", salonID, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("GET /availability - Failed: salon=%s, date=%s, error=%v",
				salonID, vars["date"], err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - salon=%s, date=%s, slots=%d",
		salonID, vars["date"], len(result.AvailableSlots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
