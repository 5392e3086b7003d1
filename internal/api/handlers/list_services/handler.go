package list_services

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/schnittwerk/SW-SchedulingService/internal/api/handlers"
	"github.com/schnittwerk/SW-SchedulingService/internal/service/catalog"
)

const (
	msgSalonNotFound = "salon not found"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/salon/{salonId}/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	salonID := vars["salonId"]

	result, err := h.service.ListServices(r.Context(), salonID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrSalonNotFound):
			h.logger.Warn("GET /salon/services - Salon not found: salon=%s", salonID)
			handlers.RespondNotFound(w, msgSalonNotFound)

		default:
			h.logger.Error("GET /salon/services - Failed: salon=%s, error=%v", salonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /salon/services - salon=%s, total=%d", salonID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
