package create_stylist

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/schnittwerk/SW-SchedulingService/internal/api/handlers"
	"github.com/schnittwerk/SW-SchedulingService/internal/service/catalog"
	"github.com/schnittwerk/SW-SchedulingService/internal/service/catalog/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgSalonNotFound      = "salon not found"
	msgInvalidRequest     = "invalid stylist data"
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

// Handle POST /api/salon/{salonId}/stylists
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	salonID := vars["salonId"]

	var req CreateStylistRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /salon/stylists - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateStylist(r.Context(), &models.CreateStylistRequest{
		SalonID:     salonID,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Specialties: req.Specialties,
	})
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrSalonNotFound):
			h.logger.Warn("POST /salon/stylists - Salon not found: salon=%s", salonID)
			handlers.RespondNotFound(w, msgSalonNotFound)

		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("POST /salon/stylists - Invalid request: salon=%s, error=%v", salonID, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("POST /salon/stylists - Failed: salon=%s, error=%v", salonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /salon/stylists - Created stylist id=%s in salon=%s", result.ID, salonID)
	handlers.RespondJSON(w, http.StatusCreated, CreateStylistResponse{
		ID:      result.ID,
		Message: "Stylist created successfully",
	})
}
