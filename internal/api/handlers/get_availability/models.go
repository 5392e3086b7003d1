package get_availability

import (
	"github.com/schnittwerk/SW-SchedulingService/internal/domain"
	getAvailability "github.com/schnittwerk/SW-SchedulingService/internal/usecase/get_availability"
	"github.com/schnittwerk/SW-SchedulingService/pkg/types"
)

// WorkingHoursResponse рабочее окно салона на запрошенную дату
type WorkingHoursResponse struct {
	Open  types.TimeString `json:"open"`
	Close types.TimeString `json:"close"`
}

// StylistResponse мастер в выдаче доступности
type StylistResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Specialties *string `json:"specialties,omitempty"`
}

// ServiceResponse услуга в выдаче доступности
type ServiceResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Duration int     `json:"duration"`
	Price    float64 `json:"price"`
}

// AvailabilityResponse HTTP ответ с доступностью на дату
type AvailabilityResponse struct {
	Available      bool                  `json:"available"`
	Message        string                `json:"message,omitempty"`
	Date           string                `json:"date"`
	WorkingHours   *WorkingHoursResponse `json:"workingHours,omitempty"`
	Stylists       []StylistResponse     `json:"stylists"`
	Services       []ServiceResponse     `json:"services"`
	AvailableSlots []types.TimeString    `json:"availableSlots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(r *getAvailability.Response) *AvailabilityResponse {
	resp := &AvailabilityResponse{
		Available:      r.Available,
		Message:        r.Message,
		Date:           r.Date.Format(domain.DateFormat),
		Stylists:       make([]StylistResponse, 0, len(r.Stylists)),
		Services:       make([]ServiceResponse, 0, len(r.Services)),
		AvailableSlots: r.AvailableSlots,
	}
	if resp.AvailableSlots == nil {
		resp.AvailableSlots = []types.TimeString{}
	}

	if r.WorkingHours != nil {
		resp.WorkingHours = &WorkingHoursResponse{
			Open:  r.WorkingHours.Open,
			Close: r.WorkingHours.Close,
		}
	}

	for _, st := range r.Stylists {
		resp.Stylists = append(resp.Stylists, StylistResponse{
			ID:          st.ID,
			Name:        st.Name,
			Specialties: st.Specialties,
		})
	}

	for _, svc := range r.Services {
		resp.Services = append(resp.Services, ServiceResponse{
			ID:       svc.ID,
			Name:     svc.Name,
			Duration: svc.DurationMinutes,
			Price:    svc.Price,
		})
	}

	return resp
}
