package models

import (
	"time"

	"github.com/schnittwerk/SW-SchedulingService/internal/domain"
)

// Request модели

// CreateStylistRequest запрос на добавление мастера
type CreateStylistRequest struct {
	SalonID     string  `json:"salonId"`
	Name        string  `json:"name"`
	Email       *string `json:"email,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Specialties *string `json:"specialties,omitempty"`
}

// CreateServiceRequest запрос на добавление услуги
type CreateServiceRequest struct {
	SalonID         string  `json:"salonId"`
	Name            string  `json:"name"`
	Description     *string `json:"description,omitempty"`
	DurationMinutes int     `json:"duration"`
	Price           float64 `json:"price"`
	Category        *string `json:"category,omitempty"`
}

// Response модели

// SalonResponse контактная карточка салона
type SalonResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Address      *string   `json:"address,omitempty"`
	Phone        *string   `json:"phone,omitempty"`
	Email        *string   `json:"email,omitempty"`
	OpeningHours *string   `json:"openingHours,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// StylistResponse мастер салона
type StylistResponse struct {
	ID          string    `json:"id"`
	SalonID     string    `json:"salonId"`
	Name        string    `json:"name"`
	Email       *string   `json:"email,omitempty"`
	Phone       *string   `json:"phone,omitempty"`
	Specialties *string   `json:"specialties,omitempty"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ServiceResponse услуга салона
type ServiceResponse struct {
	ID              string    `json:"id"`
	SalonID         string    `json:"salonId"`
	Name            string    `json:"name"`
	Description     *string   `json:"description,omitempty"`
	DurationMinutes int       `json:"duration"`
	Price           float64   `json:"price"`
	Category        *string   `json:"category,omitempty"`
	IsActive        bool      `json:"isActive"`
	CreatedAt       time.Time `json:"createdAt"`
}

// StylistListResponse список активных мастеров
type StylistListResponse struct {
	Stylists []StylistResponse `json:"stylists"`
	Total    int               `json:"total"`
}

// ServiceListResponse список активных услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
	Total    int               `json:"total"`
}

// FromDomainSalon конвертирует domain салон в response
func FromDomainSalon(s *domain.Salon) *SalonResponse {
	return &SalonResponse{
		ID:           s.ID,
		Name:         s.Name,
		Address:      s.Address,
		Phone:        s.Phone,
		Email:        s.Email,
		OpeningHours: s.OpeningHours,
		CreatedAt:    s.CreatedAt,
	}
}

// FromDomainStylist конвертирует domain мастера в response
func FromDomainStylist(st *domain.Stylist) StylistResponse {
	return StylistResponse{
		ID:          st.ID,
		SalonID:     st.SalonID,
		Name:        st.Name,
		Email:       st.Email,
		Phone:       st.Phone,
		Specialties: st.Specialties,
		IsActive:    st.IsActive,
		CreatedAt:   st.CreatedAt,
	}
}

// FromDomainStylistList конвертирует список мастеров в response
func FromDomainStylistList(list []*domain.Stylist) *StylistListResponse {
	resp := &StylistListResponse{
		Stylists: make([]StylistResponse, 0, len(list)),
		Total:    len(list),
	}
	for _, st := range list {
		resp.Stylists = append(resp.Stylists, FromDomainStylist(st))
	}
	return resp
}

// FromDomainService конвертирует domain услугу в response
func FromDomainService(svc *domain.Service) ServiceResponse {
	return ServiceResponse{
		ID:              svc.ID,
		SalonID:         svc.SalonID,
		Name:            svc.Name,
		Description:     svc.Description,
		DurationMinutes: svc.DurationMinutes,
		Price:           svc.Price,
		Category:        svc.Category,
		IsActive:        svc.IsActive,
		CreatedAt:       svc.CreatedAt,
	}
}

// FromDomainServiceList конвертирует список услуг в response
func FromDomainServiceList(list []*domain.Service) *ServiceListResponse {
	resp := &ServiceListResponse{
		Services: make([]ServiceResponse, 0, len(list)),
		Total:    len(list),
	}
	for _, svc := range list {
		resp.Services = append(resp.Services, FromDomainService(svc))
	}
	return resp
}
