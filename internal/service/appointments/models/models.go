package models

import (
	"errors"
	"time"

	"github.com/schnittwerk/SW-SchedulingService/internal/domain"
	"github.com/schnittwerk/SW-SchedulingService/pkg/types"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// Request модели

// ListSalonAppointmentsRequest запрос на список записей салона
type ListSalonAppointmentsRequest struct {
	SalonID string     `json:"salonId"`
	Date    *time.Time `json:"date,omitempty"`   // Фильтр по дате (опционально)
	Status  *string    `json:"status,omitempty"` // Фильтр по статусу (опционально)
}

// UpdateStatusRequest запрос на смену статуса записи
type UpdateStatusRequest struct {
	AppointmentID string  `json:"appointmentId"`
	Status        string  `json:"status"`
	Notes         *string `json:"notes,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListSalonAppointmentsRequest) ToDomainFilter() (domain.SalonAppointmentsFilter, error) {
	filter := domain.SalonAppointmentsFilter{
		SalonID: r.SalonID,
		Date:    r.Date,
	}

	if r.Status != nil {
		status, ok := domain.ParseAppointmentStatus(*r.Status)
		if !ok {
			return filter, ErrInvalidStatus
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// AppointmentResponse запись с данными услуги и мастера
type AppointmentResponse struct {
	ID            string           `json:"id"`
	SalonID       string           `json:"salonId"`
	StylistID     string           `json:"stylistId"`
	ServiceID     string           `json:"serviceId"`
	CustomerName  string           `json:"customerName"`
	CustomerEmail string           `json:"customerEmail"`
	CustomerPhone *string          `json:"customerPhone,omitempty"`
	Date          string           `json:"appointmentDate"`
	StartTime     types.TimeString `json:"startTime"`
	EndTime       types.TimeString `json:"endTime"`
	Status        string           `json:"status"`
	Notes         *string          `json:"notes,omitempty"`
	ServiceName   string           `json:"serviceName"`
	ServicePrice  float64          `json:"servicePrice"`
	StylistName   string           `json:"stylistName"`
	CreatedAt     time.Time        `json:"createdAt"`
}

// AppointmentListResponse список записей салона
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

// StatusUpdateResponse результат смены статуса
type StatusUpdateResponse struct {
	ID      string `json:"id"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// FromDomainDetails конвертирует domain запись с данными каталога в response
func FromDomainDetails(a *domain.AppointmentDetails) AppointmentResponse {
	return AppointmentResponse{
		ID:            a.ID,
		SalonID:       a.SalonID,
		StylistID:     a.StylistID,
		ServiceID:     a.ServiceID,
		CustomerName:  a.CustomerName,
		CustomerEmail: a.CustomerEmail,
		CustomerPhone: a.CustomerPhone,
		Date:          a.Date.Format(domain.DateFormat),
		StartTime:     a.StartTime,
		EndTime:       a.EndTime,
		Status:        string(a.Status),
		Notes:         a.Notes,
		ServiceName:   a.ServiceName,
		ServicePrice:  a.ServicePrice,
		StylistName:   a.StylistName,
		CreatedAt:     a.CreatedAt,
	}
}

// FromDomainDetailsList конвертирует список domain записей в response
func FromDomainDetailsList(list []*domain.AppointmentDetails) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(list)),
		Total:        len(list),
	}
	for _, a := range list {
		resp.Appointments = append(resp.Appointments, FromDomainDetails(a))
	}
	return resp
}
