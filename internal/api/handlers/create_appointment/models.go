package create_appointment

import (
	"time"

	"github.com/schnittwerk/SW-SchedulingService/internal/domain"
	createAppointment "github.com/schnittwerk/SW-SchedulingService/internal/usecase/create_appointment"
	"github.com/schnittwerk/SW-SchedulingService/pkg/types"
)

// CreateAppointmentRequest HTTP запрос на создание записи
type CreateAppointmentRequest struct {
	SalonID         string  `json:"salonId"`
	StylistID       string  `json:"stylistId"`
	ServiceID       string  `json:"serviceId"`
	CustomerName    string  `json:"customerName"`
	CustomerEmail   string  `json:"customerEmail"`
	CustomerPhone   *string `json:"customerPhone,omitempty"`
	AppointmentDate string  `json:"appointmentDate"` // YYYY-MM-DD
	StartTime       string  `json:"startTime"`       // HH:MM
	Notes           *string `json:"notes,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// с парсингом даты и времени
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.AppointmentDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		SalonID:       r.SalonID,
		StylistID:     r.StylistID,
		ServiceID:     r.ServiceID,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
		Date:          date,
		StartTime:     startTime,
		Notes:         r.Notes,
	}, nil
}

// AppointmentPayload созданная запись в теле ответа
type AppointmentPayload struct {
	ID        string           `json:"id"`
	Date      string           `json:"date"`
	StartTime types.TimeString `json:"startTime"`
	EndTime   types.TimeString `json:"endTime"`
	Service   string           `json:"service"`
	Price     float64          `json:"price"`
}

// CreateAppointmentResponse HTTP ответ на создание записи
type CreateAppointmentResponse struct {
	ID          string             `json:"id"`
	Message     string             `json:"message"`
	Appointment AppointmentPayload `json:"appointment"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(r *createAppointment.Response) *CreateAppointmentResponse {
	return &CreateAppointmentResponse{
		ID:      r.ID,
		Message: "Appointment booked successfully",
		Appointment: AppointmentPayload{
			ID:        r.ID,
			Date:      r.Date.Format(domain.DateFormat),
			StartTime: r.StartTime,
			EndTime:   r.EndTime,
			Service:   r.ServiceName,
			Price:     r.ServicePrice,
		},
	}
}
