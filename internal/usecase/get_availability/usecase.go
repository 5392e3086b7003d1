package get_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/schnittwerk/SW-SchedulingService/internal/domain"
	salonRepo "github.com/schnittwerk/SW-SchedulingService/internal/infra/storage/salon"
)

const msgClosed = "Salon is closed on this date"

// UseCase use case для расчёта доступных слотов на дату
type UseCase struct {
	salonRepo   SalonRepository
	catalogRepo CatalogRepository
	apptRepo    AppointmentRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	salonRepo SalonRepository,
	catalogRepo CatalogRepository,
	apptRepo AppointmentRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		salonRepo:   salonRepo,
		catalogRepo: catalogRepo,
		apptRepo:    apptRepo,
		logger:      logger,
	}
}

// Execute выполняет use case получения доступности
//
// Слот попадает в выдачу, только если хотя бы один активный мастер свободен
// на интервале [slot, slot+duration). Запрошенные stylistId/serviceId сужают
// расчёт до одного мастера и конкретной длительности.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: salon=%s, date=%s", req.SalonID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование салона
	if _, err := uc.salonRepo.GetByID(ctx, req.SalonID); err != nil {
		if errors.Is(err, salonRepo.ErrSalonNotFound) {
			uc.logger.Warn("GetAvailability: salon id=%s not found", req.SalonID)
			return nil, ErrSalonNotFound
		}
		uc.logger.Error("GetAvailability: failed to get salon id=%s: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: failed to get salon: %v", ErrInternal, err)
	}

	// 3. Рабочие часы на день недели. Отсутствие строки и is_working_day=false
	// трактуются одинаково: салон закрыт, слоты не перечисляются
	hours, err := uc.salonRepo.GetWorkingHours(ctx, req.SalonID, domain.ISOWeekday(req.Date))
	if err != nil && !errors.Is(err, salonRepo.ErrHoursNotConfigured) {
		uc.logger.Error("GetAvailability: failed to get working hours: %v", err)
		return nil, fmt.Errorf("%w: failed to get working hours: %v", ErrInternal, err)
	}

	if hours == nil || !hours.IsOpen() {
		uc.logger.Info("GetAvailability: salon=%s closed on %s", req.SalonID, req.Date.Format(domain.DateFormat))
		return &Response{
			Available: false,
			Message:   msgClosed,
			Date:      req.Date,
		}, nil
	}

	// 4. Активные мастера и услуги салона
	stylists, err := uc.catalogRepo.ListActiveStylists(ctx, req.SalonID)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to list stylists: %v", err)
		return nil, fmt.Errorf("%w: failed to list stylists: %v", ErrInternal, err)
	}

	services, err := uc.catalogRepo.ListActiveServices(ctx, req.SalonID)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to list services: %v", err)
		return nil, fmt.Errorf("%w: failed to list services: %v", ErrInternal, err)
	}

	// 5. Опциональное сужение: один мастер и/или конкретная услуга
	candidates := stylists
	if req.StylistID != nil {
		stylist := findStylist(stylists, *req.StylistID)
		if stylist == nil {
			uc.logger.Warn("GetAvailability: stylist id=%s not found in salon=%s", *req.StylistID, req.SalonID)
			return nil, ErrStylistNotFound
		}
		candidates = []*domain.Stylist{stylist}
	}

	var selectedService *domain.Service
	if req.ServiceID != nil {
		selectedService = findService(services, *req.ServiceID)
		if selectedService == nil {
			uc.logger.Warn("GetAvailability: service id=%s not found in salon=%s", *req.ServiceID, req.SalonID)
			return nil, ErrServiceNotFound
		}
	}

	// 6. Сетка кандидатов: от открытия до закрытия с фиксированным шагом
	grid, err := domain.GenerateTimeSlots(hours.OpenTime, hours.CloseTime, domain.SlotStepMinutes)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to generate slot grid: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slot grid: %v", ErrInternal, err)
	}

	// 7. Блокирующие записи на дату (отменённые исключены в репозитории)
	appointments, err := uc.apptRepo.GetDaySchedule(ctx, domain.DayScheduleFilter{
		SalonID: req.SalonID,
		Date:    req.Date,
	})
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get day schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to get day schedule: %v", ErrInternal, err)
	}

	// 8. Фильтрация по мастерам и длительности
	duration := resolveDuration(selectedService, services)
	slots, err := filterAvailableSlots(grid, duration, candidates, appointments)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to filter slots: %v", err)
		return nil, fmt.Errorf("%w: failed to filter slots: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailability: salon=%s, date=%s: %d of %d slots available",
		req.SalonID, req.Date.Format(domain.DateFormat), len(slots), len(grid))

	return &Response{
		Available: true,
		Date:      req.Date,
		WorkingHours: &WorkingWindow{
			Open:  hours.OpenTime,
			Close: hours.CloseTime,
		},
		Stylists:       stylists,
		Services:       services,
		AvailableSlots: slots,
	}, nil
}

func findStylist(stylists []*domain.Stylist, id string) *domain.Stylist {
	for _, st := range stylists {
		if st.ID == id {
			return st
		}
	}
	return nil
}

func findService(services []*domain.Service, id string) *domain.Service {
	for _, svc := range services {
		if svc.ID == id {
			return svc
		}
	}
	return nil
}
