package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/schnittwerk/SW-SchedulingService/internal/domain"
	apptRepo "github.com/schnittwerk/SW-SchedulingService/internal/infra/storage/appointment"
	catalogRepo "github.com/schnittwerk/SW-SchedulingService/internal/infra/storage/catalog"
	salonRepo "github.com/schnittwerk/SW-SchedulingService/internal/infra/storage/salon"
)

// UseCase use case для создания записи на приём
type UseCase struct {
	apptRepo    AppointmentRepository
	salonRepo   SalonRepository
	catalogRepo CatalogRepository
	txManager   TransactionManager
	idGenerator IDGenerator
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	apptRepo AppointmentRepository,
	salonRepo SalonRepository,
	catalogRepo CatalogRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		apptRepo:    apptRepo,
		salonRepo:   salonRepo,
		catalogRepo: catalogRepo,
		txManager:   txManager,
		idGenerator: &uuidGenerator{},
		logger:      logger,
	}
}

// Execute выполняет use case создания записи.
// Проверка пересечений и вставка выполняются в одной сериализуемой
// транзакции: два конкурентных запроса на один слот не могут оба пройти
// проверку до того, как один из них запишется.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: salon=%s, stylist=%s, service=%s, date=%s, time=%s",
		req.SalonID, req.StylistID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Услуга: определяет длительность и цену на момент бронирования
	service, err := uc.catalogRepo.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if !service.IsActive || service.SalonID != req.SalonID {
		uc.logger.Warn("CreateAppointment: service id=%s inactive or foreign", req.ServiceID)
		return nil, ErrServiceNotFound
	}

	// 3. Мастер: единица защиты от двойного бронирования
	stylist, err := uc.catalogRepo.GetStylist(ctx, req.StylistID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrStylistNotFound) {
			uc.logger.Warn("CreateAppointment: stylist id=%s not found", req.StylistID)
			return nil, ErrStylistNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get stylist id=%s: %v", req.StylistID, err)
		return nil, fmt.Errorf("%w: failed to get stylist: %v", ErrInternal, err)
	}
	if !stylist.IsActive || stylist.SalonID != req.SalonID {
		uc.logger.Warn("CreateAppointment: stylist id=%s inactive or foreign", req.StylistID)
		return nil, ErrStylistNotFound
	}

	// 4. Рабочие часы: отсутствие строки равнозначно выходному дню
	hours, err := uc.salonRepo.GetWorkingHours(ctx, req.SalonID, domain.ISOWeekday(req.Date))
	if err != nil {
		if errors.Is(err, salonRepo.ErrHoursNotConfigured) {
			uc.logger.Warn("CreateAppointment: salon=%s closed on %s", req.SalonID, req.Date.Format(domain.DateFormat))
			return nil, ErrSalonClosed
		}
		uc.logger.Error("CreateAppointment: failed to get working hours: %v", err)
		return nil, fmt.Errorf("%w: failed to get working hours: %v", ErrInternal, err)
	}
	if !hours.IsOpen() {
		uc.logger.Warn("CreateAppointment: salon=%s closed on %s", req.SalonID, req.Date.Format(domain.DateFormat))
		return nil, ErrSalonClosed
	}

	// 5. Время начала: в рабочем окне и на сетке слотов
	if err := validateSlot(req.StartTime, hours); err != nil {
		uc.logger.Warn("CreateAppointment: slot validation failed: %v", err)
		return nil, err
	}

	// 6. Конец записи выводится из длительности услуги и больше не меняется
	endTime, err := req.StartTime.AddMinutes(service.DurationMinutes)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to compute end time: %v", ErrInternal, err)
	}

	var created *domain.Appointment

	// 7. Проверка коллизий + вставка как единая атомарная операция.
	// Выборка дня идёт с FOR UPDATE, уникальный индекс по
	// (stylist_id, appointment_date, start_time) добивает остаток гонки.
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		schedule, err := uc.apptRepo.GetDaySchedule(txCtx, domain.DayScheduleFilter{
			SalonID:   req.SalonID,
			StylistID: &req.StylistID,
			Date:      req.Date,
		})
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get day schedule: %v", err)
			return fmt.Errorf("%w: failed to get day schedule: %v", ErrInternal, err)
		}

		if conflict := findOverlap(req.StartTime, endTime, schedule); conflict != nil {
			uc.logger.Warn("CreateAppointment: slot %s-%s conflicts with appointment id=%s (%s-%s)",
				req.StartTime, endTime, conflict.ID, conflict.StartTime, conflict.EndTime)
			return ErrSlotConflict
		}

		appt := &domain.Appointment{
			ID:            uc.idGenerator.NewID(),
			SalonID:       req.SalonID,
			StylistID:     req.StylistID,
			ServiceID:     req.ServiceID,
			CustomerName:  req.CustomerName,
			CustomerEmail: req.CustomerEmail,
			CustomerPhone: req.CustomerPhone,
			Date:          req.Date,
			StartTime:     req.StartTime,
			EndTime:       endTime,
			Status:        domain.StatusConfirmed,
			Notes:         req.Notes,
		}

		created, err = uc.apptRepo.Create(txCtx, appt)
		if err != nil {
			if errors.Is(err, apptRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateAppointment: unique slot constraint hit for stylist=%s %s %s",
					req.StylistID, req.Date.Format(domain.DateFormat), req.StartTime)
				return ErrSlotConflict
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: created appointment id=%s (%s %s-%s)",
		created.ID, created.Date.Format(domain.DateFormat), created.StartTime, created.EndTime)

	return &Response{
		ID:            created.ID,
		SalonID:       created.SalonID,
		StylistID:     created.StylistID,
		ServiceID:     created.ServiceID,
		CustomerName:  created.CustomerName,
		CustomerEmail: created.CustomerEmail,
		CustomerPhone: created.CustomerPhone,
		Date:          created.Date,
		StartTime:     created.StartTime,
		EndTime:       created.EndTime,
		Status:        string(created.Status),
		Notes:         created.Notes,
		ServiceName:   service.Name,
		ServicePrice:  service.Price,
		CreatedAt:     created.CreatedAt,
	}, nil
}

// uuidGenerator production генератор идентификаторов
type uuidGenerator struct{}

// NewID возвращает новый UUID
func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}
