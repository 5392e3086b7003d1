package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/schnittwerk/SW-SchedulingService/internal/domain"
	apptRepo "github.com/schnittwerk/SW-SchedulingService/internal/infra/storage/appointment"
	salonRepo "github.com/schnittwerk/SW-SchedulingService/internal/infra/storage/salon"
	"github.com/schnittwerk/SW-SchedulingService/internal/service/appointments/models"
)

// Service сервис для работы с записями салона
type Service struct {
	apptRepo  AppointmentRepository
	salonRepo SalonRepository
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	apptRepo AppointmentRepository,
	salonRepo SalonRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		apptRepo:  apptRepo,
		salonRepo: salonRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// ListBySalon получает записи салона с фильтрацией по дате и статусу
func (s *Service) ListBySalon(ctx context.Context, req *models.ListSalonAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("ListBySalon: fetching appointments for salon=%s", req.SalonID)

	if req.SalonID == "" {
		return nil, fmt.Errorf("%w: salonID is required", ErrInvalidInput)
	}

	if _, err := s.salonRepo.GetByID(ctx, req.SalonID); err != nil {
		if errors.Is(err, salonRepo.ErrSalonNotFound) {
			s.logger.Warn("ListBySalon: salon=%s not found", req.SalonID)
			return nil, ErrSalonNotFound
		}
		s.logger.Error("ListBySalon: failed to get salon=%s: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: ListBySalon - repository error: %v", ErrInternal, err)
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("ListBySalon: invalid status filter=%v for salon=%s", req.Status, req.SalonID)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	list, err := s.apptRepo.ListBySalon(ctx, filter)
	if err != nil {
		s.logger.Error("ListBySalon: repository error for salon=%s: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: ListBySalon - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListBySalon: successfully fetched %d appointments for salon=%s", len(list), req.SalonID)
	return models.FromDomainDetailsList(list), nil
}

// UpdateStatus переводит запись в новый статус.
// Переходы ограничены жизненным циклом: confirmed -> completed|cancelled,
// терминальные статусы не меняются. Чтение текущего статуса и обновление
// выполняются в одной транзакции.
func (s *Service) UpdateStatus(ctx context.Context, req *models.UpdateStatusRequest) (*models.StatusUpdateResponse, error) {
	s.logger.Info("UpdateStatus: appointment id=%s -> status=%s", req.AppointmentID, req.Status)

	if req.AppointmentID == "" {
		return nil, fmt.Errorf("%w: appointmentID is required", ErrInvalidInput)
	}

	newStatus, ok := domain.ParseAppointmentStatus(req.Status)
	if !ok {
		s.logger.Warn("UpdateStatus: unknown status=%s for appointment id=%s", req.Status, req.AppointmentID)
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, req.Status)
	}
	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return nil, fmt.Errorf("%w: notes are too long", ErrInvalidInput)
	}

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		appt, err := s.apptRepo.GetByID(txCtx, req.AppointmentID)
		if err != nil {
			if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
				s.logger.Warn("UpdateStatus: appointment id=%s not found", req.AppointmentID)
				return ErrAppointmentNotFound
			}
			s.logger.Error("UpdateStatus: failed to get appointment id=%s: %v", req.AppointmentID, err)
			return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
		}

		if !appt.Status.CanTransitionTo(newStatus) {
			s.logger.Warn("UpdateStatus: transition %s -> %s rejected for appointment id=%s",
				appt.Status, newStatus, req.AppointmentID)
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, appt.Status, newStatus)
		}

		if err := s.apptRepo.UpdateStatus(txCtx, req.AppointmentID, newStatus, req.Notes); err != nil {
			if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			s.logger.Error("UpdateStatus: failed to update appointment id=%s: %v", req.AppointmentID, err)
			return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdateStatus: appointment id=%s moved to status=%s", req.AppointmentID, newStatus)
	return &models.StatusUpdateResponse{
		ID:      req.AppointmentID,
		Status:  string(newStatus),
		Message: "Appointment updated successfully",
	}, nil
}
