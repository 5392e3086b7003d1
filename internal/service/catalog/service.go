package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/schnittwerk/SW-SchedulingService/internal/domain"
	salonRepo "github.com/schnittwerk/SW-SchedulingService/internal/infra/storage/salon"
	"github.com/schnittwerk/SW-SchedulingService/internal/service/catalog/models"
)

// Service сервис каталога салона: контактная карточка, мастера и услуги
type Service struct {
	salonRepo   SalonRepository
	catalogRepo CatalogRepository
	idGenerator IDGenerator
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(
	salonRepo SalonRepository,
	catalogRepo CatalogRepository,
	logger Logger,
) *Service {
	return &Service{
		salonRepo:   salonRepo,
		catalogRepo: catalogRepo,
		idGenerator: &uuidGenerator{},
		logger:      logger,
	}
}

// GetSalon получает контактную карточку салона
func (s *Service) GetSalon(ctx context.Context, salonID string) (*models.SalonResponse, error) {
	s.logger.Info("GetSalon: fetching salon=%s", salonID)

	salon, err := s.salonRepo.GetByID(ctx, salonID)
	if err != nil {
		if errors.Is(err, salonRepo.ErrSalonNotFound) {
			s.logger.Warn("GetSalon: salon=%s not found", salonID)
			return nil, ErrSalonNotFound
		}
		s.logger.Error("GetSalon: repository error for salon=%s: %v", salonID, err)
		return nil, fmt.Errorf("%w: GetSalon - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSalon(salon), nil
}

// ListStylists получает активных мастеров салона
func (s *Service) ListStylists(ctx context.Context, salonID string) (*models.StylistListResponse, error) {
	s.logger.Info("ListStylists: fetching stylists for salon=%s", salonID)

	if err := s.ensureSalonExists(ctx, salonID); err != nil {
		return nil, err
	}

	stylists, err := s.catalogRepo.ListActiveStylists(ctx, salonID)
	if err != nil {
		s.logger.Error("ListStylists: repository error for salon=%s: %v", salonID, err)
		return nil, fmt.Errorf("%w: ListStylists - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListStylists: successfully fetched %d stylists for salon=%s", len(stylists), salonID)
	return models.FromDomainStylistList(stylists), nil
}

// CreateStylist добавляет нового мастера в салон
func (s *Service) CreateStylist(ctx context.Context, req *models.CreateStylistRequest) (*models.StylistResponse, error) {
	s.logger.Info("CreateStylist: salon=%s, name=%s", req.SalonID, req.Name)

	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if err := s.ensureSalonExists(ctx, req.SalonID); err != nil {
		return nil, err
	}

	created, err := s.catalogRepo.CreateStylist(ctx, &domain.Stylist{
		ID:          s.idGenerator.NewID(),
		SalonID:     req.SalonID,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Specialties: req.Specialties,
		IsActive:    true,
	})
	if err != nil {
		s.logger.Error("CreateStylist: repository error for salon=%s: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: CreateStylist - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateStylist: created stylist id=%s in salon=%s", created.ID, req.SalonID)
	resp := models.FromDomainStylist(created)
	return &resp, nil
}

// ListServices получает активные услуги салона
func (s *Service) ListServices(ctx context.Context, salonID string) (*models.ServiceListResponse, error) {
	s.logger.Info("ListServices: fetching services for salon=%s", salonID)

	if err := s.ensureSalonExists(ctx, salonID); err != nil {
		return nil, err
	}

	services, err := s.catalogRepo.ListActiveServices(ctx, salonID)
	if err != nil {
		s.logger.Error("ListServices: repository error for salon=%s: %v", salonID, err)
		return nil, fmt.Errorf("%w: ListServices - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListServices: successfully fetched %d services for salon=%s", len(services), salonID)
	return models.FromDomainServiceList(services), nil
}

// CreateService добавляет новую услугу в салон
func (s *Service) CreateService(ctx context.Context, req *models.CreateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("CreateService: salon=%s, name=%s, duration=%d", req.SalonID, req.Name, req.DurationMinutes)

	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if req.DurationMinutes < domain.MinServiceDurationMinutes || req.DurationMinutes > domain.MaxServiceDurationMinutes {
		return nil, fmt.Errorf("%w: duration must be between %d and %d minutes",
			ErrInvalidInput, domain.MinServiceDurationMinutes, domain.MaxServiceDurationMinutes)
	}
	if req.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	if err := s.ensureSalonExists(ctx, req.SalonID); err != nil {
		return nil, err
	}

	created, err := s.catalogRepo.CreateService(ctx, &domain.Service{
		ID:              s.idGenerator.NewID(),
		SalonID:         req.SalonID,
		Name:            req.Name,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		Price:           req.Price,
		Category:        req.Category,
		IsActive:        true,
	})
	if err != nil {
		s.logger.Error("CreateService: repository error for salon=%s: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: CreateService - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateService: created service id=%s in salon=%s", created.ID, req.SalonID)
	resp := models.FromDomainService(created)
	return &resp, nil
}

func (s *Service) ensureSalonExists(ctx context.Context, salonID string) error {
	if salonID == "" {
		return fmt.Errorf("%w: salonID is required", ErrInvalidInput)
	}
	if _, err := s.salonRepo.GetByID(ctx, salonID); err != nil {
		if errors.Is(err, salonRepo.ErrSalonNotFound) {
			s.logger.Warn("salon=%s not found", salonID)
			return ErrSalonNotFound
		}
		s.logger.Error("failed to get salon=%s: %v", salonID, err)
		return fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}
	return nil
}

// uuidGenerator production генератор идентификаторов
type uuidGenerator struct{}

// NewID возвращает новый UUID
func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}
