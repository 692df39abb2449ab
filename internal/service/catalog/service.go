package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/myphysiotime/PhysioTime-BookingService/internal/domain"
	serviceRepo "github.com/myphysiotime/PhysioTime-BookingService/internal/infra/storage/service"
	"github.com/myphysiotime/PhysioTime-BookingService/internal/policy"
	"github.com/myphysiotime/PhysioTime-BookingService/internal/service/catalog/models"
)

// Service сервис каталога услуг клиники
type Service struct {
	serviceRepo ServiceRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(serviceRepo ServiceRepository, logger Logger) *Service {
	return &Service{
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// ListActive публичный каталог: только активные услуги
func (s *Service) ListActive(ctx context.Context) (*models.ServiceListResponse, error) {
	return s.list(ctx, "ListActive", true)
}

// ListAll все услуги, включая неактивные. Только администратор.
func (s *Service) ListAll(ctx context.Context, actor domain.Actor) (*models.ServiceListResponse, error) {
	if err := policy.Authorize(actor, policy.OpListAllServices, nil); err != nil {
		s.logger.Warn("ListAll: %v", err)
		return nil, err
	}
	return s.list(ctx, "ListAll", false)
}

// Create создает услугу
func (s *Service) Create(ctx context.Context, actor domain.Actor, req *models.CreateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("Create: creating service name=%q by user=%d", req.Name, actor.UserID)

	if err := policy.Authorize(actor, policy.OpManageServices, nil); err != nil {
		s.logger.Warn("Create: %v", err)
		return nil, err
	}

	req.Name = strings.TrimSpace(req.Name)
	if err := validateStruct(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.serviceRepo.Create(ctx, req.ToDomain())
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: service id=%d created", created.ID)
	return models.FromDomainService(created), nil
}

// Update частично обновляет услугу
// Длительность уже созданных бронирований не меняется
func (s *Service) Update(ctx context.Context, actor domain.Actor, id int64, req *models.UpdateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("Update: updating service id=%d by user=%d", id, actor.UserID)

	if err := policy.Authorize(actor, policy.OpManageServices, nil); err != nil {
		s.logger.Warn("Update: %v", err)
		return nil, err
	}

	if req.IsEmpty() {
		return nil, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		req.Name = &name
	}
	if err := validateStruct(req); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	updated, err := s.serviceRepo.Update(ctx, id, req.ToDomain())
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("Update: service id=%d not found", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("Update: repository error for service id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainService(updated), nil
}

// Delete удаляет услугу без истории. Услугу с бронированиями нужно деактивировать.
func (s *Service) Delete(ctx context.Context, actor domain.Actor, id int64) error {
	s.logger.Info("Delete: deleting service id=%d by user=%d", id, actor.UserID)

	if err := policy.Authorize(actor, policy.OpManageServices, nil); err != nil {
		s.logger.Warn("Delete: %v", err)
		return err
	}

	if err := s.serviceRepo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, serviceRepo.ErrServiceNotFound):
			s.logger.Warn("Delete: service id=%d not found", id)
			return ErrServiceNotFound
		case errors.Is(err, serviceRepo.ErrServiceInUse):
			s.logger.Warn("Delete: service id=%d is in use", id)
			return ErrServiceInUse
		default:
			s.logger.Error("Delete: repository error for service id=%d: %v", id, err)
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}
	}

	return nil
}

func (s *Service) list(ctx context.Context, op string, activeOnly bool) (*models.ServiceListResponse, error) {
	services, err := s.serviceRepo.List(ctx, activeOnly)
	if err != nil {
		s.logger.Error("%s: repository error: %v", op, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return models.FromDomainServiceList(services), nil
}
