package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/myphysiotime/PhysioTime-BookingService/internal/domain"
	userRepo "github.com/myphysiotime/PhysioTime-BookingService/internal/infra/storage/user"
	"github.com/myphysiotime/PhysioTime-BookingService/internal/policy"
	"github.com/myphysiotime/PhysioTime-BookingService/internal/service/users/models"
)

// Service сервис профилей и клиентской базы
type Service struct {
	userRepo UserRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса пользователей
func NewService(userRepo UserRepository, logger Logger) *Service {
	return &Service{
		userRepo: userRepo,
		logger:   logger,
	}
}

// GetAllClients клиенты со статистикой. Только администратор.
func (s *Service) GetAllClients(ctx context.Context, actor domain.Actor) (*models.ClientListResponse, error) {
	if err := policy.Authorize(actor, policy.OpListClients, nil); err != nil {
		s.logger.Warn("GetAllClients: %v", err)
		return nil, err
	}

	clients, err := s.userRepo.ListClients(ctx)
	if err != nil {
		s.logger.Error("GetAllClients: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAllClients - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetAllClients: fetched %d clients", len(clients))
	return models.FromDomainClientStatsList(clients), nil
}

// GetClientByID клиент со статистикой. Только администратор.
func (s *Service) GetClientByID(ctx context.Context, actor domain.Actor, id int64) (*models.ClientResponse, error) {
	if err := policy.Authorize(actor, policy.OpGetClient, nil); err != nil {
		s.logger.Warn("GetClientByID: %v", err)
		return nil, err
	}

	client, err := s.userRepo.GetClientStats(ctx, id)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("GetClientByID: client id=%d not found", id)
			return nil, ErrClientNotFound
		}
		s.logger.Error("GetClientByID: repository error for client id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetClientByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainClientStats(client), nil
}

// GetMe профиль текущего пользователя
func (s *Service) GetMe(ctx context.Context, actor domain.Actor) (*models.UserResponse, error) {
	if err := policy.Authorize(actor, policy.OpReadProfile, nil); err != nil {
		s.logger.Warn("GetMe: %v", err)
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("GetMe: user id=%d not found", actor.UserID)
			return nil, ErrUserNotFound
		}
		s.logger.Error("GetMe: repository error for user id=%d: %v", actor.UserID, err)
		return nil, fmt.Errorf("%w: GetMe - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainUser(user), nil
}

// UpdateProfile обновляет имя и телефон пользователя id
func (s *Service) UpdateProfile(ctx context.Context, actor domain.Actor, id int64, req *models.UpdateProfileRequest) (*models.UserResponse, error) {
	s.logger.Info("UpdateProfile: user id=%d by user=%d", id, actor.UserID)

	if err := policy.Authorize(actor, policy.OpUpdateProfile, policy.Owner(id)); err != nil {
		s.logger.Warn("UpdateProfile: %v", err)
		return nil, err
	}

	req.Normalize()
	if req.IsEmpty() {
		return nil, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}
	if err := validateStruct(req); err != nil {
		s.logger.Warn("UpdateProfile: validation failed: %v", err)
		return nil, err
	}

	user, err := s.userRepo.UpdateProfile(ctx, id, req.ToDomain())
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("UpdateProfile: user id=%d not found", id)
			return nil, ErrUserNotFound
		}
		s.logger.Error("UpdateProfile: repository error for user id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateProfile - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainUser(user), nil
}
