package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/myphysiotime/PhysioTime-BookingService/internal/domain"
	bookingRepo "github.com/myphysiotime/PhysioTime-BookingService/internal/infra/storage/booking"
	"github.com/myphysiotime/PhysioTime-BookingService/internal/policy"
	"github.com/myphysiotime/PhysioTime-BookingService/internal/service/bookings/models"
)

// Service сервис для чтения и удаления бронирований
// Создание и изменение бронирований выполняют use case create_booking и update_booking
type Service struct {
	bookingRepo BookingRepository
	location    *time.Location
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
// Время в ответах отдается в location клиники
func NewService(bookingRepo BookingRepository, location *time.Location, logger Logger) *Service {
	if location == nil {
		location = time.UTC
	}
	return &Service{
		bookingRepo: bookingRepo,
		location:    location,
		logger:      logger,
	}
}

// GetAll все бронирования клиники, опционально по состоянию. Только администратор.
func (s *Service) GetAll(ctx context.Context, actor domain.Actor, state *string) (*models.BookingListResponse, error) {
	s.logger.Info("GetAll: fetching bookings for user=%d, state=%v", actor.UserID, state)

	if err := policy.Authorize(actor, policy.OpListAllBookings, nil); err != nil {
		s.logger.Warn("GetAll: %v", err)
		return nil, err
	}

	var filter domain.BookingsFilter
	if state != nil {
		parsed, err := domain.ParseBookingState(*state)
		if err != nil {
			s.logger.Warn("GetAll: invalid state=%s", *state)
			return nil, err
		}
		filter.State = &parsed
	}

	return s.list(ctx, "GetAll", filter)
}

// GetByState бронирования в указанном состоянии. Только администратор.
func (s *Service) GetByState(ctx context.Context, actor domain.Actor, state string) (*models.BookingListResponse, error) {
	s.logger.Info("GetByState: fetching bookings for user=%d, state=%s", actor.UserID, state)

	if err := policy.Authorize(actor, policy.OpListBookingsByState, nil); err != nil {
		s.logger.Warn("GetByState: %v", err)
		return nil, err
	}

	parsed, err := domain.ParseBookingState(state)
	if err != nil {
		s.logger.Warn("GetByState: invalid state=%s", state)
		return nil, err
	}

	return s.list(ctx, "GetByState", domain.BookingsFilter{State: &parsed})
}

// GetMy бронирования текущего пользователя
func (s *Service) GetMy(ctx context.Context, actor domain.Actor) (*models.BookingListResponse, error) {
	s.logger.Info("GetMy: fetching bookings for user=%d", actor.UserID)

	if err := policy.Authorize(actor, policy.OpListMyBookings, nil); err != nil {
		s.logger.Warn("GetMy: %v", err)
		return nil, err
	}

	clientID := actor.UserID
	return s.list(ctx, "GetMy", domain.BookingsFilter{ClientID: &clientID})
}

// GetByID получает бронирование по ID
// Клиент видит только свои бронирования
func (s *Service) GetByID(ctx context.Context, actor domain.Actor, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, actor.UserID)

	if actor.IsZero() {
		return nil, policy.ErrUnauthenticated
	}

	detail, err := s.bookingRepo.GetDetailByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if err := policy.Authorize(actor, policy.OpReadBooking, policy.Owner(detail.ClientID)); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", actor.UserID, id)
		return nil, err
	}

	return models.FromDomainBookingDetail(detail, s.location), nil
}

// Delete удаляет бронирование. Только администратор.
func (s *Service) Delete(ctx context.Context, actor domain.Actor, id int64) error {
	s.logger.Info("Delete: deleting booking id=%d by user=%d", id, actor.UserID)

	if err := policy.Authorize(actor, policy.OpDeleteBooking, nil); err != nil {
		s.logger.Warn("Delete: %v", err)
		return err
	}

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%d not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: booking id=%d deleted", id)
	return nil
}

func (s *Service) list(ctx context.Context, op string, filter domain.BookingsFilter) (*models.BookingListResponse, error) {
	details, err := s.bookingRepo.ListDetails(ctx, filter)
	if err != nil {
		s.logger.Error("%s: repository error: %v", op, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	s.logger.Info("%s: successfully fetched %d bookings", op, len(details))
	return models.FromDomainBookingDetailList(details, s.location), nil
}
