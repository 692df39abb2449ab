package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/myphysiotime/PhysioTime-BookingService/internal/domain"
	bookingRepo "github.com/myphysiotime/PhysioTime-BookingService/internal/infra/storage/booking"
	serviceRepo "github.com/myphysiotime/PhysioTime-BookingService/internal/infra/storage/service"
	userRepo "github.com/myphysiotime/PhysioTime-BookingService/internal/infra/storage/user"
	"github.com/myphysiotime/PhysioTime-BookingService/internal/policy"
	"github.com/myphysiotime/PhysioTime-BookingService/internal/slots"
	"github.com/myphysiotime/PhysioTime-BookingService/pkg/txmanager"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	serviceRepo  ServiceRepository
	userRepo     UserRepository
	calculator   SlotCalculator
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	serviceRepo ServiceRepository,
	userRepo UserRepository,
	calculator SlotCalculator,
	txManager TransactionManager,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	if timeProvider == nil {
		timeProvider = &RealTimeProvider{}
	}
	return &UseCase{
		bookingRepo:  bookingRepo,
		serviceRepo:  serviceRepo,
		userRepo:     userRepo,
		calculator:   calculator,
		txManager:    txManager,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка занятости и вставка выполняются в одной сериализуемой транзакции,
// поэтому две параллельные записи на одно время не могут пройти обе.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	clientID := req.Actor.UserID
	if req.ClientID != nil {
		clientID = *req.ClientID
	}

	uc.logger.Info("CreateBooking: actor=%d, client=%d, service=%d, at=%s",
		req.Actor.UserID, clientID, req.ServiceID, req.ScheduledAt.Format(time.RFC3339))

	// 2. Клиент может записывать только себя
	if err := policy.Authorize(req.Actor, policy.OpCreateBooking, policy.Owner(clientID)); err != nil {
		uc.logger.Warn("CreateBooking: %v", err)
		return nil, err
	}

	// 3. Услуга существует и активна
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if !service.IsActive {
		uc.logger.Warn("CreateBooking: service id=%d is inactive", req.ServiceID)
		return nil, ErrServiceInactive
	}

	// 4. Клиент существует
	if _, err := uc.userRepo.GetByID(ctx, clientID); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("CreateBooking: client id=%d not found", clientID)
			return nil, ErrClientNotFound
		}
		uc.logger.Error("CreateBooking: failed to get client id=%d: %v", clientID, err)
		return nil, fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
	}

	// 5. Время в будущем и внутри рабочих часов
	duration := serviceDuration(service)
	start := req.ScheduledAt.In(uc.calculator.Location())

	if start.Before(uc.timeProvider.Now()) {
		uc.logger.Warn("CreateBooking: start %s is in the past", start.Format(time.RFC3339))
		return nil, ErrPastDate
	}
	if !uc.calculator.WithinHours(start, duration) {
		uc.logger.Warn("CreateBooking: start %s (+%d min) is outside working hours", start.Format(time.RFC3339), duration)
		return nil, ErrOutsideWorkingHours
	}

	var result *domain.Booking

	// 6. Проверка пересечений и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		dayStart, dayEnd := uc.calculator.DayBounds(start)

		scheduled, err := uc.bookingRepo.GetScheduled(txCtx, dayStart, dayEnd, nil)
		if err != nil {
			return fmt.Errorf("failed to get scheduled bookings: %w", err)
		}

		if !slots.IsFree(start, duration, scheduled) {
			uc.logger.Warn("CreateBooking: slot %s is taken", start.Format(time.RFC3339))
			return ErrSlotNotAvailable
		}

		created, err := uc.bookingRepo.Create(txCtx, &domain.Booking{
			ServiceID:   service.ID,
			ClientID:    clientID,
			ScheduledAt: start,
			State:       domain.StatePending,
			Notes:       req.Notes,
		}, duration)
		if err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, uc.translateTxError(err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	return &Response{
		Booking:         result,
		DurationMinutes: duration,
		EndsAt:          result.ScheduledAt.Add(time.Duration(duration) * time.Minute),
	}, nil
}

// translateTxError приводит ошибки транзакции к ошибкам use case
// Конфликты хранилища (exclusion constraint, сериализация) означают, что слот заняли параллельно.
func (uc *UseCase) translateTxError(err error) error {
	switch {
	case errors.Is(err, ErrSlotNotAvailable):
		return ErrSlotNotAvailable
	case errors.Is(err, bookingRepo.ErrSlotNotAvailable),
		errors.Is(err, bookingRepo.ErrConcurrentUpdate),
		errors.Is(err, txmanager.ErrSerializationFailure):
		uc.logger.Warn("CreateBooking: concurrent booking conflict: %v", err)
		return ErrSlotNotAvailable
	case errors.Is(err, bookingRepo.ErrReferenceNotFound):
		uc.logger.Warn("CreateBooking: referenced row disappeared: %v", err)
		return ErrServiceNotFound
	default:
		uc.logger.Error("CreateBooking: transaction failed: %v", err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
