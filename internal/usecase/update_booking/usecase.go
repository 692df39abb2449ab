package update_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/myphysiotime/PhysioTime-BookingService/internal/domain"
	bookingRepo "github.com/myphysiotime/PhysioTime-BookingService/internal/infra/storage/booking"
	userRepo "github.com/myphysiotime/PhysioTime-BookingService/internal/infra/storage/user"
	"github.com/myphysiotime/PhysioTime-BookingService/internal/policy"
	"github.com/myphysiotime/PhysioTime-BookingService/pkg/txmanager"
)

// UseCase use case для изменения состояния, заметок и физиотерапевта бронирования
type UseCase struct {
	bookingRepo BookingRepository
	userRepo    UserRepository
	days        DayBounder
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	userRepo UserRepository,
	days DayBounder,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
		days:        days,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case изменения бронирования
// Чтение строки, проверки и запись выполняются в одной сериализуемой транзакции.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateBooking: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("UpdateBooking: actor=%d, booking=%d", req.Actor.UserID, req.BookingID)

	var result *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Бронирование (FOR UPDATE)
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("failed to get booking: %w", err)
		}

		// 2. Клиент меняет только свои бронирования
		if err := policy.Authorize(req.Actor, policy.OpUpdateBooking, policy.Owner(booking.ClientID)); err != nil {
			return err
		}

		update := domain.BookingUpdate{Notes: req.Notes}
		nextState := booking.State

		// 3. Смена состояния через таблицу переходов
		if req.State != nil {
			requested, _ := domain.ParseBookingState(string(*req.State))
			nextState, err = domain.Transition(booking.State, requested, req.Actor.Role)
			if err != nil {
				return err
			}
			if nextState != booking.State {
				update.State = &nextState
			}
		}

		// 4. Назначение физиотерапевта
		if req.PhysiotherapistID != nil {
			if err := uc.checkAssignment(txCtx, req.Actor, booking, nextState, *req.PhysiotherapistID); err != nil {
				return err
			}
			update.PhysiotherapistID = req.PhysiotherapistID
		}

		updated, err := uc.bookingRepo.Update(txCtx, booking.ID, update)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("failed to update booking: %w", err)
		}

		result = updated
		return nil
	})
	if err != nil {
		return nil, uc.translateTxError(err)
	}

	uc.logger.Info("UpdateBooking: booking id=%d updated, state=%s", result.ID, result.State)

	return &Response{Booking: result}, nil
}

// checkAssignment проверяет, что physioID можно назначить на бронирование
func (uc *UseCase) checkAssignment(
	ctx context.Context,
	actor domain.Actor,
	booking *domain.Booking,
	nextState domain.BookingState,
	physioID int64,
) error {
	if err := policy.Authorize(actor, policy.OpAssignPhysio, nil); err != nil {
		return err
	}

	if nextState.IsTerminal() {
		return ErrBookingFinalized
	}

	physio, err := uc.userRepo.GetByID(ctx, physioID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return ErrPhysiotherapistNotFound
		}
		return fmt.Errorf("failed to get physiotherapist: %w", err)
	}
	if physio.Role != domain.RoleAdmin {
		return fmt.Errorf("%w: user %d has role %s", ErrNotPhysiotherapist, physioID, physio.Role)
	}

	dayStart, dayEnd := uc.days.DayBounds(booking.ScheduledAt)

	scheduled, err := uc.bookingRepo.GetScheduled(ctx, dayStart, dayEnd, nil)
	if err != nil {
		return fmt.Errorf("failed to get scheduled bookings: %w", err)
	}

	var own *domain.ScheduledBooking
	for i := range scheduled {
		if scheduled[i].BookingID == booking.ID {
			own = &scheduled[i]
			break
		}
	}
	if own == nil {
		return fmt.Errorf("booking %d is missing from its day schedule", booking.ID)
	}

	for _, other := range scheduled {
		if other.BookingID == booking.ID || other.PhysiotherapistID == nil || *other.PhysiotherapistID != physioID {
			continue
		}
		if other.Overlaps(own.Start, own.End()) {
			return fmt.Errorf("%w: overlaps booking %d", ErrPhysiotherapistBusy, other.BookingID)
		}
	}

	return nil
}

// translateTxError приводит ошибки транзакции к ошибкам use case
func (uc *UseCase) translateTxError(err error) error {
	switch {
	case errors.Is(err, bookingRepo.ErrSlotNotAvailable):
		uc.logger.Warn("UpdateBooking: exclusion constraint: %v", err)
		return ErrPhysiotherapistBusy
	case errors.Is(err, bookingRepo.ErrConcurrentUpdate),
		errors.Is(err, txmanager.ErrSerializationFailure):
		uc.logger.Warn("UpdateBooking: concurrent update: %v", err)
		return ErrConcurrentUpdate
	case domain.KindOf(err) != domain.ErrInternal:
		uc.logger.Warn("UpdateBooking: %v", err)
		return err
	default:
		uc.logger.Error("UpdateBooking: transaction failed: %v", err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
