package get_available_slots

import (
	"context"
	"fmt"

	"github.com/myphysiotime/PhysioTime-BookingService/internal/domain"
	"github.com/myphysiotime/PhysioTime-BookingService/internal/policy"
)

// UseCase use case для получения слотов на день
type UseCase struct {
	bookingRepo BookingRepository
	calculator  SlotCalculator
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, calculator SlotCalculator, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		calculator:  calculator,
		logger:      logger,
	}
}

// Execute возвращает все слоты дня с признаком доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := policy.Authorize(req.Actor, policy.OpGetAvailableSlots, nil); err != nil {
		uc.logger.Warn("GetAvailableSlots: %v", err)
		return nil, err
	}

	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	duration := req.DurationMinutes
	if duration == 0 {
		duration = domain.DefaultSlotDurationMinutes
	}
	if duration < domain.MinSlotDurationMinutes || duration > domain.MaxSlotDurationMinutes {
		uc.logger.Warn("GetAvailableSlots: invalid duration %d", req.DurationMinutes)
		return nil, ErrInvalidDuration
	}

	uc.logger.Info("GetAvailableSlots: user=%d, date=%s, duration=%d",
		req.Actor.UserID, req.Date.Format(domain.DateFormat), duration)

	dayStart, dayEnd := uc.calculator.DayBounds(req.Date)

	bookings, err := uc.bookingRepo.GetScheduled(ctx, dayStart, dayEnd, nil)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	return &Response{
		Date:            dayStart,
		DurationMinutes: duration,
		Slots:           uc.calculator.Compute(dayStart, duration, bookings),
	}, nil
}
