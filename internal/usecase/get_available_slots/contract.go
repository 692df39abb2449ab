package get_available_slots

import (
	"context"
	"time"

	"github.com/myphysiotime/PhysioTime-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetScheduled(ctx context.Context, from, to time.Time, physiotherapistID *int64) ([]domain.ScheduledBooking, error)
}

// SlotCalculator вычисление слотов на день
type SlotCalculator interface {
	Compute(date time.Time, durationMinutes int, bookings []domain.ScheduledBooking) []domain.TimeSlot
	DayBounds(date time.Time) (time.Time, time.Time)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
