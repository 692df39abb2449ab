package update_booking

import (
	"context"
	"time"

	"github.com/myphysiotime/PhysioTime-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetScheduled(ctx context.Context, from, to time.Time, physiotherapistID *int64) ([]domain.ScheduledBooking, error)
	Update(ctx context.Context, id int64, update domain.BookingUpdate) (*domain.Booking, error)
}

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// DayBounder границы дня в часовом поясе клиники
type DayBounder interface {
	DayBounds(date time.Time) (time.Time, time.Time)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
