package bookings

import (
	"context"

	"github.com/myphysiotime/PhysioTime-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetDetailByID(ctx context.Context, id int64) (*domain.BookingDetail, error)
	ListDetails(ctx context.Context, filter domain.BookingsFilter) ([]*domain.BookingDetail, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
