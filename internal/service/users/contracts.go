package users

import (
	"context"

	"github.com/myphysiotime/PhysioTime-BookingService/internal/domain"
)

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	UpdateProfile(ctx context.Context, id int64, update domain.ProfileUpdate) (*domain.User, error)
	ListClients(ctx context.Context) ([]*domain.ClientStats, error)
	GetClientStats(ctx context.Context, id int64) (*domain.ClientStats, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
