package register

import (
	"context"

	"github.com/myphysiotime/PhysioTime-BookingService/internal/domain"
)

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, u domain.NewUser) (*domain.User, error)
}

// PasswordHasher хэширование пароля
type PasswordHasher interface {
	Hash(password string) (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
