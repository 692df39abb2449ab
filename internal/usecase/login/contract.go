package login

import (
	"context"
	"time"

	"github.com/myphysiotime/PhysioTime-BookingService/internal/domain"
)

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetCredentialsByEmail(ctx context.Context, email string) (*domain.UserCredentials, error)
	UpdateLastLogin(ctx context.Context, id int64, at time.Time) error
}

// PasswordHasher хэширование и проверка пароля
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

// TokenGenerator выпуск токена доступа
type TokenGenerator interface {
	Generate(userID int64, email string, role domain.Role) (string, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
