package payments

import (
	"context"

	"github.com/myphysiotime/PhysioTime-BookingService/internal/domain"
)

// PaymentRepository интерфейс репозитория платежей
type PaymentRepository interface {
	Create(ctx context.Context, p *domain.Payment) (*domain.Payment, error)
	GetByID(ctx context.Context, id int64) (*domain.Payment, error)
	ListByClient(ctx context.Context, clientID int64) ([]*domain.Payment, error)
	UpdateStatus(ctx context.Context, id int64, status domain.PaymentStatus) (*domain.Payment, error)
}

// ServiceRepository интерфейс каталога услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// ReferenceGenerator генерирует ссылку платежа, если клиент ее не передал
type ReferenceGenerator func() string

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
