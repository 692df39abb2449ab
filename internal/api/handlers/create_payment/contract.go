package create_payment

import (
	"context"

	"github.com/myphysiotime/PhysioTime-BookingService/internal/domain"
	"github.com/myphysiotime/PhysioTime-BookingService/internal/service/payments/models"
)

type PaymentService interface {
	Create(ctx context.Context, actor domain.Actor, req *models.CreatePaymentRequest) (*models.PaymentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
