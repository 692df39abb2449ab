package update_payment_status

import (
	"context"

	"github.com/myphysiotime/PhysioTime-BookingService/internal/domain"
	"github.com/myphysiotime/PhysioTime-BookingService/internal/service/payments/models"
)

type PaymentService interface {
	UpdateStatus(ctx context.Context, actor domain.Actor, id int64, req *models.UpdatePaymentStatusRequest) (*models.PaymentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
