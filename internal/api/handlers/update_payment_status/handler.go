package update_payment_status

import (
	"errors"
	"net/http"

	"github.com/myphysiotime/PhysioTime-BookingService/internal/api/handlers"
	"github.com/myphysiotime/PhysioTime-BookingService/internal/api/middleware"
	"github.com/myphysiotime/PhysioTime-BookingService/internal/domain"
	"github.com/myphysiotime/PhysioTime-BookingService/internal/service/payments"
	"github.com/myphysiotime/PhysioTime-BookingService/internal/service/payments/models"
)

const (
	msgInvalidPaymentID   = "некорректный ID платежа"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUser        = "требуется авторизация"
	msgNotFound           = "платеж не найден"
	msgInvalidStatus      = "некорректный статус платежа"
	msgIllegalTransition  = "недопустимая смена статуса платежа"
	msgForbidden          = "менять статус платежа может только администратор"
)

type Handler struct {
	service PaymentService
	logger  Logger
}

func NewHandler(service PaymentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/payments/{id}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	paymentID, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("PATCH /payments/{id}/status - Invalid payment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPaymentID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("PATCH /payments/{id}/status - Missing actor")
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	var req models.UpdatePaymentStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /payments/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateStatus(r.Context(), actor, paymentID, &req)
	if err != nil {
		switch {
		case errors.Is(err, payments.ErrPaymentNotFound):
			h.logger.Warn("PATCH /payments/{id}/status - Payment not found: payment_id=%d", paymentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, domain.ErrInvalidPaymentStatus):
			h.logger.Warn("PATCH /payments/{id}/status - Invalid status %q", req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, domain.ErrIllegalPaymentTransition):
			h.logger.Warn("PATCH /payments/{id}/status - Illegal transition: payment_id=%d, %v", paymentID, err)
			handlers.RespondBadRequest(w, msgIllegalTransition)

		case errors.Is(err, domain.ErrForbidden):
			h.logger.Warn("PATCH /payments/{id}/status - Access denied: user_id=%d", actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, domain.ErrValidation):
			h.logger.Warn("PATCH /payments/{id}/status - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PATCH /payments/{id}/status - Failed to update payment: payment_id=%d, error=%v", paymentID, err)
			handlers.RespondDomainError(w, err)
		}
		return
	}

	h.logger.Info("PATCH /payments/{id}/status - Payment status updated: payment_id=%d, status=%s", paymentID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
