package create_payment

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
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUser        = "требуется авторизация"
	msgServiceNotFound    = "услуга не найдена"
	msgClientNotFound     = "клиент не найден"
	msgReferenceExists    = "платеж с такой ссылкой уже существует"
	msgForbidden          = "доступ запрещен"
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

// Handle POST /api/v1/payments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("POST /payments - Missing actor")
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	var req models.CreatePaymentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /payments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), actor, &req)
	if err != nil {
		switch {
		case errors.Is(err, payments.ErrServiceNotFound):
			h.logger.Warn("POST /payments - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, payments.ErrClientNotFound):
			h.logger.Warn("POST /payments - Client not found")
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, payments.ErrReferenceExists):
			h.logger.Warn("POST /payments - Reference already exists")
			handlers.RespondConflict(w, msgReferenceExists)

		case errors.Is(err, domain.ErrForbidden):
			h.logger.Warn("POST /payments - Access denied: user_id=%d", actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, domain.ErrValidation):
			h.logger.Warn("POST /payments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /payments - Failed to create payment: user_id=%d, error=%v", actor.UserID, err)
			handlers.RespondDomainError(w, err)
		}
		return
	}

	h.logger.Info("POST /payments - Payment created: payment_id=%d, client_id=%d", result.ID, result.ClientID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
