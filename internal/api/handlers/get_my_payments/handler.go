package get_my_payments

import (
	"net/http"

	"github.com/myphysiotime/PhysioTime-BookingService/internal/api/handlers"
	"github.com/myphysiotime/PhysioTime-BookingService/internal/api/middleware"
)

const msgMissingUser = "требуется авторизация"

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

// Handle GET /api/v1/payments/my
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("GET /payments/my - Missing actor")
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	result, err := h.service.GetMy(r.Context(), actor)
	if err != nil {
		h.logger.Error("GET /payments/my - Failed to get payments: user_id=%d, error=%v", actor.UserID, err)
		handlers.RespondDomainError(w, err)
		return
	}

	h.logger.Info("GET /payments/my - Payments retrieved: user_id=%d, count=%d", actor.UserID, len(result.Payments))
	handlers.RespondJSON(w, http.StatusOK, result.Payments)
}
