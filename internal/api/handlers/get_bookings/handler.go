package get_bookings

import (
	"errors"
	"net/http"

	"github.com/myphysiotime/PhysioTime-BookingService/internal/api/handlers"
	"github.com/myphysiotime/PhysioTime-BookingService/internal/api/middleware"
	"github.com/myphysiotime/PhysioTime-BookingService/internal/domain"
)

const (
	msgMissingUser  = "требуется авторизация"
	msgForbidden    = "доступ запрещен"
	msgInvalidState = "некорректное состояние бронирования"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings
// Query params: state (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("GET /bookings - Missing actor")
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	var statePtr *string
	if state := r.URL.Query().Get("state"); state != "" {
		statePtr = &state
	}

	result, err := h.service.GetAll(r.Context(), actor, statePtr)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrForbidden):
			h.logger.Warn("GET /bookings - Access denied: user_id=%d", actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, domain.ErrValidation):
			h.logger.Warn("GET /bookings - Invalid state filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidState)

		default:
			h.logger.Error("GET /bookings - Failed to get bookings: error=%v", err)
			handlers.RespondDomainError(w, err)
		}
		return
	}

	h.logger.Info("GET /bookings - Bookings retrieved successfully: count=%d", len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result.Bookings)
}
