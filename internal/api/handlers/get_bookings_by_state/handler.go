package get_bookings_by_state

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/myphysiotime/PhysioTime-BookingService/internal/api/handlers"
	"github.com/myphysiotime/PhysioTime-BookingService/internal/api/middleware"
	"github.com/myphysiotime/PhysioTime-BookingService/internal/domain"
)

const (
	msgMissingUser  = "требуется авторизация"
	msgForbidden    = "доступ запрещен"
	msgInvalidState = "некорректное состояние бронирования, ожидается PENDING, CONFIRMED, COMPLETED или CANCELLED"
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

// Handle GET /api/v1/bookings/state/{state}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("GET /bookings/state/{state} - Missing actor")
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	state := mux.Vars(r)["state"]

	result, err := h.service.GetByState(r.Context(), actor, state)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrForbidden):
			h.logger.Warn("GET /bookings/state/{state} - Access denied: user_id=%d", actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, domain.ErrValidation):
			h.logger.Warn("GET /bookings/state/{state} - Invalid state %q: %v", state, err)
			handlers.RespondBadRequest(w, msgInvalidState)

		default:
			h.logger.Error("GET /bookings/state/{state} - Failed to get bookings: state=%s, error=%v", state, err)
			handlers.RespondDomainError(w, err)
		}
		return
	}

	h.logger.Info("GET /bookings/state/{state} - Bookings retrieved successfully: state=%s, count=%d",
		state, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result.Bookings)
}
