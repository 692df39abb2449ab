package get_me

import (
	"errors"
	"net/http"

	"github.com/myphysiotime/PhysioTime-BookingService/internal/api/handlers"
	"github.com/myphysiotime/PhysioTime-BookingService/internal/api/middleware"
	"github.com/myphysiotime/PhysioTime-BookingService/internal/service/users"
)

const (
	msgMissingUser = "требуется авторизация"
	msgNotFound    = "пользователь не найден"
)

type Handler struct {
	service UserService
	logger  Logger
}

func NewHandler(service UserService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/me
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("GET /users/me - Missing actor")
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	result, err := h.service.GetMe(r.Context(), actor)
	if err != nil {
		// Токен валиден, но пользователя уже нет
		if errors.Is(err, users.ErrUserNotFound) {
			h.logger.Warn("GET /users/me - User not found: user_id=%d", actor.UserID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /users/me - Failed to get user: user_id=%d, error=%v", actor.UserID, err)
		handlers.RespondDomainError(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
