package get_client

import (
	"errors"
	"net/http"

	"github.com/myphysiotime/PhysioTime-BookingService/internal/api/handlers"
	"github.com/myphysiotime/PhysioTime-BookingService/internal/api/middleware"
	"github.com/myphysiotime/PhysioTime-BookingService/internal/domain"
	"github.com/myphysiotime/PhysioTime-BookingService/internal/service/users"
)

const (
	msgInvalidClientID = "некорректный ID клиента"
	msgMissingUser     = "требуется авторизация"
	msgNotFound        = "клиент не найден"
	msgForbidden       = "доступ запрещен"
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

// Handle GET /api/v1/clients/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("GET /clients/{id} - Invalid client ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("GET /clients/{id} - Missing actor")
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	result, err := h.service.GetClientByID(r.Context(), actor, clientID)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrClientNotFound):
			h.logger.Warn("GET /clients/{id} - Client not found: client_id=%d", clientID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, domain.ErrForbidden):
			h.logger.Warn("GET /clients/{id} - Access denied: user_id=%d", actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /clients/{id} - Failed to get client: client_id=%d, error=%v", clientID, err)
			handlers.RespondDomainError(w, err)
		}
		return
	}

	h.logger.Info("GET /clients/{id} - Client retrieved: client_id=%d", clientID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
