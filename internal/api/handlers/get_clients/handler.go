package get_clients

import (
	"errors"
	"net/http"

	"github.com/myphysiotime/PhysioTime-BookingService/internal/api/handlers"
	"github.com/myphysiotime/PhysioTime-BookingService/internal/api/middleware"
	"github.com/myphysiotime/PhysioTime-BookingService/internal/domain"
)

const (
	msgMissingUser = "требуется авторизация"
	msgForbidden   = "список клиентов доступен только администратору"
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

// Handle GET /api/v1/clients
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("GET /clients - Missing actor")
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	result, err := h.service.GetAllClients(r.Context(), actor)
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			h.logger.Warn("GET /clients - Access denied: user_id=%d", actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)
			return
		}
		h.logger.Error("GET /clients - Failed to get clients: %v", err)
		handlers.RespondDomainError(w, err)
		return
	}

	h.logger.Info("GET /clients - Clients retrieved: count=%d", len(result.Clients))
	handlers.RespondJSON(w, http.StatusOK, result.Clients)
}
