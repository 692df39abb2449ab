package get_all_services

import (
	"errors"
	"net/http"

	"github.com/myphysiotime/PhysioTime-BookingService/internal/api/handlers"
	"github.com/myphysiotime/PhysioTime-BookingService/internal/api/middleware"
	"github.com/myphysiotime/PhysioTime-BookingService/internal/domain"
)

const (
	msgMissingUser = "требуется авторизация"
	msgForbidden   = "доступ запрещен"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/services/all
// Включая неактивные, только для администратора
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("GET /services/all - Missing actor")
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	result, err := h.service.ListAll(r.Context(), actor)
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			h.logger.Warn("GET /services/all - Access denied: user_id=%d", actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)
			return
		}
		h.logger.Error("GET /services/all - Failed to list services: %v", err)
		handlers.RespondDomainError(w, err)
		return
	}

	h.logger.Info("GET /services/all - Services retrieved: count=%d", len(result.Services))
	handlers.RespondJSON(w, http.StatusOK, result.Services)
}
