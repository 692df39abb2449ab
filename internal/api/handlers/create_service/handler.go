package create_service

import (
	"errors"
	"net/http"

	"github.com/myphysiotime/PhysioTime-BookingService/internal/api/handlers"
	"github.com/myphysiotime/PhysioTime-BookingService/internal/api/middleware"
	"github.com/myphysiotime/PhysioTime-BookingService/internal/domain"
	"github.com/myphysiotime/PhysioTime-BookingService/internal/service/catalog/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUser        = "требуется авторизация"
	msgForbidden          = "управлять услугами может только администратор"
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

// Handle POST /api/v1/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("POST /services - Missing actor")
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	var req models.CreateServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), actor, &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrForbidden):
			h.logger.Warn("POST /services - Access denied: user_id=%d", actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, domain.ErrValidation):
			h.logger.Warn("POST /services - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /services - Failed to create service: %v", err)
			handlers.RespondDomainError(w, err)
		}
		return
	}

	h.logger.Info("POST /services - Service created: service_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
