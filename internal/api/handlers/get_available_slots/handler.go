package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/myphysiotime/PhysioTime-BookingService/internal/api/handlers"
	"github.com/myphysiotime/PhysioTime-BookingService/internal/api/middleware"
	getAvailableSlots "github.com/myphysiotime/PhysioTime-BookingService/internal/usecase/get_available_slots"
)

const (
	msgMissingUser     = "требуется авторизация"
	msgMissingDate     = "дата обязательна"
	msgInvalidQuery    = "некорректные параметры, ожидается date=YYYY-MM-DD и duration в минутах"
	msgInvalidDuration = "длительность должна быть от 1 до 480 минут"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/slots
// Query params: date (required, YYYY-MM-DD), duration (optional, минуты)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("GET /bookings/slots - Missing actor")
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	query := r.URL.Query()
	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /bookings/slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(actor, dateStr, query.Get("duration"))
	if err != nil {
		h.logger.Warn("GET /bookings/slots - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidDuration):
			h.logger.Warn("GET /bookings/slots - Invalid duration: %d", useCaseReq.DurationMinutes)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		default:
			h.logger.Error("GET /bookings/slots - Failed to get slots: date=%s, error=%v", dateStr, err)
			handlers.RespondDomainError(w, err)
		}
		return
	}

	h.logger.Info("GET /bookings/slots - Slots retrieved successfully: date=%s, duration=%d, slots_count=%d",
		dateStr, result.DurationMinutes, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
