package create_booking

import (
	"errors"
	"net/http"
	"time"

	"github.com/myphysiotime/PhysioTime-BookingService/internal/api/handlers"
	"github.com/myphysiotime/PhysioTime-BookingService/internal/api/middleware"
	"github.com/myphysiotime/PhysioTime-BookingService/internal/domain"
	createBooking "github.com/myphysiotime/PhysioTime-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidScheduledAt  = "некорректное время визита, ожидается YYYY-MM-DDTHH:MM:SS"
	msgMissingUser         = "требуется авторизация"
	msgSlotNotAvailable    = "выбранное время уже занято"
	msgServiceNotFound     = "услуга не найдена"
	msgServiceInactive     = "услуга недоступна для записи"
	msgClientNotFound      = "клиент не найден"
	msgPastDate            = "нельзя записаться на прошедшее время"
	msgOutsideWorkingHours = "визит не помещается в рабочие часы клиники"
	msgForbidden           = "доступ запрещен"
)

type Handler struct {
	useCase  CreateBookingUseCase
	location *time.Location
	logger   Logger
}

// NewHandler location - часовой пояс клиники для времени без смещения
func NewHandler(useCase CreateBookingUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing actor")
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(actor, h.location)
	if err != nil {
		h.logger.Warn("POST /bookings - Invalid scheduledAt %q: %v", req.ScheduledAt, err)
		handlers.RespondBadRequest(w, msgInvalidScheduledAt)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: user_id=%d, scheduled_at=%s", actor.UserID, req.ScheduledAt)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /bookings - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrServiceInactive):
			h.logger.Warn("POST /bookings - Service inactive: service_id=%d", req.ServiceID)
			handlers.RespondBadRequest(w, msgServiceInactive)

		case errors.Is(err, createBooking.ErrClientNotFound):
			h.logger.Warn("POST /bookings - Client not found: user_id=%d", actor.UserID)
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, createBooking.ErrPastDate):
			h.logger.Warn("POST /bookings - Past date: user_id=%d, scheduled_at=%s", actor.UserID, req.ScheduledAt)
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, createBooking.ErrOutsideWorkingHours):
			h.logger.Warn("POST /bookings - Outside working hours: user_id=%d, scheduled_at=%s", actor.UserID, req.ScheduledAt)
			handlers.RespondBadRequest(w, msgOutsideWorkingHours)

		case errors.Is(err, domain.ErrForbidden):
			h.logger.Warn("POST /bookings - Access denied: user_id=%d", actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, domain.ErrValidation):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, error=%v", actor.UserID, err)
			handlers.RespondDomainError(w, err)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, client_id=%d, service_id=%d",
		result.Booking.ID, result.Booking.ClientID, result.Booking.ServiceID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result, h.location))
}
