package update_booking

import (
	"errors"
	"net/http"
	"time"

	"github.com/myphysiotime/PhysioTime-BookingService/internal/api/handlers"
	"github.com/myphysiotime/PhysioTime-BookingService/internal/api/middleware"
	"github.com/myphysiotime/PhysioTime-BookingService/internal/domain"
	updateBooking "github.com/myphysiotime/PhysioTime-BookingService/internal/usecase/update_booking"
)

const (
	msgInvalidBookingID    = "некорректный ID бронирования"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgMissingUser         = "требуется авторизация"
	msgNotFound            = "бронирование не найдено"
	msgPhysioNotFound      = "физиотерапевт не найден"
	msgNotPhysiotherapist  = "пользователь не является сотрудником клиники"
	msgBookingFinalized    = "бронирование уже завершено или отменено"
	msgPhysioBusy          = "у физиотерапевта уже есть прием в это время"
	msgConcurrentUpdate    = "бронирование было изменено, повторите запрос"
	msgIllegalTransition   = "недопустимая смена состояния бронирования"
	msgTransitionForbidden = "смена состояния недоступна для вашей роли"
	msgForbidden           = "доступ запрещен"
)

type Handler struct {
	useCase  UpdateBookingUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase UpdateBookingUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle PUT /api/v1/bookings/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("PUT /bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("PUT /bookings/{id} - Missing actor")
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	var req UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(actor, bookingID))
	if err != nil {
		switch {
		case errors.Is(err, updateBooking.ErrBookingNotFound):
			h.logger.Warn("PUT /bookings/{id} - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateBooking.ErrPhysiotherapistNotFound):
			h.logger.Warn("PUT /bookings/{id} - Physiotherapist not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgPhysioNotFound)

		case errors.Is(err, updateBooking.ErrNotPhysiotherapist):
			h.logger.Warn("PUT /bookings/{id} - Not a physiotherapist: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgNotPhysiotherapist)

		case errors.Is(err, updateBooking.ErrBookingFinalized):
			h.logger.Warn("PUT /bookings/{id} - Booking finalized: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgBookingFinalized)

		case errors.Is(err, updateBooking.ErrPhysiotherapistBusy):
			h.logger.Warn("PUT /bookings/{id} - Physiotherapist busy: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgPhysioBusy)

		case errors.Is(err, updateBooking.ErrConcurrentUpdate):
			h.logger.Warn("PUT /bookings/{id} - Concurrent update: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgConcurrentUpdate)

		case errors.Is(err, domain.ErrIllegalTransition):
			h.logger.Warn("PUT /bookings/{id} - Illegal transition: booking_id=%d, %v", bookingID, err)
			handlers.RespondBadRequest(w, msgIllegalTransition)

		case errors.Is(err, domain.ErrTransitionForbidden):
			h.logger.Warn("PUT /bookings/{id} - Transition forbidden: booking_id=%d, user_id=%d", bookingID, actor.UserID)
			handlers.RespondForbidden(w, msgTransitionForbidden)

		case errors.Is(err, domain.ErrForbidden):
			h.logger.Warn("PUT /bookings/{id} - Access denied: booking_id=%d, user_id=%d", bookingID, actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, domain.ErrValidation):
			h.logger.Warn("PUT /bookings/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /bookings/{id} - Failed to update booking: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondDomainError(w, err)
		}
		return
	}

	h.logger.Info("PUT /bookings/{id} - Booking updated successfully: booking_id=%d, state=%s",
		result.Booking.ID, result.Booking.State)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result, h.location))
}
