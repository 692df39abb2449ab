package update_booking

import "github.com/myphysiotime/PhysioTime-BookingService/internal/domain"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = domain.NewError(domain.ErrNotFound, "booking not found")

	// ErrPhysiotherapistNotFound возвращается, когда назначаемый сотрудник не найден
	ErrPhysiotherapistNotFound = domain.NewError(domain.ErrNotFound, "physiotherapist not found")

	// ErrNotPhysiotherapist возвращается, когда назначаемый пользователь не сотрудник клиники
	ErrNotPhysiotherapist = domain.NewError(domain.ErrValidation, "user is not a physiotherapist")

	// ErrBookingFinalized возвращается при назначении на завершенное или отмененное бронирование
	ErrBookingFinalized = domain.NewError(domain.ErrValidation, "booking is already completed or cancelled")

	// ErrPhysiotherapistBusy возвращается, когда у физиотерапевта пересекающийся прием
	ErrPhysiotherapistBusy = domain.NewError(domain.ErrConflict, "physiotherapist already has a booking at this time")

	// ErrConcurrentUpdate возвращается, когда бронирование изменили параллельно
	ErrConcurrentUpdate = domain.NewError(domain.ErrConflict, "booking was modified concurrently, retry")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = domain.NewError(domain.ErrValidation, "update_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = domain.NewError(domain.ErrInternal, "update_booking: internal error")
)
