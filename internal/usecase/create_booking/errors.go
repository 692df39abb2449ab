package create_booking

import "github.com/myphysiotime/PhysioTime-BookingService/internal/domain"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = domain.NewError(domain.ErrNotFound, "service not found")

	// ErrServiceInactive возвращается, когда услуга снята с записи
	ErrServiceInactive = domain.NewError(domain.ErrValidation, "service is not available for booking")

	// ErrClientNotFound возвращается, когда клиент не найден
	ErrClientNotFound = domain.NewError(domain.ErrNotFound, "client not found")

	// ErrPastDate возвращается при попытке записаться на прошедшее время
	ErrPastDate = domain.NewError(domain.ErrValidation, "booking time is in the past")

	// ErrOutsideWorkingHours возвращается, когда визит не помещается в рабочие часы клиники
	ErrOutsideWorkingHours = domain.NewError(domain.ErrValidation, "booking time is outside working hours")

	// ErrSlotNotAvailable возвращается, когда выбранное время уже занято
	ErrSlotNotAvailable = domain.NewError(domain.ErrConflict, "time slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = domain.NewError(domain.ErrValidation, "create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = domain.NewError(domain.ErrInternal, "create_booking: internal error")
)
