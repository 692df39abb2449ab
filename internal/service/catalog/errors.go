package catalog

import "github.com/myphysiotime/PhysioTime-BookingService/internal/domain"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = domain.NewError(domain.ErrNotFound, "service not found")

	// ErrServiceInUse возвращается при удалении услуги, на которую есть бронирования или платежи
	ErrServiceInUse = domain.NewError(domain.ErrConflict, "service has bookings or payments, deactivate it instead")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = domain.NewError(domain.ErrValidation, "invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = domain.NewError(domain.ErrInternal, "service: internal error")
)
