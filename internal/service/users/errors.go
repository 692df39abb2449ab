package users

import "github.com/myphysiotime/PhysioTime-BookingService/internal/domain"

var (
	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = domain.NewError(domain.ErrNotFound, "user not found")

	// ErrClientNotFound возвращается, когда клиент не найден
	ErrClientNotFound = domain.NewError(domain.ErrNotFound, "client not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = domain.NewError(domain.ErrValidation, "invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = domain.NewError(domain.ErrInternal, "service: internal error")
)
