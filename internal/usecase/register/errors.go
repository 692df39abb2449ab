package register

import "github.com/myphysiotime/PhysioTime-BookingService/internal/domain"

var (
	// ErrEmailExists возвращается, когда email уже зарегистрирован
	ErrEmailExists = domain.NewError(domain.ErrConflict, "email already registered")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = domain.NewError(domain.ErrValidation, "register: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = domain.NewError(domain.ErrInternal, "register: internal error")
)
