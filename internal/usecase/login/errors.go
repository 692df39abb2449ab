package login

import "github.com/myphysiotime/PhysioTime-BookingService/internal/domain"

var (
	// ErrInvalidCredentials возвращается и для неизвестного email, и для неверного пароля
	ErrInvalidCredentials = domain.NewError(domain.ErrUnauthenticated, "invalid email or password")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = domain.NewError(domain.ErrValidation, "login: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = domain.NewError(domain.ErrInternal, "login: internal error")
)
