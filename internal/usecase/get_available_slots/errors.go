package get_available_slots

import "github.com/myphysiotime/PhysioTime-BookingService/internal/domain"

var (
	// ErrInvalidDuration возвращается, когда длительность вне допустимого диапазона
	ErrInvalidDuration = domain.NewError(domain.ErrValidation, "duration must be between 1 and 480 minutes")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = domain.NewError(domain.ErrValidation, "get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = domain.NewError(domain.ErrInternal, "get_available_slots: internal error")
)
