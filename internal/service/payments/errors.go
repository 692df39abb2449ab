package payments

import "github.com/myphysiotime/PhysioTime-BookingService/internal/domain"

var (
	// ErrPaymentNotFound возвращается, когда платеж не найден
	ErrPaymentNotFound = domain.NewError(domain.ErrNotFound, "payment not found")

	// ErrServiceNotFound возвращается, когда оплачиваемая услуга не найдена
	ErrServiceNotFound = domain.NewError(domain.ErrNotFound, "service not found")

	// ErrClientNotFound возвращается, когда клиент не найден
	ErrClientNotFound = domain.NewError(domain.ErrNotFound, "client not found")

	// ErrReferenceExists возвращается при повторном использовании ссылки платежа
	ErrReferenceExists = domain.NewError(domain.ErrConflict, "payment reference already exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = domain.NewError(domain.ErrValidation, "invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = domain.NewError(domain.ErrInternal, "service: internal error")
)
