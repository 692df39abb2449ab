package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrSlotNotAvailable возвращается, когда интервал пересекается с другим бронированием физиотерапевта
	ErrSlotNotAvailable = errors.New("booking.repository: slot not available")

	// ErrConcurrentUpdate возвращается, когда сериализуемая транзакция конфликтует с параллельной
	ErrConcurrentUpdate = errors.New("booking.repository: concurrent update, transaction aborted")

	// ErrReferenceNotFound возвращается, когда услуга или пользователь по ссылке не существует
	ErrReferenceNotFound = errors.New("booking.repository: referenced service or user not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
