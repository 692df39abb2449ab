package domain

import "errors"

// Виды ошибок. Каждая sentinel-ошибка пакетов привязывается к одному из них через NewError,
// HTTP слой определяет статус ответа по виду (KindOf).
var (
	ErrValidation      = errors.New("validation error")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrInternal        = errors.New("internal error")
)

var kinds = []error{
	ErrValidation,
	ErrNotFound,
	ErrConflict,
	ErrUnauthenticated,
	ErrForbidden,
	ErrInternal,
}

type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string {
	return e.msg
}

func (e *kindError) Unwrap() error {
	return e.kind
}

// NewError создает sentinel-ошибку с текстом msg, которая errors.Is(err, kind)
func NewError(kind error, msg string) error {
	return &kindError{kind: kind, msg: msg}
}

// KindOf возвращает вид ошибки. Ошибки без вида считаются внутренними.
func KindOf(err error) error {
	if err == nil {
		return nil
	}
	for _, kind := range kinds {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return ErrInternal
}
