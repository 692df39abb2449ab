package payment

import "errors"

var (
	// ErrPaymentNotFound возвращается, когда платеж не найден
	ErrPaymentNotFound = errors.New("payment.repository: payment not found")

	// ErrReferenceExists возвращается при повторном использовании ссылки платежного шлюза
	ErrReferenceExists = errors.New("payment.repository: payment reference already exists")

	// ErrReferenceNotFound возвращается, когда услуга или клиент по ссылке не существует
	ErrReferenceNotFound = errors.New("payment.repository: referenced service or client not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("payment.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("payment.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("payment.repository: failed to scan row")
)
