package domain

import (
	"fmt"
	"strings"
	"time"
)

// PaymentStatus represents the status of a recorded payment
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentSucceeded PaymentStatus = "SUCCEEDED"
	PaymentFailed    PaymentStatus = "FAILED"
	PaymentRefunded  PaymentStatus = "REFUNDED"
)

var (
	ErrInvalidPaymentStatus     = NewError(ErrValidation, "invalid payment status")
	ErrIllegalPaymentTransition = NewError(ErrValidation, "illegal payment status transition")
)

var paymentTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentPending:   {PaymentSucceeded, PaymentFailed},
	PaymentSucceeded: {PaymentRefunded},
}

// ParsePaymentStatus разбирает статус платежа (регистр не важен)
func ParsePaymentStatus(s string) (PaymentStatus, error) {
	status := PaymentStatus(strings.ToUpper(strings.TrimSpace(s)))
	switch status {
	case PaymentPending, PaymentSucceeded, PaymentFailed, PaymentRefunded:
		return status, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPaymentStatus, s)
}

// CanTransitionTo проверяет допустимость смены статуса платежа
func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	for _, allowed := range paymentTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Payment платеж клиента. Только фиксируется, не проводится.
type Payment struct {
	ID               int64
	PaymentReference string
	ServiceID        int64
	ClientID         int64
	Amount           float64
	Currency         string
	Status           PaymentStatus
	CreatedAt        time.Time
}
