package models

import (
	"time"

	"github.com/myphysiotime/PhysioTime-BookingService/internal/domain"
)

// Request модели

// CreatePaymentRequest запрос на фиксацию платежа
type CreatePaymentRequest struct {
	PaymentReference *string `json:"paymentReference,omitempty" validate:"omitempty,min=1,max=100"`
	ServiceID        int64   `json:"serviceId" validate:"required,min=1"`
	ClientID         *int64  `json:"clientId,omitempty" validate:"omitempty,min=1"` // Только для администратора
	Amount           float64 `json:"amount" validate:"gt=0"`
	Currency         string  `json:"currency,omitempty" validate:"omitempty,len=3,alpha"`
}

// UpdatePaymentStatusRequest запрос на смену статуса платежа
type UpdatePaymentStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// Response модели

// PaymentResponse ответ с данными платежа
type PaymentResponse struct {
	ID               int64     `json:"id"`
	PaymentReference string    `json:"paymentReference"`
	ServiceID        int64     `json:"serviceId"`
	ClientID         int64     `json:"clientId"`
	Amount           float64   `json:"amount"`
	Currency         string    `json:"currency"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"createdAt"`
}

// PaymentListResponse ответ со списком платежей
type PaymentListResponse struct {
	Payments []PaymentResponse `json:"payments"`
}

// FromDomainPayment конвертирует domain модель в DTO
func FromDomainPayment(p *domain.Payment) *PaymentResponse {
	if p == nil {
		return nil
	}
	return &PaymentResponse{
		ID:               p.ID,
		PaymentReference: p.PaymentReference,
		ServiceID:        p.ServiceID,
		ClientID:         p.ClientID,
		Amount:           p.Amount,
		Currency:         p.Currency,
		Status:           string(p.Status),
		CreatedAt:        p.CreatedAt,
	}
}

// FromDomainPaymentList конвертирует список платежей
func FromDomainPaymentList(payments []*domain.Payment) *PaymentListResponse {
	resp := &PaymentListResponse{Payments: make([]PaymentResponse, 0, len(payments))}
	for _, p := range payments {
		resp.Payments = append(resp.Payments, *FromDomainPayment(p))
	}
	return resp
}
