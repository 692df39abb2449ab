package models

import (
	"time"

	"github.com/myphysiotime/PhysioTime-BookingService/internal/domain"
)

// Response модели

// ServiceSummary услуга в составе бронирования
type ServiceSummary struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
}

// PersonSummary клиент или физиотерапевт в составе бронирования
type PersonSummary struct {
	ID        int64   `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID              int64          `json:"id"`
	ScheduledAt     string         `json:"scheduledAt"` // RFC 3339 со смещением клиники
	EndsAt          string         `json:"endsAt"`
	State           string         `json:"state"`
	Notes           *string        `json:"notes,omitempty"`
	Service         ServiceSummary `json:"service"`
	Client          PersonSummary  `json:"client"`
	Physiotherapist *PersonSummary `json:"physiotherapist,omitempty"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBookingDetail конвертирует domain модель в DTO, время в loc
func FromDomainBookingDetail(d *domain.BookingDetail, loc *time.Location) *BookingResponse {
	if d == nil {
		return nil
	}

	end := d.EndsAt
	if end.IsZero() {
		end = d.ScheduledAt.Add(time.Duration(d.Service.DurationMinutes) * time.Minute)
	}

	resp := &BookingResponse{
		ID:          d.ID,
		ScheduledAt: d.ScheduledAt.In(loc).Format(time.RFC3339),
		EndsAt:      end.In(loc).Format(time.RFC3339),
		State:       string(d.State),
		Notes:       d.Notes,
		Service: ServiceSummary{
			ID:              d.Service.ID,
			Name:            d.Service.Name,
			Price:           d.Service.Price,
			DurationMinutes: d.Service.DurationMinutes,
		},
		Client: PersonSummary{
			ID:        d.Client.ID,
			FirstName: d.Client.FirstName,
			LastName:  d.Client.LastName,
			Email:     d.Client.Email,
			Phone:     d.Client.Phone,
		},
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}

	if d.Physiotherapist != nil {
		resp.Physiotherapist = &PersonSummary{
			ID:        d.Physiotherapist.ID,
			FirstName: d.Physiotherapist.FirstName,
			LastName:  d.Physiotherapist.LastName,
		}
	}

	return resp
}

// FromDomainBookingDetailList конвертирует список бронирований
func FromDomainBookingDetailList(details []*domain.BookingDetail, loc *time.Location) *BookingListResponse {
	resp := &BookingListResponse{Bookings: make([]BookingResponse, 0, len(details))}
	for _, d := range details {
		resp.Bookings = append(resp.Bookings, *FromDomainBookingDetail(d, loc))
	}
	return resp
}
