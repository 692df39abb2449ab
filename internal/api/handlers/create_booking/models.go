package create_booking

import (
	"time"

	"github.com/myphysiotime/PhysioTime-BookingService/internal/domain"
	createBooking "github.com/myphysiotime/PhysioTime-BookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ServiceID   int64   `json:"serviceId"`
	ClientID    *int64  `json:"clientId,omitempty"` // Только для администратора
	ScheduledAt string  `json:"scheduledAt"`        // "2025-06-02T10:00:00" (время клиники) или RFC 3339
	Notes       *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID                int64   `json:"id"`
	ServiceID         int64   `json:"serviceId"`
	ClientID          int64   `json:"clientId"`
	PhysiotherapistID *int64  `json:"physiotherapistId,omitempty"`
	ScheduledAt       string  `json:"scheduledAt"`
	EndsAt            string  `json:"endsAt"`
	DurationMinutes   int     `json:"durationMinutes"`
	State             string  `json:"state"`
	Notes             *string `json:"notes,omitempty"`
	CreatedAt         string  `json:"createdAt"`
	UpdatedAt         string  `json:"updatedAt"`
}

// ParseScheduledAt разбирает время визита
// Время без смещения считается временем клиники
func ParseScheduledAt(raw string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.ParseInLocation(domain.DateTimeFormat, raw, loc)
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(actor domain.Actor, loc *time.Location) (*createBooking.Request, error) {
	scheduledAt, err := ParseScheduledAt(r.ScheduledAt, loc)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		Actor:       actor,
		ServiceID:   r.ServiceID,
		ClientID:    r.ClientID,
		ScheduledAt: scheduledAt,
		Notes:       r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response, loc *time.Location) *BookingResponse {
	b := resp.Booking
	return &BookingResponse{
		ID:                b.ID,
		ServiceID:         b.ServiceID,
		ClientID:          b.ClientID,
		PhysiotherapistID: b.PhysiotherapistID,
		ScheduledAt:       b.ScheduledAt.In(loc).Format(time.RFC3339),
		EndsAt:            resp.EndsAt.In(loc).Format(time.RFC3339),
		DurationMinutes:   resp.DurationMinutes,
		State:             string(b.State),
		Notes:             b.Notes,
		CreatedAt:         b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         b.UpdatedAt.Format(time.RFC3339),
	}
}
