package update_booking

import (
	"time"

	"github.com/myphysiotime/PhysioTime-BookingService/internal/domain"
	updateBooking "github.com/myphysiotime/PhysioTime-BookingService/internal/usecase/update_booking"
)

// UpdateBookingRequest HTTP request model. Отсутствующие поля не меняются
type UpdateBookingRequest struct {
	State             *string `json:"state,omitempty"`
	Notes             *string `json:"notes,omitempty"`
	PhysiotherapistID *int64  `json:"physiotherapistId,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID                int64   `json:"id"`
	ServiceID         int64   `json:"serviceId"`
	ClientID          int64   `json:"clientId"`
	PhysiotherapistID *int64  `json:"physiotherapistId,omitempty"`
	ScheduledAt       string  `json:"scheduledAt"`
	State             string  `json:"state"`
	Notes             *string `json:"notes,omitempty"`
	CreatedAt         string  `json:"createdAt"`
	UpdatedAt         string  `json:"updatedAt"`
}

func (r *UpdateBookingRequest) ToUseCaseRequest(actor domain.Actor, bookingID int64) *updateBooking.Request {
	req := &updateBooking.Request{
		Actor:             actor,
		BookingID:         bookingID,
		Notes:             r.Notes,
		PhysiotherapistID: r.PhysiotherapistID,
	}
	if r.State != nil {
		state := domain.BookingState(*r.State)
		req.State = &state
	}
	return req
}

func FromUseCaseResponse(resp *updateBooking.Response, loc *time.Location) *BookingResponse {
	b := resp.Booking
	return &BookingResponse{
		ID:                b.ID,
		ServiceID:         b.ServiceID,
		ClientID:          b.ClientID,
		PhysiotherapistID: b.PhysiotherapistID,
		ScheduledAt:       b.ScheduledAt.In(loc).Format(time.RFC3339),
		State:             string(b.State),
		Notes:             b.Notes,
		CreatedAt:         b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         b.UpdatedAt.Format(time.RFC3339),
	}
}
