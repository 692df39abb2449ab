package update_booking

import "github.com/myphysiotime/PhysioTime-BookingService/internal/domain"

// Request модель запроса на изменение бронирования. nil - поле не меняется
type Request struct {
	Actor             domain.Actor
	BookingID         int64
	State             *domain.BookingState
	Notes             *string
	PhysiotherapistID *int64
}

// Response модель ответа с обновленным бронированием
type Response struct {
	Booking *domain.Booking
}
