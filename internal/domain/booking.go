package domain

import (
	"fmt"
	"strings"
	"time"
)

// BookingState represents the lifecycle stage of a booking
type BookingState string

const (
	StatePending   BookingState = "PENDING"
	StateConfirmed BookingState = "CONFIRMED"
	StateCompleted BookingState = "COMPLETED"
	StateCancelled BookingState = "CANCELLED"
)

// ErrInvalidBookingState возвращается при разборе неизвестного состояния
var ErrInvalidBookingState = NewError(ErrValidation, "invalid booking state")

// ParseBookingState разбирает состояние бронирования (регистр не важен)
func ParseBookingState(s string) (BookingState, error) {
	state := BookingState(strings.ToUpper(strings.TrimSpace(s)))
	switch state {
	case StatePending, StateConfirmed, StateCompleted, StateCancelled:
		return state, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidBookingState, s)
}

// IsTerminal returns true for states no transition leaves
func (s BookingState) IsTerminal() bool {
	return s == StateCompleted || s == StateCancelled
}

// Booking запись на приём
// Ссылки на услугу, клиента и физиотерапевта хранятся только по ID
type Booking struct {
	ID                int64
	ServiceID         int64
	ClientID          int64
	PhysiotherapistID *int64
	ScheduledAt       time.Time
	State             BookingState
	Notes             *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// IsActive returns true if the booking occupies its slot
func (b *Booking) IsActive() bool {
	return b.State != StateCancelled
}

// BookingUpdate изменяемые поля бронирования. nil - поле не меняется
type BookingUpdate struct {
	State             *BookingState
	Notes             *string
	PhysiotherapistID *int64
}

// ScheduledBooking интервал, который занимает бронирование
// Длительность берется из услуги. Используется калькулятором слотов.
type ScheduledBooking struct {
	BookingID         int64
	PhysiotherapistID *int64
	Start             time.Time
	DurationMinutes   int
	State             BookingState
}

// End конец интервала (не включительно)
func (b ScheduledBooking) End() time.Time {
	return b.Start.Add(time.Duration(b.DurationMinutes) * time.Minute)
}

// Overlaps проверяет пересечение полуоткрытых интервалов [start, end) и [b.Start, b.End())
func (b ScheduledBooking) Overlaps(start, end time.Time) bool {
	return b.Start.Before(end) && start.Before(b.End())
}

// BookingDetail бронирование вместе со снимками связанных сущностей для отображения
type BookingDetail struct {
	Booking
	EndsAt          time.Time
	Service         ServiceInfo
	Client          ClientInfo
	Physiotherapist *PhysiotherapistInfo
}

type ServiceInfo struct {
	ID              int64
	Name            string
	Price           float64
	DurationMinutes int
}

type ClientInfo struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
	Phone     *string
}

type PhysiotherapistInfo struct {
	ID        int64
	FirstName string
	LastName  string
}

// BookingsFilter фильтр списка бронирований
type BookingsFilter struct {
	ClientID *int64
	State    *BookingState
	From     *time.Time
	To       *time.Time
}
