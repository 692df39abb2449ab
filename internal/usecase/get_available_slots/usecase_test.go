package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myphysiotime/PhysioTime-BookingService/internal/domain"
	"github.com/myphysiotime/PhysioTime-BookingService/internal/slots"
	"github.com/myphysiotime/PhysioTime-BookingService/pkg/logger"
	"github.com/myphysiotime/PhysioTime-BookingService/pkg/types"
)

var clinicTZ = time.FixedZone("CST", -6*60*60)

type stubBookings struct {
	bookings []domain.ScheduledBooking
	err      error
	from, to time.Time
}

func (s *stubBookings) GetScheduled(_ context.Context, from, to time.Time, _ *int64) ([]domain.ScheduledBooking, error) {
	s.from, s.to = from, to
	return s.bookings, s.err
}

func newCalculator() *slots.Calculator {
	return slots.NewCalculator(slots.Hours{
		Open:        types.MustParseTimeOfDay("09:00"),
		Close:       types.MustParseTimeOfDay("12:00"),
		StepMinutes: 30,
		ClosedDays:  []time.Weekday{time.Sunday},
		Location:    clinicTZ,
	})
}

var client = domain.Actor{UserID: 1, Email: "a@x.com", Role: domain.RoleClient}

func available(slots []domain.TimeSlot) []string {
	res := make([]string, 0)
	for _, s := range slots {
		if s.Available {
			res = append(res, s.Time.String())
		}
	}
	return res
}

func TestGetAvailableSlots_DefaultDuration(t *testing.T) {
	repo := &stubBookings{bookings: []domain.ScheduledBooking{{
		BookingID:       1,
		Start:           time.Date(2025, 6, 2, 10, 0, 0, 0, clinicTZ),
		DurationMinutes: 60,
		State:           domain.StatePending,
	}}}
	uc := NewUseCase(repo, newCalculator(), logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{Actor: client, Date: time.Date(2025, 6, 2, 0, 0, 0, 0, clinicTZ)})
	require.NoError(t, err)

	assert.Equal(t, 60, resp.DurationMinutes)
	assert.Len(t, resp.Slots, 5)
	assert.Equal(t, []string{"09:00", "11:00"}, available(resp.Slots))

	assert.True(t, repo.from.Equal(time.Date(2025, 6, 2, 0, 0, 0, 0, clinicTZ)))
	assert.True(t, repo.to.Equal(time.Date(2025, 6, 3, 0, 0, 0, 0, clinicTZ)))
}

func TestGetAvailableSlots_CancelledBookingFreesSlot(t *testing.T) {
	repo := &stubBookings{bookings: []domain.ScheduledBooking{{
		BookingID:       1,
		Start:           time.Date(2025, 6, 2, 10, 0, 0, 0, clinicTZ),
		DurationMinutes: 60,
		State:           domain.StateCancelled,
	}}}
	uc := NewUseCase(repo, newCalculator(), logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{Actor: client, Date: time.Date(2025, 6, 2, 0, 0, 0, 0, clinicTZ), DurationMinutes: 60})
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30", "11:00"}, available(resp.Slots))
}

func TestGetAvailableSlots_ClosedDay(t *testing.T) {
	uc := NewUseCase(&stubBookings{}, newCalculator(), logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{Actor: client, Date: time.Date(2025, 6, 1, 0, 0, 0, 0, clinicTZ)})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestGetAvailableSlots_Errors(t *testing.T) {
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, clinicTZ)

	tests := []struct {
		name string
		req  *Request
		repo *stubBookings
		kind error
	}{
		{name: "anonymous", req: &Request{Date: date}, repo: &stubBookings{}, kind: domain.ErrUnauthenticated},
		{name: "duration too long", req: &Request{Actor: client, Date: date, DurationMinutes: 481}, repo: &stubBookings{}, kind: domain.ErrValidation},
		{name: "negative duration", req: &Request{Actor: client, Date: date, DurationMinutes: -5}, repo: &stubBookings{}, kind: domain.ErrValidation},
		{name: "missing date", req: &Request{Actor: client}, repo: &stubBookings{}, kind: domain.ErrValidation},
		{name: "repository failure", req: &Request{Actor: client, Date: date}, repo: &stubBookings{err: errors.New("db down")}, kind: domain.ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewUseCase(tt.repo, newCalculator(), logger.NewNop())

			_, err := uc.Execute(context.Background(), tt.req)
			require.Error(t, err)
			assert.Equal(t, tt.kind, domain.KindOf(err))
		})
	}
}
