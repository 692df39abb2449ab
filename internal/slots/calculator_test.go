package slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myphysiotime/PhysioTime-BookingService/internal/domain"
	"github.com/myphysiotime/PhysioTime-BookingService/pkg/types"
)

var clinicLoc = time.FixedZone("CST", -6*60*60)

func newTestCalculator(step int) *Calculator {
	return NewCalculator(Hours{
		Open:        types.MustParseTimeOfDay("09:00"),
		Close:       types.MustParseTimeOfDay("18:00"),
		StepMinutes: step,
		ClosedDays:  []time.Weekday{time.Sunday},
		Location:    clinicLoc,
	})
}

// 2025-06-02 понедельник
var monday = time.Date(2025, 6, 2, 0, 0, 0, 0, clinicLoc)

func at(hhmm string) time.Time {
	return types.MustParseTimeOfDay(hhmm).On(monday, clinicLoc)
}

func booking(hhmm string, duration int, state domain.BookingState) domain.ScheduledBooking {
	return domain.ScheduledBooking{Start: at(hhmm), DurationMinutes: duration, State: state}
}

func labels(slots []domain.TimeSlot, available bool) []string {
	var res []string
	for _, s := range slots {
		if s.Available == available {
			res = append(res, s.Time.String())
		}
	}
	return res
}

func TestCompute_EmptyDayAllAvailable(t *testing.T) {
	calc := newTestCalculator(0)

	got := calc.Compute(monday, 60, nil)

	require.Len(t, got, 9)
	assert.Equal(t, "09:00", got[0].Time.String())
	assert.Equal(t, "17:00", got[8].Time.String())
	assert.Empty(t, labels(got, false))
}

func TestCompute_SlotMustFitBeforeClose(t *testing.T) {
	calc := newTestCalculator(30)

	got := calc.Compute(monday, 90, nil)

	// последний слот 16:30-18:00, 17:00 уже не помещается
	assert.Equal(t, "16:30", got[len(got)-1].Time.String())
	assert.Len(t, got, 16)
}

func TestCompute_MarksOverlapsUnavailable(t *testing.T) {
	calc := newTestCalculator(30)
	bookings := []domain.ScheduledBooking{
		booking("10:00", 60, domain.StatePending),
		booking("14:00", 30, domain.StateConfirmed),
	}

	got := calc.Compute(monday, 60, bookings)

	assert.Equal(t, []string{"09:30", "10:00", "10:30", "13:30", "14:00"}, labels(got, false))
}

func TestCompute_IgnoresCancelled(t *testing.T) {
	calc := newTestCalculator(0)
	bookings := []domain.ScheduledBooking{booking("10:00", 60, domain.StateCancelled)}

	got := calc.Compute(monday, 60, bookings)

	assert.Empty(t, labels(got, false))
}

func TestCompute_AdjacentBookingsDoNotBlock(t *testing.T) {
	calc := newTestCalculator(0)
	bookings := []domain.ScheduledBooking{
		booking("09:00", 60, domain.StatePending),
		booking("11:00", 60, domain.StatePending),
	}

	got := calc.Compute(monday, 60, bookings)

	assert.Equal(t, []string{"09:00", "11:00"}, labels(got, false))
	assert.Contains(t, labels(got, true), "10:00")
}

func TestCompute_Deterministic(t *testing.T) {
	calc := newTestCalculator(15)
	bookings := []domain.ScheduledBooking{
		booking("09:45", 45, domain.StatePending),
		booking("12:10", 20, domain.StateConfirmed),
		booking("16:00", 120, domain.StateCompleted),
	}

	first := calc.Compute(monday, 50, bookings)
	second := calc.Compute(monday, 50, bookings)

	assert.Equal(t, first, second)
}

func TestCompute_NoDoubleAvailability(t *testing.T) {
	calc := newTestCalculator(5)
	bookings := []domain.ScheduledBooking{
		booking("09:20", 40, domain.StatePending),
		booking("11:00", 15, domain.StateConfirmed),
		booking("13:05", 55, domain.StateCompleted),
	}

	for _, duration := range []int{15, 30, 45, 60, 120} {
		for _, slot := range calc.Compute(monday, duration, bookings) {
			if !slot.Available {
				continue
			}
			start := slot.Time.On(monday, clinicLoc)
			end := start.Add(time.Duration(duration) * time.Minute)
			for _, b := range bookings {
				assert.False(t, b.Overlaps(start, end), "slot %s (%d min) overlaps booking at %s", slot.Time, duration, b.Start)
			}
		}
	}
}

func TestCompute_ClosedDay(t *testing.T) {
	calc := newTestCalculator(0)
	sunday := monday.AddDate(0, 0, -1)

	assert.Empty(t, calc.Compute(sunday, 60, nil))
	assert.False(t, calc.IsOpen(sunday))
}

func TestCompute_DurationLongerThanDay(t *testing.T) {
	calc := newTestCalculator(0)

	assert.Empty(t, calc.Compute(monday, 600, nil))
	assert.Empty(t, calc.Compute(monday, 0, nil))
}

func TestWithinHours(t *testing.T) {
	calc := newTestCalculator(30)

	assert.True(t, calc.WithinHours(at("09:00"), 60))
	assert.True(t, calc.WithinHours(at("17:00"), 60))
	assert.False(t, calc.WithinHours(at("17:30"), 60))
	assert.False(t, calc.WithinHours(at("08:30"), 60))
	assert.False(t, calc.WithinHours(at("10:00").AddDate(0, 0, -1), 60))

	// то же время, переданное в UTC, переводится в часовой пояс клиники
	assert.True(t, calc.WithinHours(at("10:00").UTC(), 60))
}

func TestDayBounds(t *testing.T) {
	calc := newTestCalculator(0)

	from, to := calc.DayBounds(monday)

	assert.Equal(t, time.Date(2025, 6, 2, 0, 0, 0, 0, clinicLoc), from)
	assert.Equal(t, time.Date(2025, 6, 3, 0, 0, 0, 0, clinicLoc), to)
}
