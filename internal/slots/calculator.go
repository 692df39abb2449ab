// Package slots вычисление свободных слотов для записи
package slots

import (
	"time"

	"github.com/myphysiotime/PhysioTime-BookingService/internal/domain"
	"github.com/myphysiotime/PhysioTime-BookingService/pkg/types"
)

// Hours режим работы клиники
type Hours struct {
	Open        types.TimeOfDay
	Close       types.TimeOfDay
	StepMinutes int // 0 - шаг равен запрошенной длительности
	ClosedDays  []time.Weekday
	Location    *time.Location
}

// Calculator чистый калькулятор слотов. Не хранит состояние между вызовами.
type Calculator struct {
	hours Hours
}

// NewCalculator создает калькулятор. Location по умолчанию UTC.
func NewCalculator(hours Hours) *Calculator {
	if hours.Location == nil {
		hours.Location = time.UTC
	}
	return &Calculator{hours: hours}
}

// Location часовой пояс клиники
func (c *Calculator) Location() *time.Location {
	return c.hours.Location
}

// IsOpen работает ли клиника в указанную дату
func (c *Calculator) IsOpen(date time.Time) bool {
	wd := c.dayStart(date).Weekday()
	for _, closed := range c.hours.ClosedDays {
		if wd == closed {
			return false
		}
	}
	return true
}

// Compute генерирует слоты на дату с начала работы клиники с фиксированным шагом
// Слот недоступен, если [start, start+duration) пересекается с любым неотмененным бронированием.
// Слот, который заканчивается позже закрытия, не генерируется.
// Результат упорядочен по времени и зависит только от аргументов.
func (c *Calculator) Compute(date time.Time, durationMinutes int, bookings []domain.ScheduledBooking) []domain.TimeSlot {
	result := make([]domain.TimeSlot, 0)
	if durationMinutes <= 0 || !c.IsOpen(date) {
		return result
	}

	step := c.hours.StepMinutes
	if step <= 0 {
		step = durationMinutes
	}

	for current := c.hours.Open; current.IsBefore(c.hours.Close); {
		slotEnd, err := current.AddMinutes(durationMinutes)
		if err != nil || slotEnd.IsAfter(c.hours.Close) {
			break
		}

		start := current.On(date, c.hours.Location)
		result = append(result, domain.TimeSlot{
			Time:      current,
			Available: IsFree(start, durationMinutes, bookings),
		})

		current, err = current.AddMinutes(step)
		if err != nil {
			break
		}
	}

	return result
}

// WithinHours проверяет, что [start, start+duration) целиком попадает в рабочее время
// Дата и время start берутся в часовом поясе клиники
func (c *Calculator) WithinHours(start time.Time, durationMinutes int) bool {
	local := start.In(c.hours.Location)
	if durationMinutes <= 0 || !c.IsOpen(local) {
		return false
	}

	open := c.hours.Open.On(local, c.hours.Location)
	closeAt := c.hours.Close.On(local, c.hours.Location)
	end := local.Add(time.Duration(durationMinutes) * time.Minute)

	return !local.Before(open) && !end.After(closeAt)
}

// DayBounds начало дня date и начало следующего дня в часовом поясе клиники
func (c *Calculator) DayBounds(date time.Time) (time.Time, time.Time) {
	start := c.dayStart(date)
	return start, start.AddDate(0, 0, 1)
}

func (c *Calculator) dayStart(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, c.hours.Location)
}

// IsFree проверяет, что интервал [start, start+duration) не пересекается ни с одним
// неотмененным бронированием. Границы не считаются пересечением.
func IsFree(start time.Time, durationMinutes int, bookings []domain.ScheduledBooking) bool {
	end := start.Add(time.Duration(durationMinutes) * time.Minute)
	for _, b := range bookings {
		if b.State == domain.StateCancelled {
			continue
		}
		if b.Overlaps(start, end) {
			return false
		}
	}
	return true
}
