// Package types вспомогательные value-типы
package types

import (
	"errors"
	"fmt"
	"time"
)

const (
	timeOfDayLayout = "15:04"
	minutesPerDay   = 24 * 60
)

var (
	// ErrInvalidTimeOfDay возвращается при некорректном формате времени
	ErrInvalidTimeOfDay = errors.New("types: invalid time of day, expected HH:MM")

	// ErrTimeOfDayOverflow возвращается, когда результат выходит за пределы суток
	ErrTimeOfDayOverflow = errors.New("types: time of day overflows the day")
)

// TimeOfDay время суток с точностью до минуты (количество минут от полуночи)
type TimeOfDay struct {
	minutes int
}

// NewTimeOfDay создает время суток из часов и минут
func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	t := TimeOfDay{minutes: hour*60 + minute}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: %02d:%02d", ErrInvalidTimeOfDay, hour, minute)
	}
	return t, nil
}

// TimeOfDayOf возвращает время суток момента t (в его локации)
func TimeOfDayOf(t time.Time) TimeOfDay {
	return TimeOfDay{minutes: t.Hour()*60 + t.Minute()}
}

// ParseTimeOfDay парсит строку формата HH:MM
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parsed, err := time.Parse(timeOfDayLayout, s)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}
	return TimeOfDayOf(parsed), nil
}

// MustParseTimeOfDay как ParseTimeOfDay, но паникует при ошибке. Для тестов и констант.
func MustParseTimeOfDay(s string) TimeOfDay {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

// Minutes количество минут от полуночи
func (t TimeOfDay) Minutes() int {
	return t.minutes
}

// String форматирует время как HH:MM
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.minutes/60, t.minutes%60)
}

// AddMinutes сдвигает время на n минут
// Разрешен ровно конец суток (24:00 не форматируется, но сравнивается корректно)
func (t TimeOfDay) AddMinutes(n int) (TimeOfDay, error) {
	res := t.minutes + n
	if res < 0 || res > minutesPerDay {
		return TimeOfDay{}, fmt.Errorf("%w: %s%+d min", ErrTimeOfDayOverflow, t, n)
	}
	return TimeOfDay{minutes: res}, nil
}

func (t TimeOfDay) IsBefore(other TimeOfDay) bool {
	return t.minutes < other.minutes
}

func (t TimeOfDay) IsAfter(other TimeOfDay) bool {
	return t.minutes > other.minutes
}

// On возвращает момент времени на указанную дату в локации loc
func (t TimeOfDay) On(date time.Time, loc *time.Location) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, t.minutes/60, t.minutes%60, 0, 0, loc)
}

// UnmarshalText позволяет использовать TimeOfDay в config.toml
func (t *TimeOfDay) UnmarshalText(text []byte) error {
	parsed, err := ParseTimeOfDay(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MarshalText форматирует время как HH:MM
func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}
