package get_dashboard_stats

import (
	"context"
	"time"

	"github.com/myphysiotime/PhysioTime-BookingService/internal/domain"
)

// StatsRepository агрегаты по бронированиям и клиентам
type StatsRepository interface {
	GetDashboardStats(ctx context.Context, dayStart, dayEnd time.Time) (*domain.DashboardStats, error)
}

// DayBounder границы дня в часовом поясе клиники
type DayBounder interface {
	DayBounds(date time.Time) (time.Time, time.Time)
	Location() *time.Location
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
