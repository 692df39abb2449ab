package get_dashboard_stats

import (
	"time"

	"github.com/myphysiotime/PhysioTime-BookingService/internal/domain"
)

// Request модель запроса статистики
type Request struct {
	Actor domain.Actor
}

// Response статистика и день, за который считались "сегодняшние" записи
type Response struct {
	Day   time.Time
	Stats domain.DashboardStats
}
