package get_dashboard_stats

import (
	"context"

	getDashboardStats "github.com/myphysiotime/PhysioTime-BookingService/internal/usecase/get_dashboard_stats"
)

type GetDashboardStatsUseCase interface {
	Execute(ctx context.Context, req *getDashboardStats.Request) (*getDashboardStats.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
