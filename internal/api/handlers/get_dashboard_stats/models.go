package get_dashboard_stats

import (
	"github.com/myphysiotime/PhysioTime-BookingService/internal/domain"
	getDashboardStats "github.com/myphysiotime/PhysioTime-BookingService/internal/usecase/get_dashboard_stats"
)

// DashboardStatsResponse HTTP response model
type DashboardStatsResponse struct {
	Date              string `json:"date"`
	TodayBookings     int    `json:"todayBookings"`
	PendingBookings   int    `json:"pendingBookings"`
	CompletedBookings int    `json:"completedBookings"`
	TotalClients      int    `json:"totalClients"`
}

func FromUseCaseResponse(resp *getDashboardStats.Response) *DashboardStatsResponse {
	return &DashboardStatsResponse{
		Date:              resp.Day.Format(domain.DateFormat),
		TodayBookings:     resp.Stats.TodayBookings,
		PendingBookings:   resp.Stats.PendingBookings,
		CompletedBookings: resp.Stats.CompletedBookings,
		TotalClients:      resp.Stats.TotalClients,
	}
}
