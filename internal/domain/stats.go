package domain

// DashboardStats aggregate counters for the admin dashboard
type DashboardStats struct {
	TodayBookings     int
	PendingBookings   int
	CompletedBookings int
	TotalClients      int
}
