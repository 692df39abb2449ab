package get_dashboard_stats

import "github.com/myphysiotime/PhysioTime-BookingService/internal/domain"

// ErrInternal возвращается при внутренних ошибках usecase
var ErrInternal = domain.NewError(domain.ErrInternal, "get_dashboard_stats: internal error")
