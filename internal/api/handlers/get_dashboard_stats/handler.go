package get_dashboard_stats

import (
	"errors"
	"net/http"

	"github.com/myphysiotime/PhysioTime-BookingService/internal/api/handlers"
	"github.com/myphysiotime/PhysioTime-BookingService/internal/api/middleware"
	"github.com/myphysiotime/PhysioTime-BookingService/internal/domain"
	getDashboardStats "github.com/myphysiotime/PhysioTime-BookingService/internal/usecase/get_dashboard_stats"
)

const (
	msgMissingUser = "требуется авторизация"
	msgForbidden   = "статистика доступна только администратору"
)

type Handler struct {
	useCase GetDashboardStatsUseCase
	logger  Logger
}

func NewHandler(useCase GetDashboardStatsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/dashboard/stats
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("GET /bookings/dashboard/stats - Missing actor")
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getDashboardStats.Request{Actor: actor})
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			h.logger.Warn("GET /bookings/dashboard/stats - Access denied: user_id=%d", actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)
			return
		}
		h.logger.Error("GET /bookings/dashboard/stats - Failed to get stats: %v", err)
		handlers.RespondDomainError(w, err)
		return
	}

	h.logger.Info("GET /bookings/dashboard/stats - Stats retrieved: today=%d, pending=%d",
		result.Stats.TodayBookings, result.Stats.PendingBookings)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
