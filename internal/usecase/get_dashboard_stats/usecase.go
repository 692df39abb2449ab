package get_dashboard_stats

import (
	"context"
	"fmt"

	"github.com/myphysiotime/PhysioTime-BookingService/internal/policy"
)

// UseCase use case для статистики панели администратора
type UseCase struct {
	statsRepo    StatsRepository
	days         DayBounder
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(statsRepo StatsRepository, days DayBounder, timeProvider TimeProvider, logger Logger) *UseCase {
	if timeProvider == nil {
		timeProvider = &RealTimeProvider{}
	}
	return &UseCase{
		statsRepo:    statsRepo,
		days:         days,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute считает статистику. "Сегодня" определяется в часовом поясе клиники.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := policy.Authorize(req.Actor, policy.OpDashboardStats, nil); err != nil {
		uc.logger.Warn("GetDashboardStats: %v", err)
		return nil, err
	}

	today := uc.timeProvider.Now().In(uc.days.Location())
	dayStart, dayEnd := uc.days.DayBounds(today)

	stats, err := uc.statsRepo.GetDashboardStats(ctx, dayStart, dayEnd)
	if err != nil {
		uc.logger.Error("GetDashboardStats: failed to get stats: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return &Response{Day: dayStart, Stats: *stats}, nil
}
