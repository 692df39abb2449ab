package get_dashboard_stats

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myphysiotime/PhysioTime-BookingService/internal/domain"
	"github.com/myphysiotime/PhysioTime-BookingService/internal/slots"
	"github.com/myphysiotime/PhysioTime-BookingService/internal/testutil/memstore"
	"github.com/myphysiotime/PhysioTime-BookingService/pkg/logger"
	"github.com/myphysiotime/PhysioTime-BookingService/pkg/types"
)

var clinicTZ = time.FixedZone("CST", -6*60*60)

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

func TestGetDashboardStats(t *testing.T) {
	store := memstore.New()
	ctx := context.Background()

	admin := store.SeedUser(domain.User{Role: domain.RoleAdmin, FirstName: "Luis", LastName: "Perez", Email: "luis@x.com"}, "hash")
	client := store.SeedUser(domain.User{Role: domain.RoleClient, FirstName: "Ana", LastName: "Lopez", Email: "a@x.com"}, "hash")
	store.SeedUser(domain.User{Role: domain.RoleClient, FirstName: "Beto", LastName: "Ruiz", Email: "b@x.com"}, "hash")
	svc := store.SeedService(domain.Service{Name: "Rehabilitación", Price: 500, DurationMinutes: 60, IsActive: true})

	seed := func(at time.Time, state domain.BookingState) {
		_, err := store.Bookings.Create(ctx, &domain.Booking{ServiceID: svc.ID, ClientID: client.ID, ScheduledAt: at, State: state}, 60)
		require.NoError(t, err)
	}

	today := func(h int) time.Time { return time.Date(2025, 6, 2, h, 0, 0, 0, clinicTZ) }
	seed(today(9), domain.StatePending)
	seed(today(10), domain.StateConfirmed)
	seed(today(11), domain.StateCancelled)
	seed(time.Date(2025, 6, 3, 9, 0, 0, 0, clinicTZ), domain.StatePending)
	seed(time.Date(2025, 5, 30, 9, 0, 0, 0, clinicTZ), domain.StateCompleted)

	calc := slots.NewCalculator(slots.Hours{
		Open:     types.MustParseTimeOfDay("09:00"),
		Close:    types.MustParseTimeOfDay("18:00"),
		Location: clinicTZ,
	})

	// 2025-06-03 03:00 UTC - еще 2 июня в часовом поясе клиники
	now := time.Date(2025, 6, 3, 3, 0, 0, 0, time.UTC)
	uc := NewUseCase(store.Bookings, calc, fixedTime{now}, logger.NewNop())

	resp, err := uc.Execute(ctx, &Request{Actor: domain.Actor{UserID: admin.ID, Email: admin.Email, Role: domain.RoleAdmin}})
	require.NoError(t, err)

	assert.True(t, resp.Day.Equal(time.Date(2025, 6, 2, 0, 0, 0, 0, clinicTZ)))
	assert.Equal(t, domain.DashboardStats{
		TodayBookings:     2,
		PendingBookings:   2,
		CompletedBookings: 1,
		TotalClients:      2,
	}, resp.Stats)
}

func TestGetDashboardStats_ClientForbidden(t *testing.T) {
	store := memstore.New()
	calc := slots.NewCalculator(slots.Hours{Location: clinicTZ})
	uc := NewUseCase(store.Bookings, calc, nil, logger.NewNop())

	_, err := uc.Execute(context.Background(), &Request{Actor: domain.Actor{UserID: 7, Email: "a@x.com", Role: domain.RoleClient}})
	assert.Equal(t, domain.ErrForbidden, domain.KindOf(err))

	_, err = uc.Execute(context.Background(), &Request{})
	assert.Equal(t, domain.ErrUnauthenticated, domain.KindOf(err))
}
