package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myphysiotime/PhysioTime-BookingService/internal/domain"
	"github.com/myphysiotime/PhysioTime-BookingService/internal/testutil/memstore"
	"github.com/myphysiotime/PhysioTime-BookingService/pkg/logger"
	"github.com/myphysiotime/PhysioTime-BookingService/pkg/ptr"
)

type fixture struct {
	store  *memstore.Store
	svc    *Service
	admin  domain.Actor
	client domain.Actor
	other  domain.Actor
	first  *domain.Booking
	second *domain.Booking
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	loc := time.FixedZone("CST", -6*60*60)

	store := memstore.New()
	admin := store.SeedUser(domain.User{Role: domain.RoleAdmin, FirstName: "Luis", LastName: "Perez", Email: "luis@x.com"}, "hash")
	client := store.SeedUser(domain.User{Role: domain.RoleClient, FirstName: "Ana", LastName: "Lopez", Email: "a@x.com"}, "hash")
	other := store.SeedUser(domain.User{Role: domain.RoleClient, FirstName: "Beto", LastName: "Ruiz", Email: "b@x.com"}, "hash")
	service := store.SeedService(domain.Service{Name: "Rehabilitación", Price: 500, DurationMinutes: 45, IsActive: true})

	first, err := store.Bookings.Create(ctx, &domain.Booking{
		ServiceID:         service.ID,
		ClientID:          client.ID,
		PhysiotherapistID: ptr.Ptr(admin.ID),
		ScheduledAt:       time.Date(2025, 6, 2, 10, 0, 0, 0, loc),
		State:             domain.StateConfirmed,
	}, 45)
	require.NoError(t, err)

	second, err := store.Bookings.Create(ctx, &domain.Booking{
		ServiceID:   service.ID,
		ClientID:    other.ID,
		ScheduledAt: time.Date(2025, 6, 3, 10, 0, 0, 0, loc),
		State:       domain.StatePending,
	}, 45)
	require.NoError(t, err)

	return &fixture{
		store:  store,
		svc:    NewService(store.Bookings, loc, logger.NewNop()),
		admin:  domain.Actor{UserID: admin.ID, Email: admin.Email, Role: domain.RoleAdmin},
		client: domain.Actor{UserID: client.ID, Email: client.Email, Role: domain.RoleClient},
		other:  domain.Actor{UserID: other.ID, Email: other.Email, Role: domain.RoleClient},
		first:  first,
		second: second,
	}
}

func TestGetAll(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	all, err := f.svc.GetAll(ctx, f.admin, nil)
	require.NoError(t, err)
	require.Len(t, all.Bookings, 2)
	// сначала более поздние
	assert.Equal(t, f.second.ID, all.Bookings[0].ID)

	pending, err := f.svc.GetAll(ctx, f.admin, ptr.Ptr("pending"))
	require.NoError(t, err)
	require.Len(t, pending.Bookings, 1)
	assert.Equal(t, "PENDING", pending.Bookings[0].State)

	_, err = f.svc.GetAll(ctx, f.admin, ptr.Ptr("unknown"))
	assert.Equal(t, domain.ErrValidation, domain.KindOf(err))

	_, err = f.svc.GetAll(ctx, f.client, nil)
	assert.Equal(t, domain.ErrForbidden, domain.KindOf(err))
}

func TestGetByState(t *testing.T) {
	f := newFixture(t)

	resp, err := f.svc.GetByState(context.Background(), f.admin, "CONFIRMED")
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, f.first.ID, resp.Bookings[0].ID)

	_, err = f.svc.GetByState(context.Background(), f.other, "CONFIRMED")
	assert.Equal(t, domain.ErrForbidden, domain.KindOf(err))
}

func TestGetMy(t *testing.T) {
	f := newFixture(t)

	resp, err := f.svc.GetMy(context.Background(), f.client)
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)

	b := resp.Bookings[0]
	assert.Equal(t, f.first.ID, b.ID)
	assert.Equal(t, "2025-06-02T10:00:00-06:00", b.ScheduledAt)
	assert.Equal(t, "2025-06-02T10:45:00-06:00", b.EndsAt)
	assert.Equal(t, "Rehabilitación", b.Service.Name)
	assert.Equal(t, "Ana", b.Client.FirstName)
	require.NotNil(t, b.Physiotherapist)
	assert.Equal(t, "Luis", b.Physiotherapist.FirstName)

	_, err = f.svc.GetMy(context.Background(), domain.Actor{})
	assert.Equal(t, domain.ErrUnauthenticated, domain.KindOf(err))
}

func TestGetByID(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	resp, err := f.svc.GetByID(ctx, f.client, f.first.ID)
	require.NoError(t, err)
	assert.Equal(t, f.first.ID, resp.ID)

	_, err = f.svc.GetByID(ctx, f.admin, f.second.ID)
	assert.NoError(t, err)

	_, err = f.svc.GetByID(ctx, f.other, f.first.ID)
	assert.Equal(t, domain.ErrForbidden, domain.KindOf(err))

	_, err = f.svc.GetByID(ctx, f.client, 999)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	err := f.svc.Delete(ctx, f.client, f.first.ID)
	assert.Equal(t, domain.ErrForbidden, domain.KindOf(err))

	require.NoError(t, f.svc.Delete(ctx, f.admin, f.first.ID))

	err = f.svc.Delete(ctx, f.admin, f.first.ID)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
