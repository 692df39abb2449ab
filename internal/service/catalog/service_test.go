package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myphysiotime/PhysioTime-BookingService/internal/domain"
	"github.com/myphysiotime/PhysioTime-BookingService/internal/service/catalog/models"
	"github.com/myphysiotime/PhysioTime-BookingService/internal/testutil/memstore"
	"github.com/myphysiotime/PhysioTime-BookingService/pkg/logger"
	"github.com/myphysiotime/PhysioTime-BookingService/pkg/ptr"
)

var (
	admin  = domain.Actor{UserID: 1, Email: "luis@x.com", Role: domain.RoleAdmin}
	client = domain.Actor{UserID: 2, Email: "a@x.com", Role: domain.RoleClient}
)

func TestCatalog_CreateAndList(t *testing.T) {
	store := memstore.New()
	svc := NewService(store.Services, logger.NewNop())
	ctx := context.Background()

	created, err := svc.Create(ctx, admin, &models.CreateServiceRequest{Name: "  Masaje  ", Price: 300, DurationMinutes: 30})
	require.NoError(t, err)
	assert.Equal(t, "Masaje", created.Name)
	assert.True(t, created.IsActive)

	_, err = svc.Create(ctx, admin, &models.CreateServiceRequest{Name: "Acupuntura", Price: 0, DurationMinutes: 45, IsActive: ptr.Ptr(false)})
	require.NoError(t, err)

	public, err := svc.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, public.Services, 1)
	assert.Equal(t, "Masaje", public.Services[0].Name)

	all, err := svc.ListAll(ctx, admin)
	require.NoError(t, err)
	assert.Len(t, all.Services, 2)

	_, err = svc.ListAll(ctx, client)
	assert.Equal(t, domain.ErrForbidden, domain.KindOf(err))
}

func TestCatalog_CreateValidation(t *testing.T) {
	svc := NewService(memstore.New().Services, logger.NewNop())

	tests := []struct {
		name string
		req  *models.CreateServiceRequest
	}{
		{name: "blank name", req: &models.CreateServiceRequest{Name: "  ", Price: 10, DurationMinutes: 30}},
		{name: "negative price", req: &models.CreateServiceRequest{Name: "X", Price: -1, DurationMinutes: 30}},
		{name: "zero duration", req: &models.CreateServiceRequest{Name: "X", Price: 10}},
		{name: "too long", req: &models.CreateServiceRequest{Name: "X", Price: 10, DurationMinutes: 481}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), admin, tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}

	_, err := svc.Create(context.Background(), client, &models.CreateServiceRequest{Name: "X", Price: 10, DurationMinutes: 30})
	assert.Equal(t, domain.ErrForbidden, domain.KindOf(err))
}

func TestCatalog_Update(t *testing.T) {
	store := memstore.New()
	existing := store.SeedService(domain.Service{Name: "Masaje", Price: 300, DurationMinutes: 30, IsActive: true})
	svc := NewService(store.Services, logger.NewNop())
	ctx := context.Background()

	updated, err := svc.Update(ctx, admin, existing.ID, &models.UpdateServiceRequest{Price: ptr.Ptr(350.0), IsActive: ptr.Ptr(false)})
	require.NoError(t, err)
	assert.Equal(t, 350.0, updated.Price)
	assert.False(t, updated.IsActive)
	assert.Equal(t, "Masaje", updated.Name)

	_, err = svc.Update(ctx, admin, existing.ID, &models.UpdateServiceRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Update(ctx, admin, existing.ID, &models.UpdateServiceRequest{DurationMinutes: ptr.Ptr(0)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Update(ctx, admin, 999, &models.UpdateServiceRequest{Price: ptr.Ptr(1.0)})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestCatalog_Delete(t *testing.T) {
	store := memstore.New()
	ctx := context.Background()

	unused := store.SeedService(domain.Service{Name: "Masaje", Price: 300, DurationMinutes: 30, IsActive: true})
	booked := store.SeedService(domain.Service{Name: "Rehabilitación", Price: 500, DurationMinutes: 60, IsActive: true})
	user := store.SeedUser(domain.User{Role: domain.RoleClient, FirstName: "Ana", LastName: "Lopez", Email: "a@x.com"}, "hash")

	_, err := store.Bookings.Create(ctx, &domain.Booking{
		ServiceID:   booked.ID,
		ClientID:    user.ID,
		ScheduledAt: time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC),
		State:       domain.StatePending,
	}, 60)
	require.NoError(t, err)

	svc := NewService(store.Services, logger.NewNop())

	assert.NoError(t, svc.Delete(ctx, admin, unused.ID))
	assert.ErrorIs(t, svc.Delete(ctx, admin, unused.ID), ErrServiceNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, admin, booked.ID), ErrServiceInUse)
	assert.Equal(t, domain.ErrForbidden, domain.KindOf(svc.Delete(ctx, client, booked.ID)))
}
