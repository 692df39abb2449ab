package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/myphysiotime/PhysioTime-BookingService/internal/domain"
	bcryptHasher "github.com/myphysiotime/PhysioTime-BookingService/internal/infra/security/bcrypt"
	"github.com/myphysiotime/PhysioTime-BookingService/internal/infra/security/tokens"
	"github.com/myphysiotime/PhysioTime-BookingService/internal/slots"
	"github.com/myphysiotime/PhysioTime-BookingService/internal/testutil/memstore"
	"github.com/myphysiotime/PhysioTime-BookingService/internal/usecase/create_booking"
	"github.com/myphysiotime/PhysioTime-BookingService/internal/usecase/get_available_slots"
	"github.com/myphysiotime/PhysioTime-BookingService/internal/usecase/get_dashboard_stats"
	"github.com/myphysiotime/PhysioTime-BookingService/internal/usecase/login"
	"github.com/myphysiotime/PhysioTime-BookingService/internal/usecase/register"
	"github.com/myphysiotime/PhysioTime-BookingService/internal/usecase/update_booking"
	"github.com/myphysiotime/PhysioTime-BookingService/pkg/logger"
	"github.com/myphysiotime/PhysioTime-BookingService/pkg/types"
)

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

func isAvailable(slotList []domain.TimeSlot, hhmm string) bool {
	for _, s := range slotList {
		if s.Time.String() == hhmm {
			return s.Available
		}
	}
	return false
}

func TestClientBookingLifecycle(t *testing.T) {
	ctx := context.Background()
	loc := time.FixedZone("CST", -6*60*60)
	now := fixedTime{time.Date(2025, 5, 1, 8, 0, 0, 0, loc)}
	log := logger.NewNop()

	store := memstore.New()
	service := store.SeedService(domain.Service{Name: "Fisioterapia deportiva", Price: 650, DurationMinutes: 60, IsActive: true})
	require.Equal(t, int64(1), service.ID)

	hasher := bcryptHasher.NewHasher(bcrypt.MinCost)
	tokenManager := tokens.NewManager("super-secret-signing-key", "physiotime", "physiotime-api", time.Hour)
	calc := slots.NewCalculator(slots.Hours{
		Open:        types.MustParseTimeOfDay("09:00"),
		Close:       types.MustParseTimeOfDay("18:00"),
		StepMinutes: 30,
		Location:    loc,
	})

	registerUC := register.NewUseCase(store.Users, hasher, log)
	loginUC := login.NewUseCase(store.Users, hasher, tokenManager, now, log)
	createUC := create_booking.NewUseCase(store.Bookings, store.Services, store.Users, calc, store.Tx, now, log)
	slotsUC := get_available_slots.NewUseCase(store.Bookings, calc, log)
	updateUC := update_booking.NewUseCase(store.Bookings, store.Users, calc, store.Tx, log)
	statsUC := get_dashboard_stats.NewUseCase(store.Bookings, calc, now, log)

	// регистрация и вход
	_, err := registerUC.Execute(ctx, &register.Request{FirstName: "Ana", LastName: "Lopez", Email: "a@x.com", Password: "password123"})
	require.NoError(t, err)

	session, err := loginUC.Execute(ctx, &login.Request{Email: "a@x.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleClient, session.Role)

	actor, err := tokenManager.Verify(session.Token)
	require.NoError(t, err)
	assert.Equal(t, session.UserID, actor.UserID)

	// запись на 10:00
	created, err := createUC.Execute(ctx, &create_booking.Request{
		Actor:       actor,
		ServiceID:   1,
		ScheduledAt: time.Date(2025, 6, 1, 10, 0, 0, 0, loc),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatePending, created.Booking.State)

	day := time.Date(2025, 6, 1, 0, 0, 0, 0, loc)
	slotsResp, err := slotsUC.Execute(ctx, &get_available_slots.Request{Actor: actor, Date: day})
	require.NoError(t, err)
	assert.False(t, isAvailable(slotsResp.Slots, "10:00"))
	assert.False(t, isAvailable(slotsResp.Slots, "09:30"))
	assert.True(t, isAvailable(slotsResp.Slots, "09:00"))
	assert.True(t, isAvailable(slotsResp.Slots, "11:00"))

	// клиенту недоступны административные операции
	_, err = statsUC.Execute(ctx, &get_dashboard_stats.Request{Actor: actor})
	assert.Equal(t, domain.ErrForbidden, domain.KindOf(err))

	// отмена освобождает слот
	cancelled := domain.StateCancelled
	updated, err := updateUC.Execute(ctx, &update_booking.Request{Actor: actor, BookingID: created.Booking.ID, State: &cancelled})
	require.NoError(t, err)
	assert.Equal(t, domain.StateCancelled, updated.Booking.State)

	slotsResp, err = slotsUC.Execute(ctx, &get_available_slots.Request{Actor: actor, Date: day})
	require.NoError(t, err)
	assert.True(t, isAvailable(slotsResp.Slots, "10:00"))
	assert.True(t, isAvailable(slotsResp.Slots, "09:30"))

	// повторная запись на освободившееся время
	_, err = createUC.Execute(ctx, &create_booking.Request{Actor: actor, ServiceID: 1, ScheduledAt: time.Date(2025, 6, 1, 10, 0, 0, 0, loc)})
	assert.NoError(t, err)
}
