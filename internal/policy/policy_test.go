package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/myphysiotime/PhysioTime-BookingService/internal/domain"
)

var (
	admin  = domain.Actor{UserID: 1, Email: "admin@clinic.mx", Role: domain.RoleAdmin}
	client = domain.Actor{UserID: 7, Email: "a@x.com", Role: domain.RoleClient}
)

func TestAuthorize_Unauthenticated(t *testing.T) {
	err := Authorize(domain.Actor{}, OpGetAvailableSlots, nil)
	assert.ErrorIs(t, err, ErrUnauthenticated)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestAuthorize_AdminOnlyDeniedForClient(t *testing.T) {
	adminOnly := []Operation{
		OpListClients, OpGetClient, OpListAllBookings, OpListBookingsByState, OpDashboardStats,
		OpDeleteBooking, OpAssignPhysio, OpManageServices, OpListAllServices, OpUpdatePaymentStatus,
	}

	for _, op := range adminOnly {
		t.Run(string(op), func(t *testing.T) {
			assert.NoError(t, Authorize(admin, op, nil))

			// владение ресурсом не дает клиенту доступ к административным операциям
			err := Authorize(client, op, Owner(client.UserID))
			assert.ErrorIs(t, err, ErrAccessDenied)
			assert.ErrorIs(t, err, domain.ErrForbidden)
		})
	}
}

func TestAuthorize_OwnerOrAdmin(t *testing.T) {
	ops := []Operation{OpReadBooking, OpCreateBooking, OpUpdateBooking, OpCreatePayment, OpReadPayment, OpUpdateProfile}

	for _, op := range ops {
		t.Run(string(op), func(t *testing.T) {
			assert.NoError(t, Authorize(client, op, Owner(client.UserID)))
			assert.NoError(t, Authorize(admin, op, Owner(client.UserID)))
			assert.ErrorIs(t, Authorize(client, op, Owner(99)), ErrAccessDenied)
			assert.ErrorIs(t, Authorize(client, op, nil), ErrAccessDenied)
		})
	}
}

func TestAuthorize_AnyAuthenticated(t *testing.T) {
	for _, op := range []Operation{OpGetAvailableSlots, OpListMyBookings, OpListMyPayments, OpReadProfile} {
		assert.NoError(t, Authorize(client, op, nil))
		assert.NoError(t, Authorize(admin, op, nil))
	}
}

func TestAuthorize_UnknownOperation(t *testing.T) {
	assert.ErrorIs(t, Authorize(admin, Operation("bookings.teleport"), nil), ErrAccessDenied)
}
