package create_booking

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myphysiotime/PhysioTime-BookingService/internal/api/middleware"
	"github.com/myphysiotime/PhysioTime-BookingService/internal/domain"
	"github.com/myphysiotime/PhysioTime-BookingService/internal/policy"
	createBooking "github.com/myphysiotime/PhysioTime-BookingService/internal/usecase/create_booking"
	"github.com/myphysiotime/PhysioTime-BookingService/pkg/logger"
)

var clinicTZ = time.FixedZone("clinic", -6*60*60)

type stubUseCase struct {
	got *createBooking.Request
	err error
}

func (s *stubUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	b := &domain.Booking{
		ID:          11,
		ServiceID:   req.ServiceID,
		ClientID:    req.Actor.UserID,
		ScheduledAt: req.ScheduledAt,
		State:       domain.StatePending,
	}
	return &createBooking.Response{
		Booking:         b,
		DurationMinutes: 60,
		EndsAt:          req.ScheduledAt.Add(time.Hour),
	}, nil
}

func doRequest(h *Handler, body string, actor *domain.Actor) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	if actor != nil {
		req = req.WithContext(middleware.WithActor(req.Context(), *actor))
	}
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_CreatesBookingInClinicTime(t *testing.T) {
	uc := &stubUseCase{}
	h := NewHandler(uc, clinicTZ, logger.NewNop())
	client := domain.Actor{UserID: 3, Role: domain.RoleClient}

	rec := doRequest(h, `{"serviceId": 2, "scheduledAt": "2025-06-02T10:00:00", "notes": "rodilla"}`, &client)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, uc.got)
	assert.Equal(t, time.Date(2025, 6, 2, 10, 0, 0, 0, clinicTZ).Unix(), uc.got.ScheduledAt.Unix())
	assert.Equal(t, client, uc.got.Actor)
	assert.Contains(t, rec.Body.String(), `"scheduledAt":"2025-06-02T10:00:00-06:00"`)
	assert.Contains(t, rec.Body.String(), `"endsAt":"2025-06-02T11:00:00-06:00"`)
	assert.Contains(t, rec.Body.String(), `"state":"PENDING"`)
}

func TestHandle_AcceptsRFC3339(t *testing.T) {
	uc := &stubUseCase{}
	h := NewHandler(uc, clinicTZ, logger.NewNop())
	client := domain.Actor{UserID: 3, Role: domain.RoleClient}

	rec := doRequest(h, `{"serviceId": 2, "scheduledAt": "2025-06-02T16:00:00Z"}`, &client)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, time.Date(2025, 6, 2, 10, 0, 0, 0, clinicTZ).Unix(), uc.got.ScheduledAt.Unix())
}

func TestHandle_Errors(t *testing.T) {
	client := domain.Actor{UserID: 3, Role: domain.RoleClient}
	validBody := `{"serviceId": 2, "scheduledAt": "2025-06-02T10:00:00"}`

	tests := []struct {
		name       string
		body       string
		actor      *domain.Actor
		ucErr      error
		wantStatus int
	}{
		{name: "no actor", body: validBody, wantStatus: http.StatusUnauthorized},
		{name: "broken json", body: `{"serviceId":`, actor: &client, wantStatus: http.StatusBadRequest},
		{name: "bad time", body: `{"serviceId": 2, "scheduledAt": "tomorrow"}`, actor: &client, wantStatus: http.StatusBadRequest},
		{name: "slot taken", body: validBody, actor: &client, ucErr: createBooking.ErrSlotNotAvailable, wantStatus: http.StatusConflict},
		{name: "service missing", body: validBody, actor: &client, ucErr: createBooking.ErrServiceNotFound, wantStatus: http.StatusNotFound},
		{name: "outside hours", body: validBody, actor: &client, ucErr: createBooking.ErrOutsideWorkingHours, wantStatus: http.StatusBadRequest},
		{name: "foreign client", body: validBody, actor: &client, ucErr: fmt.Errorf("%w: create booking", policy.ErrAccessDenied), wantStatus: http.StatusForbidden},
		{name: "internal", body: validBody, actor: &client, ucErr: createBooking.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&stubUseCase{err: tt.ucErr}, clinicTZ, logger.NewNop())
			rec := doRequest(h, tt.body, tt.actor)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
