package get_available_slots

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myphysiotime/PhysioTime-BookingService/internal/api/middleware"
	"github.com/myphysiotime/PhysioTime-BookingService/internal/domain"
	getAvailableSlots "github.com/myphysiotime/PhysioTime-BookingService/internal/usecase/get_available_slots"
	"github.com/myphysiotime/PhysioTime-BookingService/pkg/logger"
	"github.com/myphysiotime/PhysioTime-BookingService/pkg/types"
)

type stubUseCase struct {
	got *getAvailableSlots.Request
	err error
}

func (s *stubUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	return &getAvailableSlots.Response{
		Date:            req.Date,
		DurationMinutes: 60,
		Slots: []domain.TimeSlot{
			{Time: types.MustParseTimeOfDay("09:00"), Available: true},
			{Time: types.MustParseTimeOfDay("09:30"), Available: false},
		},
	}, nil
}

var client = domain.Actor{UserID: 3, Role: domain.RoleClient}

func get(h *Handler, url string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, url, nil)
	req = req.WithContext(middleware.WithActor(req.Context(), client))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_ReturnsSlots(t *testing.T) {
	uc := &stubUseCase{}
	h := NewHandler(uc, logger.NewNop())

	rec := get(h, "/api/v1/bookings/slots?date=2025-06-02&duration=45")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 45, uc.got.DurationMinutes)
	assert.Equal(t, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), uc.got.Date)
	assert.JSONEq(t, `{
		"date": "2025-06-02",
		"durationMinutes": 60,
		"slots": [{"time": "09:00", "available": true}, {"time": "09:30", "available": false}]
	}`, rec.Body.String())
}

func TestHandle_DefaultDuration(t *testing.T) {
	uc := &stubUseCase{}
	h := NewHandler(uc, logger.NewNop())

	rec := get(h, "/api/v1/bookings/slots?date=2025-06-02")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, uc.got.DurationMinutes)
}

func TestHandle_BadQuery(t *testing.T) {
	tests := []struct {
		name string
		url  string
		err  error
	}{
		{name: "missing date", url: "/api/v1/bookings/slots"},
		{name: "bad date", url: "/api/v1/bookings/slots?date=02-06-2025"},
		{name: "bad duration", url: "/api/v1/bookings/slots?date=2025-06-02&duration=hour"},
		{name: "duration out of range", url: "/api/v1/bookings/slots?date=2025-06-02&duration=600", err: getAvailableSlots.ErrInvalidDuration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&stubUseCase{err: tt.err}, logger.NewNop())
			rec := get(h, tt.url)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
