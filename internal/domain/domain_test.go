package domain

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	errSlotTaken := NewError(ErrConflict, "slot taken")

	wrapped := fmt.Errorf("%w: booking at 10:00", errSlotTaken)

	assert.Equal(t, ErrConflict, KindOf(wrapped))
	assert.Equal(t, "slot taken: booking at 10:00", wrapped.Error())
	assert.Equal(t, ErrInternal, KindOf(errors.New("connection reset")))
	assert.Nil(t, KindOf(nil))
}

func TestParseBookingState(t *testing.T) {
	got, err := ParseBookingState("cancelled")
	require.NoError(t, err)
	assert.Equal(t, StateCancelled, got)

	_, err = ParseBookingState("in_progress")
	assert.ErrorIs(t, err, ErrInvalidBookingState)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestScheduledBooking_Overlaps(t *testing.T) {
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	at := func(h, m int) time.Time { return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute) }

	b := ScheduledBooking{Start: at(10, 0), DurationMinutes: 60, State: StatePending}

	assert.True(t, b.Overlaps(at(10, 30), at(11, 30)))
	assert.True(t, b.Overlaps(at(9, 30), at(10, 30)))
	assert.True(t, b.Overlaps(at(9, 0), at(12, 0)))
	// границы интервалов не пересекаются
	assert.False(t, b.Overlaps(at(11, 0), at(12, 0)))
	assert.False(t, b.Overlaps(at(9, 0), at(10, 0)))
}

func TestPaymentStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, PaymentPending.CanTransitionTo(PaymentSucceeded))
	assert.True(t, PaymentPending.CanTransitionTo(PaymentFailed))
	assert.True(t, PaymentSucceeded.CanTransitionTo(PaymentRefunded))
	assert.False(t, PaymentPending.CanTransitionTo(PaymentRefunded))
	assert.False(t, PaymentFailed.CanTransitionTo(PaymentSucceeded))
	assert.False(t, PaymentRefunded.CanTransitionTo(PaymentPending))

	_, err := ParsePaymentStatus("paid")
	assert.ErrorIs(t, err, ErrInvalidPaymentStatus)
}

func TestActor_IsZero(t *testing.T) {
	assert.True(t, Actor{}.IsZero())
	assert.True(t, Actor{UserID: 1, Role: "ROOT"}.IsZero())
	assert.False(t, Actor{UserID: 1, Role: RoleClient}.IsZero())
}
