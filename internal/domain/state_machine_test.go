package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allStates = []BookingState{StatePending, StateConfirmed, StateCompleted, StateCancelled}

func TestTransition_Allowed(t *testing.T) {
	tests := []struct {
		name string
		from BookingState
		to   BookingState
		role Role
	}{
		{name: "admin confirms", from: StatePending, to: StateConfirmed, role: RoleAdmin},
		{name: "admin completes", from: StateConfirmed, to: StateCompleted, role: RoleAdmin},
		{name: "admin cancels pending", from: StatePending, to: StateCancelled, role: RoleAdmin},
		{name: "admin cancels confirmed", from: StateConfirmed, to: StateCancelled, role: RoleAdmin},
		{name: "client cancels pending", from: StatePending, to: StateCancelled, role: RoleClient},
		{name: "client cancels confirmed", from: StateConfirmed, to: StateCancelled, role: RoleClient},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Transition(tt.from, tt.to, tt.role)
			require.NoError(t, err)
			assert.Equal(t, tt.to, got)
		})
	}
}

func TestTransition_SameStateIsNoop(t *testing.T) {
	for _, s := range allStates {
		got, err := Transition(s, s, RoleClient)
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
}

func TestTransition_Illegal(t *testing.T) {
	_, err := Transition(StatePending, StateCompleted, RoleAdmin)
	assert.ErrorIs(t, err, ErrIllegalTransition)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = Transition(StateConfirmed, StatePending, RoleAdmin)
	assert.ErrorIs(t, err, ErrIllegalTransition)
}

func TestTransition_ClientCannotConfirm(t *testing.T) {
	got, err := Transition(StatePending, StateConfirmed, RoleClient)
	assert.ErrorIs(t, err, ErrTransitionForbidden)
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Equal(t, StatePending, got)

	_, err = Transition(StateConfirmed, StateCompleted, RoleClient)
	assert.ErrorIs(t, err, ErrTransitionForbidden)
}

func TestTransition_TerminalStates(t *testing.T) {
	for _, from := range []BookingState{StateCompleted, StateCancelled} {
		assert.True(t, from.IsTerminal())
		for _, to := range allStates {
			if to == from {
				continue
			}
			for _, role := range []Role{RoleAdmin, RoleClient} {
				_, err := Transition(from, to, role)
				assert.ErrorIs(t, err, ErrIllegalTransition, "%s -> %s by %s", from, to, role)
			}
		}
	}
}

func TestNextStates(t *testing.T) {
	assert.Equal(t, []BookingState{StateConfirmed, StateCancelled}, NextStates(StatePending, RoleAdmin))
	assert.Equal(t, []BookingState{StateCancelled}, NextStates(StateConfirmed, RoleClient))
	assert.Empty(t, NextStates(StateCompleted, RoleAdmin))
}
