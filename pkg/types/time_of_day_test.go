package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "morning", input: "09:00", want: 540},
		{name: "with minutes", input: "10:30", want: 630},
		{name: "midnight", input: "00:00", want: 0},
		{name: "no leading zero", input: "9:00", want: 540},
		{name: "garbage", input: "ten", wantErr: true},
		{name: "out of range", input: "25:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeOfDay)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Minutes())
		})
	}
}

func TestTimeOfDay_AddMinutes(t *testing.T) {
	start := MustParseTimeOfDay("17:30")

	end, err := start.AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, "18:00", end.String())
	assert.True(t, start.IsBefore(end))
	assert.True(t, end.IsAfter(start))

	_, err = start.AddMinutes(7 * 60)
	assert.ErrorIs(t, err, ErrTimeOfDayOverflow)
}

func TestTimeOfDay_On(t *testing.T) {
	loc := time.FixedZone("CST", -6*60*60)
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	got := MustParseTimeOfDay("10:15").On(date, loc)

	assert.Equal(t, time.Date(2025, 6, 1, 10, 15, 0, 0, loc), got)
}

func TestTimeOfDay_UnmarshalText(t *testing.T) {
	var tod TimeOfDay
	require.NoError(t, tod.UnmarshalText([]byte("08:45")))
	assert.Equal(t, "08:45", tod.String())

	assert.Error(t, tod.UnmarshalText([]byte("8h45")))
}

func TestNewTimeOfDay(t *testing.T) {
	got, err := NewTimeOfDay(18, 0)
	require.NoError(t, err)
	assert.Equal(t, "18:00", got.String())

	_, err = NewTimeOfDay(18, 60)
	assert.ErrorIs(t, err, ErrInvalidTimeOfDay)
}
