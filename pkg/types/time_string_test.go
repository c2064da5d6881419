package types

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeToMinutes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "midnight", input: "00:00", want: 0},
		{name: "morning", input: "09:00", want: 540},
		{name: "last minute", input: "23:59", want: 1439},
		{name: "single digit hour", input: "9:05", want: 545},
		{name: "hours beyond a day", input: "25:00", want: 1500},
		{name: "empty", input: "", want: 0},
		{name: "no separator", input: "0900", want: 0},
		{name: "letters", input: "ab:cd", want: 0},
		{name: "partial letters", input: "10:xx", want: 0},
		{name: "negative", input: "-1:00", want: 0},
		{name: "minutes out of range", input: "10:75", want: 0},
		{name: "seconds", input: "10:00:00", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TimeToMinutes(tt.input))
		})
	}
}

func TestMinutesToTime(t *testing.T) {
	assert.Equal(t, TimeString("00:00"), MinutesToTime(0))
	assert.Equal(t, TimeString("17:00"), MinutesToTime(1020))
	assert.Equal(t, TimeString("01:00"), MinutesToTime(1500))
	assert.Equal(t, TimeString("00:00"), MinutesToTime(MinutesPerDay))
	assert.Equal(t, TimeString("23:00"), MinutesToTime(-60))
}

func TestTimeRoundTrip(t *testing.T) {
	for h := 0; h < 24; h++ {
		for m := 0; m < 60; m++ {
			s := fmt.Sprintf("%02d:%02d", h, m)
			require.Equal(t, TimeString(s), MinutesToTime(TimeToMinutes(s)), s)
		}
	}
}

func TestEffectiveCloseMinutes(t *testing.T) {
	assert.Equal(t, 1020, EffectiveCloseMinutes(540, 1020))
	// 22:00 -> 02:00 работает через полночь
	assert.Equal(t, 1560, EffectiveCloseMinutes(1320, 120))
	assert.Equal(t, 240, EffectiveCloseMinutes(1320, 120)-1320)
	// одинаковое время открытия и закрытия = сутки
	assert.Equal(t, 540+MinutesPerDay, EffectiveCloseMinutes(540, 540))
}

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("9:30")
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:30"), ts)
	assert.Equal(t, 570, ts.Minutes())

	for _, bad := range []string{"", "24:00", "12:60", "noon", "12"} {
		_, err := NewTimeStringFromString(bad)
		assert.ErrorIs(t, err, ErrInvalidTimeString, bad)
	}
}
