package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-TankScheduler/pkg/types"
)

func baseParams() SlotParams {
	return SlotParams{
		OpenTime:               "09:00",
		CloseTime:              "17:00",
		SessionDurationMinutes: 60,
		CleaningBufferMinutes:  15,
		ResourceCount:          1,
		StaggerIntervalMinutes: 0,
	}
}

func TestCalculateSlots(t *testing.T) {
	tests := []struct {
		name            string
		modify          func(p *SlotParams)
		wantSessions    int
		wantPerResource []int
		wantActualClose types.TimeString
	}{
		{
			name:            "single tank full day",
			modify:          func(p *SlotParams) {},
			wantSessions:    6, // floor(480/75)
			wantPerResource: []int{6},
			wantActualClose: "16:30",
		},
		{
			name: "three tanks with stagger takes the best tank",
			modify: func(p *SlotParams) {
				p.ResourceCount = 3
				p.StaggerIntervalMinutes = 20
			},
			wantSessions:    6,
			wantPerResource: []int{6, 6, 5}, // окна 480, 460, 440
			wantActualClose: "16:50",        // 09:20 + 6*75
		},
		{
			name: "overnight window",
			modify: func(p *SlotParams) {
				p.OpenTime = "22:00"
				p.CloseTime = "02:00"
			},
			wantSessions:    3, // окно 240 минут
			wantPerResource: []int{3},
			wantActualClose: "01:45",
		},
		{
			name: "stagger pushes last tank past closing",
			modify: func(p *SlotParams) {
				p.OpenTime = "09:00"
				p.CloseTime = "10:30"
				p.ResourceCount = 3
				p.StaggerIntervalMinutes = 60
			},
			wantSessions:    1,
			wantPerResource: []int{1, 0, 0},
			wantActualClose: "10:15",
		},
		{
			name: "negative stagger treated as zero",
			modify: func(p *SlotParams) {
				p.ResourceCount = 2
				p.StaggerIntervalMinutes = -30
			},
			wantSessions:    6,
			wantPerResource: []int{6, 6},
			wantActualClose: "16:30",
		},
		{
			name: "zero cleaning buffer",
			modify: func(p *SlotParams) {
				p.CleaningBufferMinutes = 0
			},
			wantSessions:    8,
			wantPerResource: []int{8},
			wantActualClose: "17:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := baseParams()
			tt.modify(&p)

			got := CalculateSlots(p)
			assert.Equal(t, tt.wantSessions, got.SessionsPerResource)
			assert.Equal(t, tt.wantPerResource, got.PerResource)
			assert.Equal(t, tt.wantActualClose, got.ActualCloseTime)
		})
	}
}

func TestCalculateSlotsDegenerate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(p *SlotParams)
	}{
		{name: "zero session duration", modify: func(p *SlotParams) { p.SessionDurationMinutes = 0 }},
		{name: "zero session and zero buffer", modify: func(p *SlotParams) {
			p.SessionDurationMinutes = 0
			p.CleaningBufferMinutes = 0
		}},
		{name: "negative session duration", modify: func(p *SlotParams) { p.SessionDurationMinutes = -60 }},
		{name: "negative buffer", modify: func(p *SlotParams) { p.CleaningBufferMinutes = -15 }},
		{name: "no tanks", modify: func(p *SlotParams) { p.ResourceCount = 0 }},
		{name: "negative tanks", modify: func(p *SlotParams) { p.ResourceCount = -2 }},
		{name: "missing open time", modify: func(p *SlotParams) { p.OpenTime = "" }},
		{name: "missing close time", modify: func(p *SlotParams) { p.CloseTime = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := baseParams()
			tt.modify(&p)

			assert.NotPanics(t, func() {
				got := CalculateSlots(p)
				assert.Zero(t, got.SessionsPerResource)
				assert.Equal(t, p.CloseTime, got.ActualCloseTime)
				assert.Zero(t, got.Capacity(PolicyUniformMax))
				assert.Zero(t, got.Capacity(PolicyPerTank))
			})
		})
	}
}

func TestCalculateSlotsMalformedTimesDoNotPanic(t *testing.T) {
	p := baseParams()
	p.OpenTime = "nine"
	p.CloseTime = "17:00"

	// "nine" -> 00:00, окно 1020 минут
	got := CalculateSlots(p)
	assert.Equal(t, 13, got.SessionsPerResource)
}

func TestSessionsPerResourceNonIncreasingWithStagger(t *testing.T) {
	p := baseParams()
	p.ResourceCount = 4

	previous := -1
	for stagger := 0; stagger <= 600; stagger += 5 {
		p.StaggerIntervalMinutes = stagger
		got := CalculateSlots(p).SessionsPerResource
		if previous >= 0 {
			assert.LessOrEqual(t, got, previous, "stagger=%d", stagger)
		}
		previous = got
	}
}

func TestSlotResultCapacity(t *testing.T) {
	p := baseParams()
	p.ResourceCount = 3
	p.StaggerIntervalMinutes = 20

	got := CalculateSlots(p)
	assert.Equal(t, 18, got.Capacity(PolicyUniformMax))
	assert.Equal(t, 17, got.Capacity(PolicyPerTank))

	assert.Equal(t, 6, got.SessionsFor(2, PolicyUniformMax))
	assert.Equal(t, 5, got.SessionsFor(2, PolicyPerTank))
	assert.Zero(t, got.SessionsFor(3, PolicyUniformMax))
}

func TestParseCapacityPolicy(t *testing.T) {
	p, ok := ParseCapacityPolicy("per_tank")
	assert.True(t, ok)
	assert.Equal(t, PolicyPerTank, p)

	p, ok = ParseCapacityPolicy("best_effort")
	assert.False(t, ok)
	assert.Equal(t, PolicyUniformMax, p)

	assert.Equal(t, PolicyUniformMax, NewEngine("bogus").Policy())
}
