// Package scheduling computes tank session capacity, per-day availability and
// day timetables. Everything here is pure: no I/O, no shared state, safe for
// concurrent use.
package scheduling

import "github.com/m04kA/SMC-TankScheduler/pkg/types"

// CapacityPolicy decides how per-tank session counts turn into day capacity
// and timetable length.
type CapacityPolicy string

const (
	// PolicyUniformMax applies the best-positioned tank's session count to every
	// tank. With a large stagger the last tanks may get sessions that run past
	// closing time, and capacity may be overstated.
	PolicyUniformMax CapacityPolicy = "uniform_max"

	// PolicyPerTank gives every tank only the sessions that fit its own window.
	PolicyPerTank CapacityPolicy = "per_tank"
)

// ParseCapacityPolicy returns false for unknown values
func ParseCapacityPolicy(s string) (CapacityPolicy, bool) {
	switch CapacityPolicy(s) {
	case PolicyUniformMax, PolicyPerTank:
		return CapacityPolicy(s), true
	default:
		return PolicyUniformMax, false
	}
}

// SlotParams one day's operating window and tank parameters
type SlotParams struct {
	OpenTime               types.TimeString
	CloseTime              types.TimeString
	SessionDurationMinutes int
	CleaningBufferMinutes  int
	ResourceCount          int
	StaggerIntervalMinutes int
}

// SlotResult output of CalculateSlots
type SlotResult struct {
	// SessionsPerResource max session count over all tanks
	SessionsPerResource int
	// ActualCloseTime end of the latest cleaning cycle over all tanks.
	// Tanks with zero sessions are skipped; if no tank has a session it equals CloseTime.
	ActualCloseTime types.TimeString
	// PerResource session count of every tank by index, empty for degenerate input
	PerResource []int
}

// SessionsFor session count tank i runs under the policy
func (r SlotResult) SessionsFor(i int, policy CapacityPolicy) int {
	if i < 0 || i >= len(r.PerResource) {
		return 0
	}
	if policy == PolicyPerTank {
		return r.PerResource[i]
	}
	return r.SessionsPerResource
}

// Capacity total sessions across all tanks under the policy
func (r SlotResult) Capacity(policy CapacityPolicy) int {
	if policy == PolicyPerTank {
		total := 0
		for _, n := range r.PerResource {
			total += n
		}
		return total
	}
	return r.SessionsPerResource * len(r.PerResource)
}

// CalculateSlots counts how many session+cleaning cycles fit each staggered tank.
//
// Tank i starts at open + i*stagger and runs floor((close - start) / (session + cleaning))
// cycles, zero when its start is already past closing. Close times not after
// the open time belong to the next day.
//
// Degenerate input (non-positive session, negative cleaning, missing times,
// no tanks) gives zero sessions and the close time unchanged.
func CalculateSlots(p SlotParams) SlotResult {
	degenerate := SlotResult{ActualCloseTime: p.CloseTime}

	if p.SessionDurationMinutes <= 0 || p.CleaningBufferMinutes < 0 {
		return degenerate
	}
	if p.ResourceCount <= 0 || p.OpenTime.IsZero() || p.CloseTime.IsZero() {
		return degenerate
	}

	sessionLength := p.SessionDurationMinutes + p.CleaningBufferMinutes
	stagger := max(p.StaggerIntervalMinutes, 0)

	openMinutes := types.TimeToMinutes(p.OpenTime.String())
	closeMinutes := types.EffectiveCloseMinutes(openMinutes, types.TimeToMinutes(p.CloseTime.String()))

	perResource := make([]int, p.ResourceCount)
	best := 0
	latestEnd := -1

	for i := 0; i < p.ResourceCount; i++ {
		start := openMinutes + i*stagger
		window := closeMinutes - start

		count := 0
		if window > 0 {
			count = window / sessionLength
		}

		perResource[i] = count
		best = max(best, count)

		// Баки без единой сессии не сдвигают фактическое закрытие
		if count > 0 {
			latestEnd = max(latestEnd, start+count*sessionLength)
		}
	}

	actualClose := p.CloseTime
	if latestEnd >= 0 {
		actualClose = types.MinutesToTime(latestEnd)
	}

	return SlotResult{
		SessionsPerResource: best,
		ActualCloseTime:     actualClose,
		PerResource:         perResource,
	}
}
