package scheduling

import (
	"github.com/m04kA/SMC-TankScheduler/internal/domain"
	"github.com/m04kA/SMC-TankScheduler/pkg/types"
)

// DaySchedule effective parameters of one date after applying its override
type DaySchedule struct {
	Date                   domain.Date
	Closed                 bool
	HasOverride            bool
	OpenTime               types.TimeString
	CloseTime              types.TimeString
	SessionDurationMinutes int
	CleaningBufferMinutes  int
	StaggerIntervalMinutes int
	SessionsToSell         int // задано только при HasOverride
}

// ResolveDay merges default settings with the override of the date (nil when absent)
func ResolveDay(date domain.Date, settings domain.OperatingSettings, override *domain.DayOverride) DaySchedule {
	day := DaySchedule{
		Date:                   date,
		OpenTime:               settings.DefaultOpenTime,
		CloseTime:              settings.DefaultCloseTime,
		SessionDurationMinutes: settings.SessionDurationMinutes,
		CleaningBufferMinutes:  settings.CleaningBufferMinutes,
		StaggerIntervalMinutes: settings.TankStaggerIntervalMinutes,
	}

	if override == nil {
		return day
	}

	day.HasOverride = true
	if override.IsClosed() {
		day.Closed = true
		day.OpenTime = ""
		day.CloseTime = ""
		return day
	}

	day.OpenTime = override.OpenTime
	day.CloseTime = override.CloseTime
	day.SessionsToSell = override.SessionsToSell
	return day
}

// SlotParams slot calculator input for this day and tank count
func (d DaySchedule) SlotParams(resourceCount int) SlotParams {
	return SlotParams{
		OpenTime:               d.OpenTime,
		CloseTime:              d.CloseTime,
		SessionDurationMinutes: d.SessionDurationMinutes,
		CleaningBufferMinutes:  d.CleaningBufferMinutes,
		ResourceCount:          resourceCount,
		StaggerIntervalMinutes: d.StaggerIntervalMinutes,
	}
}

// ComputeDay builds the availability of one date.
//
// Closed override: zero capacity, status closed.
// Bookable override: capacity is the override's SessionsToSell as stored.
// No override: capacity from the default window and ready tank count.
//
// BookedSessions is reported as given even when it exceeds capacity.
func (e *Engine) ComputeDay(day DaySchedule, readyTanks int, booked int) domain.DayAvailability {
	result := domain.DayAvailability{
		Date:           day.Date,
		BookedSessions: booked,
	}

	if day.Closed {
		result.Status = domain.DayStatusClosed
		return result
	}

	result.OpenTime = day.OpenTime.String()
	result.CloseTime = day.CloseTime.String()

	if day.HasOverride {
		result.TotalSessions = max(day.SessionsToSell, 0)
	} else {
		result.TotalSessions = CalculateSlots(day.SlotParams(readyTanks)).Capacity(e.policy)
	}

	result.AvailableSessions = max(result.TotalSessions-booked, 0)

	result.Status = domain.DayStatusBookable
	if result.AvailableSessions == 0 && result.TotalSessions > 0 {
		result.Status = domain.DayStatusSoldOut
	}

	return result
}
