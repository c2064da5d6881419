package scheduling

import (
	"github.com/m04kA/SMC-TankScheduler/internal/domain"
	"github.com/m04kA/SMC-TankScheduler/pkg/types"
)

// ComputeDayTimetable expands the day's slot count into concrete sessions,
// one entry per ready tank in the given order. Maintenance tanks are skipped
// and do not shift the stagger of the following tanks. A closed day has no entries.
//
// Session k of tank i starts at open + i*stagger + k*(session+cleaning).
func (e *Engine) ComputeDayTimetable(day DaySchedule, tanks []domain.Tank) []domain.SessionTimetableEntry {
	if day.Closed {
		return []domain.SessionTimetableEntry{}
	}

	ready := domain.ReadyTanks(tanks)
	slots := CalculateSlots(day.SlotParams(len(ready)))

	sessionLength := day.SessionDurationMinutes + day.CleaningBufferMinutes
	stagger := max(day.StaggerIntervalMinutes, 0)
	openMinutes := types.TimeToMinutes(day.OpenTime.String())

	entries := make([]domain.SessionTimetableEntry, 0, len(ready))
	for i, tank := range ready {
		count := slots.SessionsFor(i, e.policy)
		tankStart := openMinutes + i*stagger

		sessions := make([]domain.SessionRecord, 0, count)
		for k := 0; k < count; k++ {
			start := tankStart + k*sessionLength
			end := start + day.SessionDurationMinutes

			sessions = append(sessions, domain.SessionRecord{
				ResourceIndex: i,
				ResourceName:  tank.Name,
				SessionNumber: k + 1,
				StartTime:     types.MinutesToTime(start),
				EndTime:       types.MinutesToTime(end),
				CleaningStart: types.MinutesToTime(end),
				CleaningEnd:   types.MinutesToTime(end + day.CleaningBufferMinutes),
			})
		}

		entries = append(entries, domain.SessionTimetableEntry{
			TankID:        tank.ID,
			ResourceIndex: i,
			ResourceName:  tank.Name,
			Sessions:      sessions,
		})
	}

	return entries
}
