package scheduling

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-TankScheduler/internal/domain"
)

// ComputeMonth builds availability for every day of the month from data fetched
// once for the whole month. Overrides outside the month are ignored; if a date
// has several overrides the first one wins. Missing booking counts mean zero.
func (e *Engine) ComputeMonth(
	year int,
	month time.Month,
	settings domain.OperatingSettings,
	tanks []domain.Tank,
	overrides []domain.DayOverride,
	bookingCounts map[domain.Date]int,
) map[domain.Date]domain.DayAvailability {
	byDate := make(map[domain.Date]*domain.DayOverride, len(overrides))
	for i := range overrides {
		if _, exists := byDate[overrides[i].Date]; !exists {
			byDate[overrides[i].Date] = &overrides[i]
		}
	}

	readyCount := len(domain.ReadyTanks(tanks))
	daysInMonth := domain.DaysInMonth(year, month)
	result := make(map[domain.Date]domain.DayAvailability, daysInMonth)

	for d := 1; d <= daysInMonth; d++ {
		date := domain.Date{Year: year, Month: month, Day: d}
		day := ResolveDay(date, settings, byDate[date])
		result[date] = e.ComputeDay(day, readyCount, bookingCounts[date])
	}

	return result
}

// SortedDays returns the month map as a slice ordered by date
func SortedDays(days map[domain.Date]domain.DayAvailability) []domain.DayAvailability {
	result := make([]domain.DayAvailability, 0, len(days))
	for _, day := range days {
		result = append(result, day)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Date.Before(result[j].Date)
	})
	return result
}
