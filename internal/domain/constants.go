package domain

// Business validation constants
const (
	MinSessionDurationMinutes = 5
	MaxSessionDurationMinutes = 480 // 8 hours
	MinCleaningBufferMinutes  = 0
	MaxCleaningBufferMinutes  = 240
	MinStaggerIntervalMinutes = 0
	MaxStaggerIntervalMinutes = 240
	MaxTankNameLength         = 100
	MaxSessionsToSell         = 10000
	MaxOverrideRangeDays      = 93 // ~ три месяца календаря админки
	MinCalendarYear           = 2000
	MaxCalendarYear           = 2100
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
