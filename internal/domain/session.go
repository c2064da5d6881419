package domain

import "github.com/m04kA/SMC-TankScheduler/pkg/types"

// SessionRecord one session of one tank on a selected day.
// Times are rendered modulo 24h, a late session may belong to the next day.
type SessionRecord struct {
	ResourceIndex int
	ResourceName  string
	SessionNumber int // с 1
	StartTime     types.TimeString
	EndTime       types.TimeString
	CleaningStart types.TimeString
	CleaningEnd   types.TimeString
}

// SessionTimetableEntry ordered sessions of one ready tank
type SessionTimetableEntry struct {
	TankID        int64
	ResourceIndex int
	ResourceName  string
	Sessions      []SessionRecord
}
