package domain

import (
	"time"

	"github.com/m04kA/SMC-TankScheduler/pkg/types"
)

// OperatingSettings default operating configuration of the float center.
// The number of tanks is not stored: it is the count of ready tanks.
type OperatingSettings struct {
	SessionDurationMinutes     int
	CleaningBufferMinutes      int
	TankStaggerIntervalMinutes int
	DefaultOpenTime            types.TimeString
	DefaultCloseTime           types.TimeString
	UpdatedAt                  time.Time
}

// SessionLengthMinutes full cycle of one session plus cleaning
func (s *OperatingSettings) SessionLengthMinutes() int {
	return s.SessionDurationMinutes + s.CleaningBufferMinutes
}

// IsValid session must be positive and cleaning buffer non-negative
func (s *OperatingSettings) IsValid() bool {
	return s.SessionDurationMinutes > 0 && s.CleaningBufferMinutes >= 0
}

// HasStagger returns true if tanks start at different times
func (s *OperatingSettings) HasStagger() bool {
	return s.TankStaggerIntervalMinutes > 0
}
