package domain

import (
	"time"

	"github.com/m04kA/SMC-TankScheduler/pkg/types"
)

// OverrideStatus admin decision for a specific day
type OverrideStatus string

const (
	OverrideStatusBookable OverrideStatus = "bookable"
	OverrideStatusClosed   OverrideStatus = "closed"
)

// IsValid returns true for known statuses
func (s OverrideStatus) IsValid() bool {
	return s == OverrideStatusBookable || s == OverrideStatusClosed
}

// DayOverride replaces default operating hours for one date.
// At most one override exists per date.
type DayOverride struct {
	Date           Date
	Status         OverrideStatus
	OpenTime       types.TimeString // только для bookable
	CloseTime      types.TimeString // только для bookable
	SessionsToSell int              // лимит сессий на день по всем бакам
	UpdatedBy      int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsClosed returns true if the day is closed; times and sessions are ignored then
func (o *DayOverride) IsClosed() bool {
	return o.Status == OverrideStatusClosed
}
