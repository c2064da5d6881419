package domain

import "time"

// TankStatus represents whether a tank can host sessions
type TankStatus string

const (
	TankStatusReady       TankStatus = "ready"
	TankStatusMaintenance TankStatus = "maintenance"
)

// IsValid returns true for known statuses
func (s TankStatus) IsValid() bool {
	return s == TankStatusReady || s == TankStatusMaintenance
}

// Tank is a float tank, the schedulable resource
type Tank struct {
	ID        int64
	Name      string
	Status    TankStatus
	SortOrder int // порядок отображения и порядок в расписании (влияет на смещение старта)
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsReady returns true if the tank takes part in slot computation
func (t *Tank) IsReady() bool {
	return t.Status == TankStatusReady
}

// ReadyTanks filters tanks in ready status preserving order
func ReadyTanks(tanks []Tank) []Tank {
	ready := make([]Tank, 0, len(tanks))
	for _, t := range tanks {
		if t.IsReady() {
			ready = append(ready, t)
		}
	}
	return ready
}
