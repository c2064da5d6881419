package domain

// DayStatus derived status of a calendar day
type DayStatus string

const (
	DayStatusBookable DayStatus = "bookable"
	DayStatusClosed   DayStatus = "closed"
	DayStatusSoldOut  DayStatus = "sold_out" // не хранится, вычисляется
)

// DayAvailability is computed on every request and never persisted.
// BookedSessions is not clamped: overbooking stays visible.
type DayAvailability struct {
	Date              Date
	Status            DayStatus
	OpenTime          string
	CloseTime         string
	TotalSessions     int
	BookedSessions    int
	AvailableSessions int
}

// IsOverbooked returns true if more sessions are booked than the day can hold
func (d *DayAvailability) IsOverbooked() bool {
	return d.BookedSessions > d.TotalSessions
}
