package domain

// BookingStatus status of a customer booking as stored by the booking module.
// The scheduler only counts bookings, it never creates or changes them.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusNoShow    BookingStatus = "no_show"
)

// CountedBookingStatuses statuses that consume a session
// Используется при подсчёте занятых сессий за день
var CountedBookingStatuses = []BookingStatus{
	BookingStatusPending,
	BookingStatusConfirmed,
	BookingStatusCompleted,
	BookingStatusNoShow,
}
