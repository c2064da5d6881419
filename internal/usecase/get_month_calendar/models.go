package get_month_calendar

import "github.com/m04kA/SMC-TankScheduler/internal/domain"

// Request модель запроса календаря на месяц
type Request struct {
	Year  int
	Month int // 1-12
}

// Response модель ответа с доступностью по дням месяца
type Response struct {
	Year    int
	Month   int
	Days    []domain.DayAvailability // по возрастанию даты, все дни месяца
	Summary Summary
}

// Summary итоги по месяцу
type Summary struct {
	TotalSessions     int
	BookedSessions    int
	AvailableSessions int
	BookableDays      int
	ClosedDays        int
	SoldOutDays       int
	OverbookedDays    int
}
