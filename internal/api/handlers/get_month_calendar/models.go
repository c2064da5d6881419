package get_month_calendar

import (
	"strconv"

	"github.com/m04kA/SMC-TankScheduler/internal/domain"
	getMonthCalendar "github.com/m04kA/SMC-TankScheduler/internal/usecase/get_month_calendar"
)

// DayResponse доступность одного дня
type DayResponse struct {
	Date              string `json:"date"`
	Status            string `json:"status"`
	OpenTime          string `json:"openTime,omitempty"`
	CloseTime         string `json:"closeTime,omitempty"`
	TotalSessions     int    `json:"totalSessions"`
	BookedSessions    int    `json:"bookedSessions"`
	AvailableSessions int    `json:"availableSessions"`
}

// SummaryResponse итоги месяца
type SummaryResponse struct {
	TotalSessions     int `json:"totalSessions"`
	BookedSessions    int `json:"bookedSessions"`
	AvailableSessions int `json:"availableSessions"`
	BookableDays      int `json:"bookableDays"`
	ClosedDays        int `json:"closedDays"`
	SoldOutDays       int `json:"soldOutDays"`
	OverbookedDays    int `json:"overbookedDays"`
}

// MonthCalendarResponse HTTP response model
type MonthCalendarResponse struct {
	Year    int             `json:"year"`
	Month   int             `json:"month"`
	Days    []DayResponse   `json:"days"`
	Summary SummaryResponse `json:"summary"`
}

// FromDomainDay конвертирует доступность дня в HTTP модель
func FromDomainDay(d domain.DayAvailability) DayResponse {
	return DayResponse{
		Date:              d.Date.String(),
		Status:            string(d.Status),
		OpenTime:          d.OpenTime,
		CloseTime:         d.CloseTime,
		TotalSessions:     d.TotalSessions,
		BookedSessions:    d.BookedSessions,
		AvailableSessions: d.AvailableSessions,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getMonthCalendar.Response) *MonthCalendarResponse {
	days := make([]DayResponse, len(resp.Days))
	for i, d := range resp.Days {
		days[i] = FromDomainDay(d)
	}

	s := resp.Summary
	return &MonthCalendarResponse{
		Year:  resp.Year,
		Month: resp.Month,
		Days:  days,
		Summary: SummaryResponse{
			TotalSessions:     s.TotalSessions,
			BookedSessions:    s.BookedSessions,
			AvailableSessions: s.AvailableSessions,
			BookableDays:      s.BookableDays,
			ClosedDays:        s.ClosedDays,
			SoldOutDays:       s.SoldOutDays,
			OverbookedDays:    s.OverbookedDays,
		},
	}
}

// ParseYearMonth разбирает год и месяц из URL
func ParseYearMonth(yearStr, monthStr string) (*getMonthCalendar.Request, error) {
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return nil, err
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil {
		return nil, err
	}

	return &getMonthCalendar.Request{Year: year, Month: month}, nil
}
