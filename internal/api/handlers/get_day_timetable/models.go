package get_day_timetable

import (
	"github.com/m04kA/SMC-TankScheduler/internal/domain"
	getDayTimetable "github.com/m04kA/SMC-TankScheduler/internal/usecase/get_day_timetable"
)

// SessionResponse одна сессия бака
type SessionResponse struct {
	SessionNumber int    `json:"sessionNumber"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	CleaningStart string `json:"cleaningStart"`
	CleaningEnd   string `json:"cleaningEnd"`
}

// TankTimetableResponse расписание одного бака
type TankTimetableResponse struct {
	TankID        int64             `json:"tankId"`
	ResourceIndex int               `json:"resourceIndex"`
	ResourceName  string            `json:"resourceName"`
	Sessions      []SessionResponse `json:"sessions"`
}

// DayTimetableResponse HTTP response model
type DayTimetableResponse struct {
	Date              string                  `json:"date"`
	Status            string                  `json:"status"`
	HasOverride       bool                    `json:"hasOverride"`
	OpenTime          string                  `json:"openTime,omitempty"`
	CloseTime         string                  `json:"closeTime,omitempty"`
	ActualCloseTime   string                  `json:"actualCloseTime,omitempty"`
	SessionsPerTank   int                     `json:"sessionsPerTank"`
	TotalSessions     int                     `json:"totalSessions"`
	BookedSessions    int                     `json:"bookedSessions"`
	AvailableSessions int                     `json:"availableSessions"`
	Tanks             []TankTimetableResponse `json:"tanks"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDayTimetable.Response) *DayTimetableResponse {
	tanks := make([]TankTimetableResponse, len(resp.Tanks))
	for i, entry := range resp.Tanks {
		tanks[i] = fromDomainEntry(entry)
	}

	return &DayTimetableResponse{
		Date:              resp.Date.String(),
		Status:            string(resp.Availability.Status),
		HasOverride:       resp.HasOverride,
		OpenTime:          resp.OpenTime.String(),
		CloseTime:         resp.CloseTime.String(),
		ActualCloseTime:   resp.ActualCloseTime.String(),
		SessionsPerTank:   resp.SessionsPerTank,
		TotalSessions:     resp.Availability.TotalSessions,
		BookedSessions:    resp.Availability.BookedSessions,
		AvailableSessions: resp.Availability.AvailableSessions,
		Tanks:             tanks,
	}
}

func fromDomainEntry(entry domain.SessionTimetableEntry) TankTimetableResponse {
	sessions := make([]SessionResponse, len(entry.Sessions))
	for i, s := range entry.Sessions {
		sessions[i] = SessionResponse{
			SessionNumber: s.SessionNumber,
			StartTime:     s.StartTime.String(),
			EndTime:       s.EndTime.String(),
			CleaningStart: s.CleaningStart.String(),
			CleaningEnd:   s.CleaningEnd.String(),
		}
	}

	return TankTimetableResponse{
		TankID:        entry.TankID,
		ResourceIndex: entry.ResourceIndex,
		ResourceName:  entry.ResourceName,
		Sessions:      sessions,
	}
}
