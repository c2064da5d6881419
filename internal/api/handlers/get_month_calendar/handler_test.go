package get_month_calendar

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TankScheduler/internal/domain"
	getMonthCalendar "github.com/m04kA/SMC-TankScheduler/internal/usecase/get_month_calendar"
)

type mockUseCase struct{ mock.Mock }

func (m *mockUseCase) Execute(ctx context.Context, req *getMonthCalendar.Request) (*getMonthCalendar.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*getMonthCalendar.Response)
	return resp, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(h *Handler, year, month string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/calendar/"+year+"/"+month, nil)
	req = mux.SetURLVars(req, map[string]string{"year": year, "month": month})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_OK(t *testing.T) {
	uc := new(mockUseCase)
	uc.On("Execute", mock.Anything, &getMonthCalendar.Request{Year: 2025, Month: 3}).Return(&getMonthCalendar.Response{
		Year:  2025,
		Month: 3,
		Days: []domain.DayAvailability{
			{
				Date:              domain.Date{Year: 2025, Month: time.March, Day: 1},
				Status:            domain.DayStatusBookable,
				OpenTime:          "09:00",
				CloseTime:         "17:00",
				TotalSessions:     18,
				BookedSessions:    3,
				AvailableSessions: 15,
			},
			{
				Date:   domain.Date{Year: 2025, Month: time.March, Day: 2},
				Status: domain.DayStatusClosed,
			},
		},
		Summary: getMonthCalendar.Summary{TotalSessions: 18, BookedSessions: 3, AvailableSessions: 15, BookableDays: 1, ClosedDays: 1},
	}, nil)

	rec := serve(NewHandler(uc, nopLogger{}), "2025", "3")
	require.Equal(t, http.StatusOK, rec.Code)

	var body MonthCalendarResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Days, 2)
	assert.Equal(t, "2025-03-01", body.Days[0].Date)
	assert.Equal(t, "bookable", body.Days[0].Status)
	assert.Equal(t, 15, body.Days[0].AvailableSessions)
	assert.Equal(t, "closed", body.Days[1].Status)
	assert.Empty(t, body.Days[1].OpenTime)
	assert.Equal(t, 1, body.Summary.ClosedDays)
	uc.AssertExpectations(t)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		year       string
		month      string
		ucErr      error
		wantStatus int
	}{
		{name: "non numeric month", year: "2025", month: "mar", wantStatus: http.StatusBadRequest},
		{name: "invalid input", year: "2025", month: "13", ucErr: getMonthCalendar.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "settings missing", year: "2025", month: "3", ucErr: getMonthCalendar.ErrSettingsNotConfigured, wantStatus: http.StatusNotFound},
		{name: "internal", year: "2025", month: "3", ucErr: errors.New("db down"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(mockUseCase)
			if tt.ucErr != nil {
				uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.ucErr)
			}

			rec := serve(NewHandler(uc, nopLogger{}), tt.year, tt.month)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), `"error"`)
			uc.AssertExpectations(t)
		})
	}
}
