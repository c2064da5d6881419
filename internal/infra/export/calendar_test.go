package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/m04kA/SMC-TankScheduler/internal/domain"
)

func TestWriteMonthCalendar(t *testing.T) {
	report := MonthReport{
		Year:  2025,
		Month: 6,
		Days: []domain.DayAvailability{
			{
				Date: domain.Date{Year: 2025, Month: time.June, Day: 1}, Status: domain.DayStatusBookable,
				OpenTime: "09:00", CloseTime: "21:00", TotalSessions: 27, BookedSessions: 4, AvailableSessions: 23,
			},
			{
				Date: domain.Date{Year: 2025, Month: time.June, Day: 2}, Status: domain.DayStatusClosed,
				BookedSessions: 1,
			},
			{
				Date: domain.Date{Year: 2025, Month: time.June, Day: 3}, Status: domain.DayStatusSoldOut,
				OpenTime: "12:00", CloseTime: "14:00", TotalSessions: 2, BookedSessions: 3,
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteMonthCalendar(&buf, report))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("2025-06")
	require.NoError(t, err)
	require.Len(t, rows, 5)

	assert.Equal(t, "Дата", rows[0][0])
	assert.Equal(t, []string{"2025-06-01", "Sunday", "bookable", "09:00", "21:00", "27", "4", "23"}, rows[1])
	assert.Equal(t, "closed", rows[2][2])
	assert.Equal(t, "sold_out", rows[3][2])
	assert.Equal(t, []string{"Итого", "", "", "", "", "29", "8", "23"}, rows[4])

	plain, err := f.GetCellStyle("2025-06", "A2")
	require.NoError(t, err)
	highlighted, err := f.GetCellStyle("2025-06", "A4")
	require.NoError(t, err)
	assert.NotEqual(t, plain, highlighted)

	// закрытый день с бронированиями подсвечен так же, как переполненный рабочий
	closedBooked, err := f.GetCellStyle("2025-06", "A3")
	require.NoError(t, err)
	assert.Equal(t, highlighted, closedBooked)
}
