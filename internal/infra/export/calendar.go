package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/m04kA/SMC-TankScheduler/internal/domain"
)

var calendarColumns = []string{
	"Дата",
	"День недели",
	"Статус",
	"Открытие",
	"Закрытие",
	"Всего сессий",
	"Забронировано",
	"Свободно",
}

// MonthReport данные месяца для выгрузки
type MonthReport struct {
	Year  int
	Month int
	Days  []domain.DayAvailability // по возрастанию даты
}

// WriteMonthCalendar пишет календарь месяца в XLSX: строка на день и итоговая строка.
// Дни, где бронирований больше вместимости, подсвечиваются.
func WriteMonthCalendar(w io.Writer, report MonthReport) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := fmt.Sprintf("%04d-%02d", report.Year, report.Month)
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	if err := f.SetSheetRow(sheet, "A1", &calendarColumns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}
	overbookedStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"F8CBAD"}},
	})
	if err != nil {
		return fmt.Errorf("create overbooked style: %w", err)
	}

	lastCol, _ := excelize.ColumnNumberToName(len(calendarColumns))
	if err := f.SetCellStyle(sheet, "A1", lastCol+"1", headerStyle); err != nil {
		return fmt.Errorf("style header: %w", err)
	}

	var total, booked, available int
	row := 2
	for i := range report.Days {
		day := &report.Days[i]

		values := []interface{}{
			day.Date.String(),
			day.Date.Weekday().String(),
			string(day.Status),
			day.OpenTime,
			day.CloseTime,
			day.TotalSessions,
			day.BookedSessions,
			day.AvailableSessions,
		}

		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("write row %s: %w", day.Date, err)
		}

		if day.IsOverbooked() {
			if err := f.SetCellStyle(sheet, cell, fmt.Sprintf("%s%d", lastCol, row), overbookedStyle); err != nil {
				return fmt.Errorf("style row %s: %w", day.Date, err)
			}
		}

		total += day.TotalSessions
		booked += day.BookedSessions
		available += day.AvailableSessions
		row++
	}

	summary := []interface{}{"Итого", "", "", "", "", total, booked, available}
	cell, _ := excelize.CoordinatesToCellName(1, row)
	if err := f.SetSheetRow(sheet, cell, &summary); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	if err := f.SetCellStyle(sheet, cell, fmt.Sprintf("%s%d", lastCol, row), headerStyle); err != nil {
		return fmt.Errorf("style summary: %w", err)
	}

	if err := f.SetColWidth(sheet, "A", lastCol, 15); err != nil {
		return fmt.Errorf("set column width: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
