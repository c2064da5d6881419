package get_day_timetable

import (
	"fmt"

	"github.com/m04kA/SMC-TankScheduler/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req == nil || req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Date.Year < domain.MinCalendarYear || req.Date.Year > domain.MaxCalendarYear {
		return fmt.Errorf("%w: year must be between %d and %d",
			ErrInvalidInput, domain.MinCalendarYear, domain.MaxCalendarYear)
	}

	return nil
}
