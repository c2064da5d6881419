package get_month_calendar

import (
	"fmt"

	"github.com/m04kA/SMC-TankScheduler/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	if req.Year < domain.MinCalendarYear || req.Year > domain.MaxCalendarYear {
		return fmt.Errorf("%w: year must be between %d and %d",
			ErrInvalidInput, domain.MinCalendarYear, domain.MaxCalendarYear)
	}

	if req.Month < 1 || req.Month > 12 {
		return fmt.Errorf("%w: month must be between 1 and 12", ErrInvalidInput)
	}

	return nil
}
