package set_day_override

import (
	"fmt"

	"github.com/m04kA/SMC-TankScheduler/internal/domain"
	"github.com/m04kA/SMC-TankScheduler/pkg/types"
)

// validateRequest валидирует запрос и собирает из него исключение.
// Для закрытого дня время и лимит сессий не сохраняются.
func validateRequest(req *Request) (*domain.DayOverride, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	if req.AdminID <= 0 {
		return nil, fmt.Errorf("%w: adminID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Date.Year < domain.MinCalendarYear || req.Date.Year > domain.MaxCalendarYear {
		return nil, fmt.Errorf("%w: year must be between %d and %d",
			ErrInvalidInput, domain.MinCalendarYear, domain.MaxCalendarYear)
	}

	status := domain.OverrideStatus(req.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: status must be one of: bookable, closed", ErrInvalidInput)
	}

	override := &domain.DayOverride{
		Date:      req.Date,
		Status:    status,
		UpdatedBy: req.AdminID,
	}

	if status == domain.OverrideStatusClosed {
		return override, nil
	}

	openTime, err := types.NewTimeStringFromString(req.OpenTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid openTime: %v", ErrInvalidInput, err)
	}

	closeTime, err := types.NewTimeStringFromString(req.CloseTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid closeTime: %v", ErrInvalidInput, err)
	}

	if openTime == closeTime {
		return nil, fmt.Errorf("%w: openTime and closeTime must differ", ErrInvalidInput)
	}

	if req.SessionsToSell != nil {
		if *req.SessionsToSell < 0 || *req.SessionsToSell > domain.MaxSessionsToSell {
			return nil, fmt.Errorf("%w: sessionsToSell must be between 0 and %d",
				ErrInvalidInput, domain.MaxSessionsToSell)
		}
		override.SessionsToSell = *req.SessionsToSell
	}

	override.OpenTime = openTime
	override.CloseTime = closeTime

	return override, nil
}
