package set_day_override

import (
	overrideModels "github.com/m04kA/SMC-TankScheduler/internal/service/overrides/models"
	setDayOverride "github.com/m04kA/SMC-TankScheduler/internal/usecase/set_day_override"
)

// SetDayOverrideRequest тело запроса на установку исключения
type SetDayOverrideRequest struct {
	Status         string `json:"status"`
	OpenTime       string `json:"openTime,omitempty"`
	CloseTime      string `json:"closeTime,omitempty"`
	SessionsToSell *int   `json:"sessionsToSell,omitempty"`
}

// SetDayOverrideResponse ответ с сохраненным исключением
type SetDayOverrideResponse struct {
	overrideModels.OverrideResponse
	SessionsComputed bool `json:"sessionsComputed"`
}

// FromUseCaseResponse конвертирует ответ usecase в DTO
func FromUseCaseResponse(resp *setDayOverride.Response) *SetDayOverrideResponse {
	return &SetDayOverrideResponse{
		OverrideResponse: *overrideModels.FromDomainOverride(&resp.Override),
		SessionsComputed: resp.SessionsComputed,
	}
}
