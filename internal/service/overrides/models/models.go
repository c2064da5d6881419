package models

import (
	"time"

	"github.com/m04kA/SMC-TankScheduler/internal/domain"
)

// OverrideResponse ответ с данными исключения
type OverrideResponse struct {
	Date           string    `json:"date"`
	Status         string    `json:"status"`
	OpenTime       *string   `json:"openTime,omitempty"`
	CloseTime      *string   `json:"closeTime,omitempty"`
	SessionsToSell int       `json:"sessionsToSell"`
	UpdatedBy      int64     `json:"updatedBy,omitempty"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// OverrideListResponse ответ со списком исключений
type OverrideListResponse struct {
	From      string             `json:"from"`
	To        string             `json:"to"`
	Overrides []OverrideResponse `json:"overrides"`
}

// FromDomainOverride конвертирует domain модель в DTO
func FromDomainOverride(o *domain.DayOverride) *OverrideResponse {
	if o == nil {
		return nil
	}

	resp := &OverrideResponse{
		Date:           o.Date.String(),
		Status:         string(o.Status),
		SessionsToSell: o.SessionsToSell,
		UpdatedBy:      o.UpdatedBy,
		UpdatedAt:      o.UpdatedAt,
	}

	if !o.IsClosed() {
		openTime, closeTime := o.OpenTime.String(), o.CloseTime.String()
		resp.OpenTime = &openTime
		resp.CloseTime = &closeTime
	}

	return resp
}
