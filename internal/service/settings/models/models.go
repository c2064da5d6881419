package models

import (
	"time"

	"github.com/m04kA/SMC-TankScheduler/internal/domain"
)

// UpdateSettingsRequest запрос на обновление настроек
// Все поля опциональны - обновляются только переданные значения
type UpdateSettingsRequest struct {
	AdminID                    int64   `json:"-"`
	SessionDurationMinutes     *int    `json:"sessionDurationMinutes,omitempty"`
	CleaningBufferMinutes      *int    `json:"cleaningBufferMinutes,omitempty"`
	TankStaggerIntervalMinutes *int    `json:"tankStaggerIntervalMinutes,omitempty"`
	DefaultOpenTime            *string `json:"defaultOpenTime,omitempty"`
	DefaultCloseTime           *string `json:"defaultCloseTime,omitempty"`
}

// SettingsResponse ответ с настройками центра
type SettingsResponse struct {
	SessionDurationMinutes     int       `json:"sessionDurationMinutes"`
	CleaningBufferMinutes      int       `json:"cleaningBufferMinutes"`
	TankStaggerIntervalMinutes int       `json:"tankStaggerIntervalMinutes"`
	DefaultOpenTime            string    `json:"defaultOpenTime"`
	DefaultCloseTime           string    `json:"defaultCloseTime"`
	SessionLengthMinutes       int       `json:"sessionLengthMinutes"` // сессия + уборка
	NumberOfResources          int       `json:"numberOfResources"`    // готовые баки, не хранится
	UpdatedAt                  time.Time `json:"updatedAt"`
}

// FromDomainSettings конвертирует domain модель в DTO
func FromDomainSettings(s *domain.OperatingSettings, readyTanks int) *SettingsResponse {
	if s == nil {
		return nil
	}

	return &SettingsResponse{
		SessionDurationMinutes:     s.SessionDurationMinutes,
		CleaningBufferMinutes:      s.CleaningBufferMinutes,
		TankStaggerIntervalMinutes: s.TankStaggerIntervalMinutes,
		DefaultOpenTime:            s.DefaultOpenTime.String(),
		DefaultCloseTime:           s.DefaultCloseTime.String(),
		SessionLengthMinutes:       s.SessionLengthMinutes(),
		NumberOfResources:          readyTanks,
		UpdatedAt:                  s.UpdatedAt,
	}
}
