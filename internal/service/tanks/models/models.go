package models

import (
	"time"

	"github.com/m04kA/SMC-TankScheduler/internal/domain"
)

// CreateTankRequest запрос на создание бака
type CreateTankRequest struct {
	AdminID   int64  `json:"-"`
	Name      string `json:"name"`
	Status    string `json:"status"` // ready | maintenance, по умолчанию ready
	SortOrder int    `json:"sortOrder"`
}

// UpdateTankRequest запрос на обновление бака
// Все поля опциональны - обновляются только переданные значения
type UpdateTankRequest struct {
	AdminID   int64   `json:"-"`
	Name      *string `json:"name,omitempty"`
	Status    *string `json:"status,omitempty"`
	SortOrder *int    `json:"sortOrder,omitempty"`
}

// TankResponse ответ с данными бака
type TankResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	SortOrder int       `json:"sortOrder"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TankListResponse ответ со списком баков
type TankListResponse struct {
	Tanks      []TankResponse `json:"tanks"`
	ReadyCount int            `json:"readyCount"`
}

// FromDomainTank конвертирует domain модель в DTO
func FromDomainTank(t *domain.Tank) *TankResponse {
	if t == nil {
		return nil
	}

	return &TankResponse{
		ID:        t.ID,
		Name:      t.Name,
		Status:    string(t.Status),
		SortOrder: t.SortOrder,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

// FromDomainTankList конвертирует список domain моделей в DTO
func FromDomainTankList(tanks []domain.Tank) *TankListResponse {
	resp := &TankListResponse{
		Tanks:      make([]TankResponse, len(tanks)),
		ReadyCount: len(domain.ReadyTanks(tanks)),
	}

	for i := range tanks {
		resp.Tanks[i] = *FromDomainTank(&tanks[i])
	}

	return resp
}
