package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-TankScheduler/internal/domain"
)

// Settings кэширует чтение настроек, запись сбрасывает ключ
type Settings struct {
	next SettingsStore
	store
}

// NewSettings создает кэширующую обертку над хранилищем настроек
func NewSettings(next SettingsStore, client *redis.Client, ttl time.Duration, logger Logger) *Settings {
	return &Settings{
		next:  next,
		store: store{redis: client, ttl: ttl, logger: logger},
	}
}

// Get получает настройки из кэша или хранилища
func (c *Settings) Get(ctx context.Context) (*domain.OperatingSettings, error) {
	var cached domain.OperatingSettings
	if c.read(ctx, settingsKey, &cached) {
		return &cached, nil
	}

	s, err := c.next.Get(ctx)
	if err != nil {
		return nil, err
	}

	c.write(ctx, settingsKey, s)
	return s, nil
}

// Update сохраняет настройки и сбрасывает кэш
func (c *Settings) Update(ctx context.Context, s *domain.OperatingSettings) (*domain.OperatingSettings, error) {
	updated, err := c.next.Update(ctx, s)
	c.invalidate(ctx, settingsKey)
	if err != nil {
		return nil, err
	}
	return updated, nil
}
