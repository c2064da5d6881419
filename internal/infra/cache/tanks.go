package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-TankScheduler/internal/domain"
)

// Tanks кэширует список баков. GetByID идет мимо кэша.
type Tanks struct {
	next TankStore
	store
}

// NewTanks создает кэширующую обертку над хранилищем баков
func NewTanks(next TankStore, client *redis.Client, ttl time.Duration, logger Logger) *Tanks {
	return &Tanks{
		next:  next,
		store: store{redis: client, ttl: ttl, logger: logger},
	}
}

// List получает список баков из кэша или хранилища
func (c *Tanks) List(ctx context.Context) ([]domain.Tank, error) {
	var cached []domain.Tank
	if c.read(ctx, tanksKey, &cached) {
		return cached, nil
	}

	tanks, err := c.next.List(ctx)
	if err != nil {
		return nil, err
	}

	c.write(ctx, tanksKey, tanks)
	return tanks, nil
}

func (c *Tanks) GetByID(ctx context.Context, id int64) (*domain.Tank, error) {
	return c.next.GetByID(ctx, id)
}

func (c *Tanks) Create(ctx context.Context, t *domain.Tank) (*domain.Tank, error) {
	created, err := c.next.Create(ctx, t)
	c.invalidate(ctx, tanksKey)
	return created, err
}

func (c *Tanks) Update(ctx context.Context, t *domain.Tank) (*domain.Tank, error) {
	updated, err := c.next.Update(ctx, t)
	c.invalidate(ctx, tanksKey)
	return updated, err
}

func (c *Tanks) Delete(ctx context.Context, id int64) error {
	err := c.next.Delete(ctx, id)
	c.invalidate(ctx, tanksKey)
	return err
}
