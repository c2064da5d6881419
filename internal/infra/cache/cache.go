package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix   = "tankscheduler:"
	settingsKey = keyPrefix + "settings"
	tanksKey    = keyPrefix + "tanks"
)

// store общая часть кэширующих декораторов.
// Ошибки Redis не прерывают запрос: логируем и идем в основное хранилище.
type store struct {
	redis  *redis.Client
	ttl    time.Duration
	logger Logger
}

func (s *store) read(ctx context.Context, key string, out any) bool {
	val, err := s.redis.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false
	}
	if err != nil {
		s.logger.Warn("cache: failed to read key=%s: %v", key, err)
		return false
	}
	if err := json.Unmarshal(val, out); err != nil {
		s.logger.Warn("cache: failed to decode key=%s: %v", key, err)
		return false
	}
	return true
}

func (s *store) write(ctx context.Context, key string, val any) {
	data, err := json.Marshal(val)
	if err != nil {
		s.logger.Warn("cache: failed to encode key=%s: %v", key, err)
		return
	}
	if err := s.redis.Set(ctx, key, data, s.ttl).Err(); err != nil {
		s.logger.Warn("cache: failed to write key=%s: %v", key, err)
	}
}

func (s *store) invalidate(ctx context.Context, key string) {
	if err := s.redis.Del(ctx, key).Err(); err != nil {
		s.logger.Warn("cache: failed to invalidate key=%s: %v", key, err)
	}
}
