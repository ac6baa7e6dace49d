package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/internal/entities"
	apperrors "github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/pkg/errors"

	"github.com/go-redis/redis/v8"
)

type CacheRepositoryInterface interface {
	GetStats(ctx context.Context) (*entities.RequestStats, error)
	SetStats(ctx context.Context, stats *entities.RequestStats, ttl time.Duration) error
	InvalidateStats(ctx context.Context) error
}

const statsCacheKey = "gearguard:requests:stats"

type RedisCacheRepository struct {
	client *redis.Client
}

func NewRedisCacheRepository(client *redis.Client) *RedisCacheRepository {
	return &RedisCacheRepository{client: client}
}

func (r *RedisCacheRepository) GetStats(ctx context.Context) (*entities.RequestStats, error) {
	raw, err := r.client.Get(ctx, statsCacheKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("read stats cache: %w", err)
	}

	var stats entities.RequestStats
	if err := json.Unmarshal([]byte(raw), &stats); err != nil {
		return nil, fmt.Errorf("decode cached stats: %w", err)
	}
	return &stats, nil
}

func (r *RedisCacheRepository) SetStats(ctx context.Context, stats *entities.RequestStats, ttl time.Duration) error {
	raw, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("encode stats for cache: %w", err)
	}
	if err := r.client.Set(ctx, statsCacheKey, raw, ttl).Err(); err != nil {
		return fmt.Errorf("write stats cache: %w", err)
	}
	return nil
}

func (r *RedisCacheRepository) InvalidateStats(ctx context.Context) error {
	if err := r.client.Del(ctx, statsCacheKey).Err(); err != nil {
		return fmt.Errorf("invalidate stats cache: %w", err)
	}
	return nil
}
