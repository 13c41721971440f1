package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/Banos-api/internal/application/analytics"
	"github.com/jhoicas/Banos-api/internal/application/dto"
	"github.com/jhoicas/Banos-api/pkg/config"
)

var _ analytics.StatsCache = (*StatsCache)(nil)

const statsKeyPrefix = "banos:dashboard:stats:"

// NewRedisClient abre la conexión a Redis.
// Devuelve nil si la URL está vacía (Redis no configurado).
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	if cfg.URL == "" {
		return nil, nil
	}
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}
	opts.DialTimeout = 3 * time.Second
	opts.ReadTimeout = time.Second
	opts.WriteTimeout = time.Second

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return client, nil
}

// StatsCache guarda el DashboardStatsDTO serializado en JSON con TTL.
type StatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStatsCache construye el cache. ttl <= 0 desactiva la escritura.
func NewStatsCache(client *redis.Client, ttl time.Duration) *StatsCache {
	return &StatsCache{client: client, ttl: ttl}
}

// Get devuelve (nil, nil) si la clave no existe o expiró.
func (c *StatsCache) Get(ctx context.Context, key string) (*dto.DashboardStatsDTO, error) {
	raw, err := c.client.Get(ctx, statsKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get stats: %w", err)
	}
	var stats dto.DashboardStatsDTO
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil, fmt.Errorf("decode stats: %w", err)
	}
	return &stats, nil
}

// Set guarda las estadísticas con el TTL configurado.
func (c *StatsCache) Set(ctx context.Context, key string, stats *dto.DashboardStatsDTO) error {
	if c.ttl <= 0 {
		return nil
	}
	raw, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("encode stats: %w", err)
	}
	if err := c.client.Set(ctx, statsKeyPrefix+key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set stats: %w", err)
	}
	return nil
}
