//go:build integration

package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Banos-api/internal/application/dto"
	"github.com/jhoicas/Banos-api/internal/infrastructure/cache"
	"github.com/jhoicas/Banos-api/internal/testutil/containers"
	"github.com/jhoicas/Banos-api/pkg/config"
)

func TestStatsCache_Redis(t *testing.T) {
	client := containers.Redis(t)
	ctx := context.Background()
	c := cache.NewStatsCache(client, time.Minute)

	got, err := c.Get(ctx, "2026-05-19")
	require.NoError(t, err)
	assert.Nil(t, got, "clave inexistente")

	stats := &dto.DashboardStatsDTO{
		Banos:       dto.BanosStatsDTO{Total: 100, Disponibles: 50, Alquilados: 50, Vencidos: 5},
		Facturacion: dto.MontoMensualDTO{Mensual: decimal.RequireFromString("124500.50")},
		Periodo:     "Mayo 2026",
	}
	require.NoError(t, c.Set(ctx, "2026-05-19", stats))

	got, err = c.Get(ctx, "2026-05-19")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, stats.Banos, got.Banos)
	assert.True(t, stats.Facturacion.Mensual.Equal(got.Facturacion.Mensual))
	assert.Equal(t, "Mayo 2026", got.Periodo)

	ttl, err := client.TTL(ctx, "banos:dashboard:stats:2026-05-19").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
}

func TestStatsCache_TTLCeroNoEscribe(t *testing.T) {
	client := containers.Redis(t)
	ctx := context.Background()
	c := cache.NewStatsCache(client, 0)

	require.NoError(t, c.Set(ctx, "2026-05-19", &dto.DashboardStatsDTO{Periodo: "Mayo 2026"}))
	got, err := c.Get(ctx, "2026-05-19")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestNewRedisClient_SinURL(t *testing.T) {
	client, err := cache.NewRedisClient(context.Background(), config.RedisConfig{})
	require.NoError(t, err)
	assert.Nil(t, client)
}
