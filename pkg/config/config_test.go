package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Banos-api/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "America/Argentina/Buenos_Aires", cfg.App.Timezone)
	assert.True(t, cfg.App.MigrateOnStart)
	assert.True(t, cfg.App.SeedEnabled)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, 30*time.Second, cfg.Redis.StatsCacheTTL)
	assert.Zero(t, cfg.Alertas.Interval)
	assert.EqualValues(t, 25, cfg.DB.MaxConns)
	assert.False(t, cfg.DB.ForceIPv4)
}

func TestLoad_LeeVariablesDeEntorno(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("APP_ENV", "production")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("STATS_CACHE_TTL", "2m")
	t.Setenv("ALERTS_INTERVAL", "3600")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("DB_MAX_CONNS", "5")
	t.Setenv("DB_FORCE_IPV4", "true")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.False(t, cfg.App.SeedEnabled, "en producción el seed queda apagado salvo que se pida")
	assert.Equal(t, 2*time.Minute, cfg.Redis.StatsCacheTTL)
	assert.Equal(t, time.Hour, cfg.Alertas.Interval)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Redis.URL)
	assert.EqualValues(t, 5, cfg.DB.MaxConns)
	assert.True(t, cfg.DB.ForceIPv4)
}

func TestLoad_DuracionInvalida(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("STATS_CACHE_TTL", "pronto")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_DSNEscapaPassword(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:word", DBName: "banos", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aword@db:5432/banos?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x"
	assert.Equal(t, "postgres://x", c.ConnectionString())
}
