package analytics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Banos-api/internal/application/analytics"
	"github.com/jhoicas/Banos-api/internal/application/dto"
	"github.com/jhoicas/Banos-api/internal/application/seed"
	"github.com/jhoicas/Banos-api/internal/domain/entity"
	"github.com/jhoicas/Banos-api/internal/testutil/memstore"
	"github.com/jhoicas/Banos-api/pkg/logger"
)

type cacheMock struct{ mock.Mock }

func (m *cacheMock) Get(ctx context.Context, key string) (*dto.DashboardStatsDTO, error) {
	args := m.Called(ctx, key)
	stats, _ := args.Get(0).(*dto.DashboardStatsDTO)
	return stats, args.Error(1)
}

func (m *cacheMock) Set(ctx context.Context, key string, stats *dto.DashboardStatsDTO) error {
	return m.Called(ctx, key, stats).Error(0)
}

type observerMock struct{ mock.Mock }

func (m *observerMock) CacheResult(result string) { m.Called(result) }

func ahora() time.Time {
	return time.Date(2026, time.May, 19, 12, 0, 0, 0, time.FixedZone("ART", -3*60*60))
}

func storeBasico(t *testing.T) *memstore.Store {
	t.Helper()
	st := memstore.New()
	_, err := seed.NewUseCase(st.Tx(), logger.Nop(), ahora).Basico(context.Background())
	require.NoError(t, err)
	return st
}

func TestGetStats_SinCache(t *testing.T) {
	st := storeBasico(t)
	ctx := context.Background()
	require.NoError(t, st.Facturas().Create(ctx, &entity.Factura{
		ID: "F-2026-001", ClienteID: 1, Fecha: time.Date(2026, time.May, 2, 0, 0, 0, 0, time.UTC),
		Monto: decimal.RequireFromString("1234.565"), Estado: entity.FacturaPendiente,
	}))
	uc := analytics.NewDashboardUseCase(st.Analytics(), nil, nil, logger.Nop(), ahora)

	stats, err := uc.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, dto.BanosStatsDTO{Total: 20, Disponibles: 10, Alquilados: 10, Vencidos: 10}, stats.Banos)
	assert.Equal(t, 0, stats.Contratos.Activos)
	assert.Equal(t, "1234.57", stats.Facturacion.Mensual.StringFixed(2))
	assert.True(t, stats.Pagos.Mensual.IsZero())
	assert.Equal(t, dto.AlertasStatsDTO{Total: 3, Pagos: 2, Contratos: 1}, stats.Alertas)
	assert.True(t, stats.CargoAdicionalEstimado.Equal(decimal.NewFromInt(45000)))
	assert.Equal(t, "Mayo 2026", stats.Periodo)
}

func TestGetStats_CacheMissGuardaResultado(t *testing.T) {
	st := storeBasico(t)
	cache := &cacheMock{}
	obs := &observerMock{}
	cache.On("Get", mock.Anything, "2026-05-19").Return(nil, nil).Once()
	cache.On("Set", mock.Anything, "2026-05-19", mock.AnythingOfType("*dto.DashboardStatsDTO")).Return(nil).Once()
	obs.On("CacheResult", "miss").Once()

	uc := analytics.NewDashboardUseCase(st.Analytics(), cache, obs, logger.Nop(), ahora)
	stats, err := uc.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 20, stats.Banos.Total)

	cache.AssertExpectations(t)
	obs.AssertExpectations(t)
}

func TestGetStats_CacheHitNoConsultaLaBase(t *testing.T) {
	cached := &dto.DashboardStatsDTO{Periodo: "Mayo 2026", Banos: dto.BanosStatsDTO{Total: 99}}
	cache := &cacheMock{}
	obs := &observerMock{}
	cache.On("Get", mock.Anything, "2026-05-19").Return(cached, nil).Once()
	obs.On("CacheResult", "hit").Once()

	// sin repo: cualquier consulta entraría en pánico
	uc := analytics.NewDashboardUseCase(nil, cache, obs, logger.Nop(), ahora)
	stats, err := uc.GetStats(context.Background())
	require.NoError(t, err)
	assert.Same(t, cached, stats)

	cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)
	obs.AssertExpectations(t)
}

func TestGetStats_ErrorDeCacheNoCorta(t *testing.T) {
	st := storeBasico(t)
	cache := &cacheMock{}
	obs := &observerMock{}
	cache.On("Get", mock.Anything, "2026-05-19").Return(nil, errors.New("redis caído")).Once()
	cache.On("Set", mock.Anything, "2026-05-19", mock.Anything).Return(errors.New("redis caído")).Once()
	obs.On("CacheResult", "error").Once()

	uc := analytics.NewDashboardUseCase(st.Analytics(), cache, obs, logger.Nop(), ahora)
	stats, err := uc.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10, stats.Banos.Vencidos)

	cache.AssertExpectations(t)
	obs.AssertExpectations(t)
}
