// Package analytics contiene los casos de uso de lectura agregada: las estadísticas del
// dashboard principal.
package analytics

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/Banos-api/internal/application/dto"
	"github.com/jhoicas/Banos-api/internal/domain/repository"
	"github.com/jhoicas/Banos-api/internal/domain/vencimiento"
	"github.com/jhoicas/Banos-api/pkg/logger"
)

// StatsCache cache opcional del resultado del dashboard.
type StatsCache interface {
	// Get devuelve (nil, nil) si no hay valor.
	Get(ctx context.Context, key string) (*dto.DashboardStatsDTO, error)
	Set(ctx context.Context, key string, stats *dto.DashboardStatsDTO) error
}

// CacheObserver recibe el resultado de cada lectura del cache (hit | miss | error).
type CacheObserver interface {
	CacheResult(result string)
}

// DashboardUseCase arma las tarjetas del dashboard.
//
// Fuente de datos: AnalyticsRepository (consultas read-only), en paralelo.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	cache         StatsCache
	observer      CacheObserver
	log           *logger.Logger
	now           vencimiento.Reloj
}

// NewDashboardUseCase construye el caso de uso. cache y observer pueden ser nil.
func NewDashboardUseCase(
	analyticsRepo repository.AnalyticsRepository,
	cache StatsCache,
	observer CacheObserver,
	log *logger.Logger,
	now vencimiento.Reloj,
) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo, cache: cache, observer: observer, log: log, now: now}
}

// GetStats devuelve las estadísticas del día. Si hay cache, se consulta primero y los
// errores del cache solo se registran.
func (uc *DashboardUseCase) GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	now := uc.now()
	key := vencimiento.Dia(now).Format(dto.LayoutFecha)

	if uc.cache != nil {
		cached, err := uc.cache.Get(ctx, key)
		switch {
		case err != nil:
			uc.observe("error")
			uc.log.Warn().Err(err).Msg("dashboard: lectura de cache")
		case cached != nil:
			uc.observe("hit")
			uc.log.Debug().Str("key", key).Msg("dashboard: cache hit")
			return cached, nil
		default:
			uc.observe("miss")
		}
	}

	stats, err := uc.calcular(ctx, now)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, key, stats); err != nil {
			uc.log.Warn().Err(err).Msg("dashboard: escritura de cache")
		}
	}
	return stats, nil
}

func (uc *DashboardUseCase) calcular(ctx context.Context, now time.Time) (*dto.DashboardStatsDTO, error) {
	hoy := vencimiento.Dia(now)
	desde, hasta := vencimiento.Mes(now)

	var (
		banos    repository.ConteoBanos
		vencidos int
		activos  int
		alertas  repository.ConteoAlertas
		stats    dto.DashboardStatsDTO
	)

	// ── Consultas en paralelo; la primera que falla cancela el resto ───────────
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		banos, err = uc.analyticsRepo.ConteoBanos(gctx)
		return wrap("conteo de baños", err)
	})
	g.Go(func() (err error) {
		vencidos, err = uc.analyticsRepo.AsignacionesVencidas(gctx, hoy)
		return wrap("baños vencidos", err)
	})
	g.Go(func() (err error) {
		activos, err = uc.analyticsRepo.ContratosActivos(gctx, hoy)
		return wrap("contratos activos", err)
	})
	g.Go(func() (err error) {
		stats.Facturacion.Mensual, err = uc.analyticsRepo.Facturado(gctx, desde, hasta)
		return wrap("facturación del mes", err)
	})
	g.Go(func() (err error) {
		stats.Pagos.Mensual, err = uc.analyticsRepo.Cobrado(gctx, desde, hasta)
		return wrap("pagos del mes", err)
	})
	g.Go(func() (err error) {
		alertas, err = uc.analyticsRepo.ConteoAlertas(gctx)
		return wrap("alertas", err)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// ── Construir DTO ──────────────────────────────────────────────────────────
	stats.Banos = dto.BanosStatsDTO{
		Total:       banos.Total,
		Disponibles: banos.Disponibles,
		Alquilados:  banos.Alquilados,
		Vencidos:    vencidos,
	}
	stats.Contratos.Activos = activos
	stats.Facturacion.Mensual = stats.Facturacion.Mensual.Round(2)
	stats.Pagos.Mensual = stats.Pagos.Mensual.Round(2)
	stats.Alertas = dto.AlertasStatsDTO{Total: alertas.Total, Pagos: alertas.Pagos, Contratos: alertas.Contratos}
	stats.CargoAdicionalEstimado = vencimiento.CargoAdicionalEstimado(vencidos)
	stats.Periodo = monthLabel(now)
	return &stats, nil
}

func (uc *DashboardUseCase) observe(result string) {
	if uc.observer != nil {
		uc.observer.CacheResult(result)
	}
}

func wrap(what string, err error) error {
	if err != nil {
		return fmt.Errorf("dashboard: %s: %w", what, err)
	}
	return nil
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Febrero 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
