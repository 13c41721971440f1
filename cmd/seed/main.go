// seed aplica las migraciones y carga un juego de datos de ejemplo, vaciando antes todas las tablas.
//
// Uso: go run ./cmd/seed [--completo]
package main

import (
	"context"
	_ "time/tzdata"

	"github.com/spf13/pflag"

	"github.com/jhoicas/Banos-api/internal/application/dto"
	"github.com/jhoicas/Banos-api/internal/application/seed"
	"github.com/jhoicas/Banos-api/internal/domain/vencimiento"
	"github.com/jhoicas/Banos-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Banos-api/pkg/config"
	"github.com/jhoicas/Banos-api/pkg/logger"
)

func main() {
	completo := pflag.Bool("completo", false, "carga el juego completo (100 baños, fechas relativas a hoy)")
	pflag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: cfg.App.Name + "-seed"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if _, err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	uc := seed.NewUseCase(postgres.NewTxRunner(pool), log, vencimiento.RelojEn(cfg.App.Location()))
	var out *dto.SeedResponse
	if *completo {
		out, err = uc.Completo(ctx)
	} else {
		out, err = uc.Basico(ctx)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("carga de datos de ejemplo")
	}
	log.Info().
		Int("facturas", out.Facturas).
		Int("remitos", out.Remitos).
		Int("pagos", out.Pagos).
		Int("alertas", out.Alertas).
		Msg(out.Message)
}
