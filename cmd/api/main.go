package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/jhoicas/Banos-api/internal/application/alertas"
	appanalytics "github.com/jhoicas/Banos-api/internal/application/analytics"
	"github.com/jhoicas/Banos-api/internal/application/seed"
	"github.com/jhoicas/Banos-api/internal/application/usecase"
	"github.com/jhoicas/Banos-api/internal/domain/vencimiento"
	"github.com/jhoicas/Banos-api/internal/infrastructure/cache"
	"github.com/jhoicas/Banos-api/internal/infrastructure/metrics"
	"github.com/jhoicas/Banos-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Banos-api/internal/interfaces/http"
	"github.com/jhoicas/Banos-api/pkg/config"
	"github.com/jhoicas/Banos-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("timezone", cfg.App.Timezone).
		Msg("iniciando aplicación")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.App.MigrateOnStart {
		applied, err := postgres.Migrate(ctx, pool)
		if err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		log.Info().Strs("aplicadas", applied).Msg("migraciones al día")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	now := vencimiento.RelojEn(cfg.App.Location())

	clienteRepo := postgres.NewClienteRepository(pool)
	banoRepo := postgres.NewBanoRepository(pool)
	contratoRepo := postgres.NewContratoRepository(pool)
	asignacionRepo := postgres.NewAsignacionRepository(pool)
	facturaRepo := postgres.NewFacturaRepository(pool)
	remitoRepo := postgres.NewRemitoRepository(pool)
	pagoRepo := postgres.NewPagoRepository(pool)
	alertaRepo := postgres.NewAlertaRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	clienteUC := usecase.NewClienteUseCase(clienteRepo, contratoRepo, facturaRepo, txRunner, now)
	banoUC := usecase.NewBanoUseCase(banoRepo, now)
	contratoUC := usecase.NewContratoUseCase(usecase.ContratoDeps{
		Contratos:    contratoRepo,
		Asignaciones: asignacionRepo,
		Clientes:     clienteRepo,
		Facturas:     facturaRepo,
		Remitos:      remitoRepo,
		Tx:           txRunner,
		Log:          log.Component("contratos"),
		Now:          now,
	})
	facturaUC := usecase.NewFacturaUseCase(facturaRepo, clienteRepo, contratoRepo, remitoRepo, now)
	remitoUC := usecase.NewRemitoUseCase(remitoRepo, clienteRepo, contratoRepo, now)
	pagoUC := usecase.NewPagoUseCase(usecase.PagoDeps{
		Pagos:    pagoRepo,
		Clientes: clienteRepo,
		Facturas: facturaRepo,
		Remitos:  remitoRepo,
		Tx:       txRunner,
		Log:      log.Component("pagos"),
		Now:      now,
	})
	cuentaUC := usecase.NewCuentaUseCase(analyticsRepo, now)
	alertasUC := alertas.NewUseCase(alertas.Deps{
		Alertas:   alertaRepo,
		Contratos: contratoRepo,
		Facturas:  facturaRepo,
		Recorder:  m,
		Log:       log.Component("alertas"),
		Now:       now,
	})

	// Redis es opcional: sin REDIS_URL el dashboard consulta siempre la base.
	var statsCache appanalytics.StatsCache
	redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		log.Warn().Err(err).Msg("redis no disponible, dashboard sin cache")
	} else if redisClient != nil {
		defer redisClient.Close()
		statsCache = cache.NewStatsCache(redisClient, cfg.Redis.StatsCacheTTL)
	}
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo, statsCache, m, log.Component("dashboard"), now)

	var seedUC *seed.UseCase
	if cfg.App.SeedEnabled {
		seedUC = seed.NewUseCase(txRunner, log.Component("seed"), now)
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.HTTP.CORSOrigins}))
	app.Use(httpRouter.RequestID())
	app.Use(httpRouter.AccessLog(log.Component("http")))
	app.Use(httpRouter.Metrics(m))

	// Swagger UI: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.HTTP.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.HTTP.SwaggerFile,
			Path:     "docs",
			Title:    "Baños API",
		}))
	}

	app.Get("/health", httpRouter.Health(cfg.App.Name, pool))

	httpRouter.Router(app, httpRouter.RouterDeps{
		ClienteUC:   clienteUC,
		BanoUC:      banoUC,
		ContratoUC:  contratoUC,
		FacturaUC:   facturaUC,
		RemitoUC:    remitoUC,
		PagoUC:      pagoUC,
		CuentaUC:    cuentaUC,
		AlertasUC:   alertasUC,
		DashboardUC: dashboardUC,
		SeedUC:      seedUC,
		Gatherer:    reg,
	})

	go alertasUC.RunPeriodic(ctx, cfg.Alertas.Interval)

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
