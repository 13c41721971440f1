package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/Banos-api/internal/application/alertas"
	appanalytics "github.com/jhoicas/Banos-api/internal/application/analytics"
	"github.com/jhoicas/Banos-api/internal/application/seed"
	"github.com/jhoicas/Banos-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ClienteUC   *usecase.ClienteUseCase
	BanoUC      *usecase.BanoUseCase
	ContratoUC  *usecase.ContratoUseCase
	FacturaUC   *usecase.FacturaUseCase
	RemitoUC    *usecase.RemitoUseCase
	PagoUC      *usecase.PagoUseCase
	CuentaUC    *usecase.CuentaUseCase
	AlertasUC   *alertas.UseCase
	DashboardUC *appanalytics.DashboardUseCase
	// SeedUC nil deja sin registrar /api/seed.
	SeedUC *seed.UseCase
	// Gatherer nil deja sin registrar /metrics.
	Gatherer prometheus.Gatherer
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	api := app.Group("/api")

	clientes := api.Group("/clientes")
	clienteHandler := NewClienteHandler(deps.ClienteUC)
	clientes.Get("/", clienteHandler.List)
	clientes.Get("/recientes", clienteHandler.Recientes)
	clientes.Post("/", clienteHandler.Create)
	clientes.Get("/:id", clienteHandler.GetByID)
	clientes.Put("/:id", clienteHandler.Update)
	clientes.Delete("/:id", clienteHandler.Delete)

	banos := api.Group("/banos")
	banoHandler := NewBanoHandler(deps.BanoUC)
	banos.Get("/", banoHandler.List)
	banos.Post("/", banoHandler.Create)
	banos.Get("/:id", banoHandler.GetByID)
	banos.Put("/:id", banoHandler.Update)
	banos.Delete("/:id", banoHandler.Delete)
	api.Get("/inventario", banoHandler.Inventario)

	contratos := api.Group("/contratos")
	contratoHandler := NewContratoHandler(deps.ContratoUC)
	contratos.Get("/", contratoHandler.List)
	contratos.Get("/resumen", contratoHandler.Resumen)
	contratos.Post("/", contratoHandler.Create)
	contratos.Get("/:id", contratoHandler.GetByID)
	contratos.Put("/:id", contratoHandler.Update)
	contratos.Delete("/:id", contratoHandler.Delete)

	facturas := api.Group("/facturas")
	facturaHandler := NewFacturaHandler(deps.FacturaUC)
	facturas.Get("/", facturaHandler.List)
	facturas.Get("/por-cliente", facturaHandler.PorCliente)
	facturas.Post("/", facturaHandler.Create)
	facturas.Get("/:id", facturaHandler.GetByID)
	facturas.Put("/:id", facturaHandler.Update)
	facturas.Delete("/:id", facturaHandler.Delete)

	remitos := api.Group("/remitos")
	remitoHandler := NewRemitoHandler(deps.RemitoUC)
	remitos.Get("/", remitoHandler.List)
	remitos.Post("/", remitoHandler.Create)
	remitos.Get("/:id", remitoHandler.GetByID)
	remitos.Put("/:id", remitoHandler.Update)
	remitos.Delete("/:id", remitoHandler.Delete)

	pagos := api.Group("/pagos")
	pagoHandler := NewPagoHandler(deps.PagoUC, deps.CuentaUC)
	pagos.Get("/", pagoHandler.List)
	pagos.Post("/", pagoHandler.Create)
	pagos.Get("/:id", pagoHandler.GetByID)
	pagos.Put("/:id", pagoHandler.Update)
	pagos.Delete("/:id", pagoHandler.Delete)
	api.Get("/cuentas", pagoHandler.Cuentas)

	alertasGroup := api.Group("/alertas")
	alertaHandler := NewAlertaHandler(deps.AlertasUC)
	alertasGroup.Get("/", alertaHandler.List)
	alertasGroup.Post("/", alertaHandler.Create)
	alertasGroup.Post("/resolver", alertaHandler.Resolver)
	alertasGroup.Post("/generar", alertaHandler.Generar)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard/stats", dashboardHandler.GetStats)

	if deps.SeedUC != nil {
		seedHandler := NewSeedHandler(deps.SeedUC)
		api.Post("/seed", seedHandler.Basico)
		api.Post("/seed/datos-completos", seedHandler.Completo)
	}
}
