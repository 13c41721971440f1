package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Banos-api/internal/application/alertas"
	appanalytics "github.com/jhoicas/Banos-api/internal/application/analytics"
	"github.com/jhoicas/Banos-api/internal/application/dto"
	"github.com/jhoicas/Banos-api/internal/application/seed"
	"github.com/jhoicas/Banos-api/internal/application/usecase"
	"github.com/jhoicas/Banos-api/internal/domain/entity"
	"github.com/jhoicas/Banos-api/internal/infrastructure/metrics"
	apphttp "github.com/jhoicas/Banos-api/internal/interfaces/http"
	"github.com/jhoicas/Banos-api/internal/testutil/memstore"
	"github.com/jhoicas/Banos-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func ahora() time.Time {
	return time.Date(2026, time.May, 19, 12, 0, 0, 0, time.FixedZone("ART", -3*60*60))
}

type testApp struct {
	app *fiber.App
	st  *memstore.Store
}

// buildTestApp arma la API completa sobre el store en memoria, con los mismos
// middlewares que cmd/api.
func buildTestApp(t *testing.T, conSeed bool) testApp {
	t.Helper()
	st := memstore.New()
	log := logger.Nop()
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	deps := apphttp.RouterDeps{
		ClienteUC: usecase.NewClienteUseCase(st.Clientes(), st.Contratos(), st.Facturas(), st.Tx(), ahora),
		BanoUC:    usecase.NewBanoUseCase(st.Banos(), ahora),
		ContratoUC: usecase.NewContratoUseCase(usecase.ContratoDeps{
			Contratos: st.Contratos(), Asignaciones: st.Asignaciones(), Clientes: st.Clientes(),
			Facturas: st.Facturas(), Remitos: st.Remitos(), Tx: st.Tx(), Log: log, Now: ahora,
		}),
		FacturaUC: usecase.NewFacturaUseCase(st.Facturas(), st.Clientes(), st.Contratos(), st.Remitos(), ahora),
		RemitoUC:  usecase.NewRemitoUseCase(st.Remitos(), st.Clientes(), st.Contratos(), ahora),
		PagoUC: usecase.NewPagoUseCase(usecase.PagoDeps{
			Pagos: st.Pagos(), Clientes: st.Clientes(), Facturas: st.Facturas(), Remitos: st.Remitos(),
			Tx: st.Tx(), Log: log, Now: ahora,
		}),
		CuentaUC: usecase.NewCuentaUseCase(st.Analytics(), ahora),
		AlertasUC: alertas.NewUseCase(alertas.Deps{
			Alertas: st.Alertas(), Contratos: st.Contratos(), Facturas: st.Facturas(), Recorder: m, Log: log, Now: ahora,
		}),
		DashboardUC: appanalytics.NewDashboardUseCase(st.Analytics(), nil, m, log, ahora),
		Gatherer:    reg,
	}
	if conSeed {
		deps.SeedUC = seed.NewUseCase(st.Tx(), log, ahora)
	}

	app := fiber.New()
	app.Use(apphttp.RequestID())
	app.Use(apphttp.AccessLog(log))
	app.Use(apphttp.Metrics(m))
	app.Get("/health", apphttp.Health("banos-api", nil))
	apphttp.Router(app, deps)
	return testApp{app: app, st: st}
}

func (ta testApp) do(t *testing.T, method, path string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := ta.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestClientes_CRUD(t *testing.T) {
	ta := buildTestApp(t, false)

	resp := ta.do(t, http.MethodPost, "/api/clientes", dto.CreateClienteRequest{Nombre: "Constructora ABC", CUIT: "30-71234567-0"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	creado := decode[dto.ClienteResponse](t, resp)
	assert.NotZero(t, creado.ID)

	resp = ta.do(t, http.MethodGet, "/api/clientes?query=abc", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, decode[[]dto.ClienteResponse](t, resp), 1)

	resp = ta.do(t, http.MethodGet, "/api/clientes/recientes", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode, "la ruta estática no debe caer en /:id")

	path := "/api/clientes/" + jsonNumber(creado.ID)
	resp = ta.do(t, http.MethodGet, path, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	det := decode[dto.ClienteDetalleResponse](t, resp)
	assert.Equal(t, "Constructora ABC", det.Nombre)
	assert.NotNil(t, det.Contratos)

	resp = ta.do(t, http.MethodDelete, path, nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp = ta.do(t, http.MethodGet, path, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decode[dto.ErrorResponse](t, resp).Code)
}

func TestErrores_MapeoDeStatus(t *testing.T) {
	ta := buildTestApp(t, false)

	cases := []struct {
		name   string
		method string
		path   string
		body   any
		status int
		code   string
	}{
		{"validación", http.MethodPost, "/api/clientes", dto.CreateClienteRequest{Nombre: " "}, fiber.StatusBadRequest, "VALIDATION"},
		{"id no numérico", http.MethodGet, "/api/clientes/abc", nil, fiber.StatusBadRequest, "MISSING_ID"},
		{"no existe", http.MethodGet, "/api/banos/B404", nil, fiber.StatusNotFound, "NOT_FOUND"},
		{"filtro inválido", http.MethodGet, "/api/alertas?resuelta=quizas", nil, fiber.StatusBadRequest, "VALIDATION"},
		{"resolver sin id", http.MethodPost, "/api/alertas/resolver", map[string]any{}, fiber.StatusBadRequest, "MISSING_ID"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := ta.do(t, tc.method, tc.path, tc.body)
			assert.Equal(t, tc.status, resp.StatusCode)
			assert.Equal(t, tc.code, decode[dto.ErrorResponse](t, resp).Code)
		})
	}

	t.Run("cuerpo inválido", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/clientes", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		resp, err := ta.app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_BODY", decode[dto.ErrorResponse](t, resp).Code)
	})
}

func TestContratos_BanoNoDisponibleDevuelve409(t *testing.T) {
	ta := buildTestApp(t, false)
	ctx := context.Background()
	cl := &entity.Cliente{Nombre: "Eventos del Sur"}
	require.NoError(t, ta.st.Clientes().Create(ctx, cl))
	require.NoError(t, ta.st.Banos().Create(ctx, &entity.Bano{ID: "B001", Estado: entity.BanoMantenimiento, Ubicacion: entity.UbicacionDeposito}))
	require.NoError(t, ta.st.Banos().Create(ctx, &entity.Bano{ID: "B002", Estado: entity.BanoDisponible, Ubicacion: entity.UbicacionDeposito}))

	body := map[string]any{
		"contrato": map[string]any{
			"cliente_id": cl.ID, "fecha_inicio": "2026-05-01", "fecha_fin": "2026-06-30",
			"valor_diario": 1500, "direccion_entrega": "Obra Norte",
		},
		"banos": []string{"B001"},
	}
	resp := ta.do(t, http.MethodPost, "/api/contratos", body)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "CONFLICT", decode[dto.ErrorResponse](t, resp).Code)

	body["banos"] = []string{"B002"}
	resp = ta.do(t, http.MethodPost, "/api/contratos", body)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	creado := decode[dto.ContratoCreadoResponse](t, resp)
	assert.Equal(t, []string{"B002"}, creado.Banos)

	resp = ta.do(t, http.MethodGet, "/api/contratos/resumen", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, decode[dto.ContratosResumenDTO](t, resp).Activos)

	resp = ta.do(t, http.MethodGet, "/api/inventario", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	inv := decode[dto.InventarioResponse](t, resp)
	assert.Equal(t, 1, inv.Totales.Alquilados)
}

func TestBanos_IDDeRutaSinDistinguirMayusculas(t *testing.T) {
	ta := buildTestApp(t, false)
	require.NoError(t, ta.st.Banos().Create(context.Background(), &entity.Bano{ID: "B001", Estado: entity.BanoDisponible, Ubicacion: entity.UbicacionDeposito}))

	resp := ta.do(t, http.MethodGet, "/api/banos/b001", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "B001", decode[dto.BanoResponse](t, resp).ID)

	resp = ta.do(t, http.MethodDelete, "/api/banos/b001", nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp = ta.do(t, http.MethodGet, "/api/banos/B001", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestAlertas_ResueltaPorDefectoFalse(t *testing.T) {
	ta := buildTestApp(t, false)
	ctx := context.Background()
	cl := &entity.Cliente{Nombre: "Constructora ABC"}
	require.NoError(t, ta.st.Clientes().Create(ctx, cl))

	for _, msg := range []string{"primera", "segunda"} {
		resp := ta.do(t, http.MethodPost, "/api/alertas", dto.CreateAlertaRequest{Tipo: entity.AlertaPago, ClienteID: cl.ID, Mensaje: msg})
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
		if msg == "primera" {
			a := decode[dto.AlertaResponse](t, resp)
			resp = ta.do(t, http.MethodPost, "/api/alertas/resolver", dto.ResolverAlertaRequest{ID: a.ID})
			require.Equal(t, fiber.StatusOK, resp.StatusCode)
			assert.Equal(t, map[string]any{"id": float64(a.ID), "resuelta": true}, decode[map[string]any](t, resp))
		}
	}

	resp := ta.do(t, http.MethodGet, "/api/alertas", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, decode[dto.AlertasListResponse](t, resp).Total)

	resp = ta.do(t, http.MethodGet, "/api/alertas?resuelta=todas", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 2, decode[dto.AlertasListResponse](t, resp).Total)
}

func TestSeed_SoloSiEstaHabilitado(t *testing.T) {
	sin := buildTestApp(t, false)
	resp := sin.do(t, http.MethodPost, "/api/seed", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	con := buildTestApp(t, true)
	resp = con.do(t, http.MethodPost, "/api/seed/datos-completos", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	out := decode[dto.SeedResponse](t, resp)
	assert.Equal(t, 8, out.Clientes)

	resp = con.do(t, http.MethodGet, "/api/dashboard/stats", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	stats := decode[dto.DashboardStatsDTO](t, resp)
	assert.Equal(t, 100, stats.Banos.Total)
	assert.Equal(t, "Mayo 2026", stats.Periodo)
}

func TestMiddlewares_RequestIDYMetricas(t *testing.T) {
	ta := buildTestApp(t, false)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(apphttp.HeaderRequestID, "req-123")
	resp, err := ta.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "req-123", resp.Header.Get(apphttp.HeaderRequestID))

	resp = ta.do(t, http.MethodGet, "/api/clientes/77", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(apphttp.HeaderRequestID), "se genera un id si no viene")

	resp = ta.do(t, http.MethodGet, "/metrics", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `banos_http_requests_total{method="GET",route="/api/clientes/:id",status="404"} 1`)
}

type pingerFallido struct{}

func (pingerFallido) Ping(context.Context) error { return errors.New("sin conexión") }

func TestHealth_BaseCaida(t *testing.T) {
	app := fiber.New()
	app.Get("/health", apphttp.Health("banos-api", pingerFallido{}))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
	body := decode[map[string]any](t, resp)
	assert.Equal(t, "unavailable", body["status"])
}

func jsonNumber(n int64) string {
	raw, _ := json.Marshal(n)
	return string(raw)
}
