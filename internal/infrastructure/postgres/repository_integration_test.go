//go:build integration

package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Banos-api/internal/application/alertas"
	"github.com/jhoicas/Banos-api/internal/application/dto"
	"github.com/jhoicas/Banos-api/internal/application/seed"
	"github.com/jhoicas/Banos-api/internal/application/usecase"
	"github.com/jhoicas/Banos-api/internal/domain"
	"github.com/jhoicas/Banos-api/internal/domain/entity"
	"github.com/jhoicas/Banos-api/internal/domain/repository"
	"github.com/jhoicas/Banos-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Banos-api/internal/testutil/containers"
	"github.com/jhoicas/Banos-api/internal/testutil/memstore"
	"github.com/jhoicas/Banos-api/pkg/logger"
)

func ahora() time.Time {
	return time.Date(2026, time.May, 19, 12, 0, 0, 0, time.FixedZone("ART", -3*60*60))
}

func TestPostgres_Integracion(t *testing.T) {
	pool := containers.Postgres(t)
	ctx := context.Background()

	applied, err := postgres.Migrate(ctx, pool)
	require.NoError(t, err)
	assert.Empty(t, applied, "las migraciones ya aplicadas no se repiten")

	tx := postgres.NewTxRunner(pool)
	clientes := postgres.NewClienteRepository(pool)
	banos := postgres.NewBanoRepository(pool)
	contratos := postgres.NewContratoRepository(pool)
	facturas := postgres.NewFacturaRepository(pool)
	analytics := postgres.NewAnalyticsRepository(pool)

	out, err := seed.NewUseCase(tx, logger.Nop(), ahora).Completo(ctx)
	require.NoError(t, err)
	require.Equal(t, 8, out.Clientes)

	t.Run("seed completo", func(t *testing.T) {
		conteo, err := analytics.ConteoBanos(ctx)
		require.NoError(t, err)
		assert.Equal(t, repository.ConteoBanos{Total: 100, Disponibles: 50, Alquilados: 50}, conteo)

		alquilados, err := banos.ListAlquilados(ctx)
		require.NoError(t, err)
		assert.Len(t, alquilados, 50)

		conteoAlertas, err := analytics.ConteoAlertas(ctx)
		require.NoError(t, err)
		assert.Equal(t, repository.ConteoAlertas{Total: 6, Pagos: 4, Contratos: 2}, conteoAlertas)

		cuentas, err := analytics.Cuentas(ctx, "")
		require.NoError(t, err)
		require.Len(t, cuentas, 8)
		assert.True(t, cuentas[0].Deuda.Equal(decimal.NewFromInt(45000)), "mayor deuda primero: %s", cuentas[0].Deuda)
	})

	// Mismo seed en memoria: los listados filtrados de Postgres deben coincidir.
	mem := memstore.New()
	_, err = seed.NewUseCase(mem.Tx(), logger.Nop(), ahora).Completo(ctx)
	require.NoError(t, err)

	t.Run("listados filtrados", func(t *testing.T) {
		remitos := postgres.NewRemitoRepository(pool)
		pagos := postgres.NewPagoRepository(pool)
		alertasRepo := postgres.NewAlertaRepository(pool)

		for _, f := range []repository.FacturaFiltro{
			{Estado: entity.FacturaPendiente},
			{Query: "eventos"},
			{Query: "f-2026-00"},
		} {
			pg, err := facturas.List(ctx, f)
			require.NoError(t, err)
			mm, err := mem.Facturas().List(ctx, f)
			require.NoError(t, err)
			require.NotEmpty(t, mm, "%+v", f)
			assert.ElementsMatch(t, idsFacturas(mm), idsFacturas(pg), "%+v", f)
		}

		for _, f := range []repository.RemitoFiltro{
			{Tipo: entity.RemitoEntrega},
			{Query: "constructora"},
		} {
			pg, err := remitos.List(ctx, f)
			require.NoError(t, err)
			mm, err := mem.Remitos().List(ctx, f)
			require.NoError(t, err)
			require.NotEmpty(t, mm, "%+v", f)
			assert.ElementsMatch(t, idsRemitos(mm), idsRemitos(pg), "%+v", f)
		}

		for _, f := range []repository.PagoFiltro{{Query: "TR-"}, {Query: "eventos"}} {
			pg, err := pagos.List(ctx, f)
			require.NoError(t, err)
			mm, err := mem.Pagos().List(ctx, f)
			require.NoError(t, err)
			require.NotEmpty(t, mm, "%+v", f)
			assert.ElementsMatch(t, comprobantes(mm), comprobantes(pg), "%+v", f)
		}

		pendientes := false
		for _, f := range []repository.AlertaFiltro{
			{Tipo: entity.AlertaContrato},
			{Prioridad: entity.PrioridadAlta},
			{Resuelta: &pendientes},
		} {
			pg, err := alertasRepo.List(ctx, f)
			require.NoError(t, err)
			mm, err := mem.Alertas().List(ctx, f)
			require.NoError(t, err)
			require.NotEmpty(t, mm, "%+v", f)
			assert.ElementsMatch(t, clavesAlertas(mm), clavesAlertas(pg), "%+v", f)
		}
	})

	t.Run("historial de baño", func(t *testing.T) {
		pg, err := banos.Historial(ctx, "B001")
		require.NoError(t, err)
		mm, err := mem.Banos().Historial(ctx, "B001")
		require.NoError(t, err)
		require.NotEmpty(t, pg)
		require.Len(t, pg, len(mm))
		for i := range mm {
			assert.Equal(t, mm[i].ContratoID, pg[i].ContratoID)
			assert.True(t, mm[i].FechaInicio.Equal(pg[i].FechaInicio), "fila %d", i)
			assert.Equal(t, mm[i].ClienteNombre, pg[i].ClienteNombre)
		}
		for i := 1; i < len(pg); i++ {
			assert.False(t, pg[i].FechaInicio.After(pg[i-1].FechaInicio), "más reciente primero")
		}
	})

	t.Run("comodines literales en búsquedas", func(t *testing.T) {
		for _, q := range []string{"%", "_", `\`} {
			cl, err := clientes.List(ctx, q)
			require.NoError(t, err)
			assert.Empty(t, cl, "clientes %q", q)

			fs, err := facturas.List(ctx, repository.FacturaFiltro{Query: q})
			require.NoError(t, err)
			assert.Empty(t, fs, "facturas %q", q)

			bs, err := banos.List(ctx, repository.BanoFiltro{Query: q})
			require.NoError(t, err)
			assert.Empty(t, bs, "baños %q", q)
		}
	})

	t.Run("generar alertas es idempotente", func(t *testing.T) {
		pgUC := alertas.NewUseCase(alertas.Deps{
			Alertas:   postgres.NewAlertaRepository(pool),
			Contratos: contratos,
			Facturas:  facturas,
			Log:       logger.Nop(),
			Now:       ahora,
		})
		memUC := alertas.NewUseCase(alertas.Deps{
			Alertas:   mem.Alertas(),
			Contratos: mem.Contratos(),
			Facturas:  mem.Facturas(),
			Log:       logger.Nop(),
			Now:       ahora,
		})

		primera, err := pgUC.Generar(ctx)
		require.NoError(t, err)
		esperada, err := memUC.Generar(ctx)
		require.NoError(t, err)
		assert.Equal(t, esperada.Total, primera.Total)
		assert.ElementsMatch(t, clavesGeneradas(esperada.AlertasGeneradas), clavesGeneradas(primera.AlertasGeneradas))

		antes, err := analytics.ConteoAlertas(ctx)
		require.NoError(t, err)

		segunda, err := pgUC.Generar(ctx)
		require.NoError(t, err)
		assert.Zero(t, segunda.Total)
		assert.Empty(t, segunda.AlertasGeneradas)

		despues, err := analytics.ConteoAlertas(ctx)
		require.NoError(t, err)
		assert.Equal(t, antes, despues)
	})

	t.Run("errores de escritura", func(t *testing.T) {
		err := banos.Create(ctx, &entity.Bano{ID: "B001", Estado: entity.BanoDisponible, Ubicacion: entity.UbicacionDeposito})
		assert.ErrorIs(t, err, domain.ErrDuplicate)

		lista, err := clientes.List(ctx, "Constructora ABC")
		require.NoError(t, err)
		require.Len(t, lista, 1)
		err = facturas.Create(ctx, &entity.Factura{
			ID: "F-X-1", ClienteID: lista[0].ID, ContratoID: "C-0000-000",
			Fecha: time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC), Monto: decimal.NewFromInt(1), Estado: entity.FacturaPendiente,
		})
		assert.ErrorIs(t, err, domain.ErrConflict)

		assert.ErrorIs(t, banos.Delete(ctx, "B999"), domain.ErrNotFound)
	})

	t.Run("contrato en transacción", func(t *testing.T) {
		lista, err := clientes.List(ctx, "Eventos")
		require.NoError(t, err)
		require.NotEmpty(t, lista)

		uc := usecase.NewContratoUseCase(usecase.ContratoDeps{
			Contratos:    contratos,
			Asignaciones: postgres.NewAsignacionRepository(pool),
			Clientes:     clientes,
			Facturas:     facturas,
			Remitos:      postgres.NewRemitoRepository(pool),
			Tx:           tx,
			Log:          logger.Nop(),
			Now:          ahora,
		})
		in := dto.CreateContratoRequest{
			Contrato: dto.ContratoInput{
				ID: "C-2026-900", ClienteID: lista[0].ID, FechaInicio: "2026-05-19", FechaFin: "2026-06-19",
				ValorDiario: decimal.NewFromInt(1500), DireccionEntrega: "Parque Norte",
			},
			Banos: []string{"B060", "B001"},
		}
		_, err = uc.Create(ctx, in)
		require.ErrorIs(t, err, domain.ErrUnavailable)
		c, err := contratos.GetByID(ctx, "C-2026-900")
		require.NoError(t, err)
		assert.Nil(t, c, "el rollback no deja el contrato")

		in.Banos = []string{"B060", "B061"}
		_, err = uc.Create(ctx, in)
		require.NoError(t, err)
		b, err := banos.GetByID(ctx, "B061")
		require.NoError(t, err)
		assert.Equal(t, entity.BanoAlquilado, b.Estado)

		require.NoError(t, uc.Delete(ctx, "C-2026-900"))
		b, err = banos.GetByID(ctx, "B061")
		require.NoError(t, err)
		assert.Equal(t, entity.BanoDisponible, b.Estado)
	})

	t.Run("pago actualiza factura", func(t *testing.T) {
		uc := usecase.NewPagoUseCase(usecase.PagoDeps{
			Pagos:    postgres.NewPagoRepository(pool),
			Clientes: clientes,
			Facturas: facturas,
			Remitos:  postgres.NewRemitoRepository(pool),
			Tx:       tx,
			Log:      logger.Nop(),
			Now:      ahora,
		})
		f, err := facturas.GetByID(ctx, "F-2026-009")
		require.NoError(t, err)
		require.Equal(t, entity.FacturaPendiente, f.Estado)

		p, err := uc.Create(ctx, dto.CreatePagoRequest{
			Pago: dto.PagoInput{
				ClienteID: f.ClienteID, FacturaID: f.ID, Fecha: "2026-05-19",
				Monto: f.Monto, MetodoPago: "efectivo",
			},
			ActualizarFactura: true,
		})
		require.NoError(t, err)
		f, err = facturas.GetByID(ctx, "F-2026-009")
		require.NoError(t, err)
		assert.Equal(t, entity.FacturaPagada, f.Estado)

		require.NoError(t, uc.Delete(ctx, p.ID))
		f, err = facturas.GetByID(ctx, "F-2026-009")
		require.NoError(t, err)
		assert.Equal(t, entity.FacturaPendiente, f.Estado)
	})

	t.Run("baja de cliente libera sus baños", func(t *testing.T) {
		alquilados, err := banos.ListAlquilados(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, alquilados)
		clienteID := alquilados[0].ClienteID
		suyos := map[string]bool{}
		for _, a := range alquilados {
			if a.ClienteID == clienteID {
				suyos[a.BanoID] = true
			}
		}
		antes, err := analytics.ConteoBanos(ctx)
		require.NoError(t, err)

		uc := usecase.NewClienteUseCase(clientes, contratos, facturas, tx, ahora)
		require.NoError(t, uc.Delete(ctx, clienteID))

		for id := range suyos {
			b, err := banos.GetByID(ctx, id)
			require.NoError(t, err)
			assert.Equal(t, entity.BanoDisponible, b.Estado, id)
			assert.Equal(t, entity.UbicacionDeposito, b.Ubicacion, id)
		}
		despues, err := analytics.ConteoBanos(ctx)
		require.NoError(t, err)
		assert.Equal(t, antes.Alquilados-len(suyos), despues.Alquilados)
		assert.Equal(t, antes.Total, despues.Total)

		assert.ErrorIs(t, uc.Delete(ctx, clienteID), domain.ErrNotFound)
	})
}

func idsFacturas(fs []repository.FacturaConCliente) []string {
	out := make([]string, 0, len(fs))
	for _, f := range fs {
		out = append(out, f.ID)
	}
	return out
}

func idsRemitos(rs []repository.RemitoConCliente) []string {
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.ID)
	}
	return out
}

func comprobantes(ps []repository.PagoConCliente) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.Comprobante)
	}
	return out
}

// clave de alerta sin el id serial, que difiere entre almacenes.
type claveAlerta struct {
	Tipo, ContratoID, FacturaID, Mensaje string
}

func clavesAlertas(as []repository.AlertaConCliente) []claveAlerta {
	out := make([]claveAlerta, 0, len(as))
	for _, a := range as {
		out = append(out, claveAlerta{a.Tipo, a.ContratoID, a.FacturaID, a.Mensaje})
	}
	return out
}

func clavesGeneradas(as []dto.AlertaResponse) []claveAlerta {
	out := make([]claveAlerta, 0, len(as))
	for _, a := range as {
		out = append(out, claveAlerta{a.Tipo, a.ContratoID, a.FacturaID, a.Mensaje})
	}
	return out
}
