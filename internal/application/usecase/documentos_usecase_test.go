package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Banos-api/internal/application/dto"
	"github.com/jhoicas/Banos-api/internal/application/usecase"
	"github.com/jhoicas/Banos-api/internal/domain"
	"github.com/jhoicas/Banos-api/internal/domain/entity"
	"github.com/jhoicas/Banos-api/internal/domain/repository"
	"github.com/jhoicas/Banos-api/internal/testutil/memstore"
)

func newFacturaUC(st *memstore.Store) *usecase.FacturaUseCase {
	return usecase.NewFacturaUseCase(st.Facturas(), st.Clientes(), st.Contratos(), st.Remitos(), ahora)
}

func newRemitoUC(st *memstore.Store) *usecase.RemitoUseCase {
	return usecase.NewRemitoUseCase(st.Remitos(), st.Clientes(), st.Contratos(), ahora)
}

func TestFacturaUseCase_Create(t *testing.T) {
	st := memstore.New()
	cl := nuevoCliente(t, st, "Constructora ABC")
	uc := newFacturaUC(st)
	ctx := context.Background()

	out, err := uc.Create(ctx, dto.CreateFacturaRequest{
		ClienteID: cl.ID, Fecha: "2026-04-10", Monto: decimal.NewFromInt(87000),
	})
	require.NoError(t, err)
	assert.Regexp(t, `^F-2026-[0-9A-F]{8}$`, out.ID)
	assert.Equal(t, entity.FacturaPendiente, out.Estado)
	assert.Equal(t, "2026-05-10", out.Vencimiento)
	assert.Equal(t, -9, out.DiasParaVencer)
	assert.True(t, out.Vencida)

	_, err = uc.Create(ctx, dto.CreateFacturaRequest{
		ID: out.ID, ClienteID: cl.ID, Fecha: "2026-04-10", Monto: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestFacturaUseCase_Create_Errores(t *testing.T) {
	st := memstore.New()
	cl := nuevoCliente(t, st, "Constructora ABC")
	uc := newFacturaUC(st)
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateFacturaRequest{ClienteID: cl.ID, Fecha: "2026-04-10", Monto: decimal.Zero})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, dto.CreateFacturaRequest{ClienteID: cl.ID, Fecha: "2026-04-10", Monto: decimal.NewFromInt(1), Estado: "Perdida"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, dto.CreateFacturaRequest{ClienteID: 404, Fecha: "2026-04-10", Monto: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Create(ctx, dto.CreateFacturaRequest{ClienteID: cl.ID, ContratoID: "C-0000-000", Fecha: "2026-04-10", Monto: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestFacturaUseCase_UpdateYDetalle(t *testing.T) {
	st := memstore.New()
	cl := nuevoCliente(t, st, "Constructora ABC")
	nuevosBanos(t, st, entity.BanoDisponible, "B001")
	_, err := newContratoUC(st).Create(context.Background(), contratoValido(cl.ID, "B001"))
	require.NoError(t, err)
	nuevaFactura(t, st, "F-2026-001", cl.ID, dia(2026, time.May, 2), 34500, entity.FacturaPendiente)
	uc := newFacturaUC(st)
	ctx := context.Background()

	contrato := "C-2026-001"
	pagada := entity.FacturaPagada
	out, err := uc.Update(ctx, "F-2026-001", dto.UpdateFacturaRequest{ContratoID: &contrato, Estado: &pagada})
	require.NoError(t, err)
	assert.Equal(t, entity.FacturaPagada, out.Estado)
	assert.False(t, out.Vencida)

	det, err := uc.GetByID(ctx, "F-2026-001")
	require.NoError(t, err)
	assert.Equal(t, "Constructora ABC", det.Cliente.Nombre)
	require.NotNil(t, det.Contrato)
	assert.Equal(t, "C-2026-001", det.Contrato.ID)

	otro := int64(404)
	_, err = uc.Update(ctx, "F-2026-001", dto.UpdateFacturaRequest{ClienteID: &otro})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.GetByID(ctx, "F-404")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFacturaUseCase_ListYPorCliente(t *testing.T) {
	st := memstore.New()
	zeta := nuevoCliente(t, st, "Zeta Eventos")
	abc := nuevoCliente(t, st, "Constructora ABC")
	nuevoCliente(t, st, "Sin Documentos SA")
	nuevaFactura(t, st, "F-1", zeta.ID, dia(2026, time.May, 1), 100, entity.FacturaPendiente)
	nuevaFactura(t, st, "F-2", abc.ID, dia(2026, time.May, 3), 200, entity.FacturaPagada)
	require.NoError(t, st.Remitos().Create(context.Background(), &entity.Remito{
		ID: "R-1", ClienteID: abc.ID, Fecha: dia(2026, time.May, 3), Tipo: entity.RemitoEntrega, Cantidad: 2,
	}))
	uc := newFacturaUC(st)
	ctx := context.Background()

	pendientes, err := uc.List(ctx, repository.FacturaFiltro{Estado: entity.FacturaPendiente})
	require.NoError(t, err)
	require.Len(t, pendientes, 1)
	assert.Equal(t, "F-1", pendientes[0].ID)
	assert.Equal(t, "Zeta Eventos", pendientes[0].Cliente.Nombre)

	_, err = uc.List(ctx, repository.FacturaFiltro{Estado: "Perdida"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	grupos, err := uc.PorCliente(ctx)
	require.NoError(t, err)
	require.Len(t, grupos, 2, "solo clientes con documentos")
	assert.Equal(t, "Constructora ABC", grupos[0].Nombre)
	assert.Len(t, grupos[0].Facturas, 1)
	assert.Len(t, grupos[0].Remitos, 1)
	assert.Equal(t, "Zeta Eventos", grupos[1].Nombre)
	assert.Empty(t, grupos[1].Remitos)
	assert.NotNil(t, grupos[1].Remitos)
}

func TestRemitoUseCase_CRUD(t *testing.T) {
	st := memstore.New()
	cl := nuevoCliente(t, st, "Constructora ABC")
	uc := newRemitoUC(st)
	ctx := context.Background()

	out, err := uc.Create(ctx, dto.CreateRemitoRequest{
		ClienteID: cl.ID, Fecha: "2026-05-02", Tipo: entity.RemitoEntrega, Cantidad: 3,
	})
	require.NoError(t, err)
	assert.Regexp(t, `^R-2026-[0-9A-F]{8}$`, out.ID)

	cant := 5
	retiro := entity.RemitoRetiro
	upd, err := uc.Update(ctx, out.ID, dto.UpdateRemitoRequest{Cantidad: &cant, Tipo: &retiro})
	require.NoError(t, err)
	assert.Equal(t, 5, upd.Cantidad)
	assert.Equal(t, entity.RemitoRetiro, upd.Tipo)

	list, err := uc.List(ctx, repository.RemitoFiltro{Tipo: entity.RemitoRetiro})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Constructora ABC", list[0].Cliente.Nombre)

	det, err := uc.GetByID(ctx, out.ID)
	require.NoError(t, err)
	assert.Nil(t, det.Contrato)

	require.NoError(t, uc.Delete(ctx, out.ID))
	assert.ErrorIs(t, uc.Delete(ctx, out.ID), domain.ErrNotFound)
}

func TestRemitoUseCase_Create_Validacion(t *testing.T) {
	st := memstore.New()
	cl := nuevoCliente(t, st, "Constructora ABC")
	uc := newRemitoUC(st)
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateRemitoRequest{ClienteID: cl.ID, Fecha: "2026-05-02", Tipo: "Venta", Cantidad: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, dto.CreateRemitoRequest{ClienteID: cl.ID, Fecha: "2026-05-02", Tipo: entity.RemitoRetiro, Cantidad: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, dto.CreateRemitoRequest{ClienteID: 404, Fecha: "2026-05-02", Tipo: entity.RemitoRetiro, Cantidad: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
