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
	"github.com/jhoicas/Banos-api/pkg/logger"
)

func newPagoUC(st *memstore.Store) *usecase.PagoUseCase {
	return usecase.NewPagoUseCase(usecase.PagoDeps{
		Pagos:    st.Pagos(),
		Clientes: st.Clientes(),
		Facturas: st.Facturas(),
		Remitos:  st.Remitos(),
		Tx:       st.Tx(),
		Log:      logger.Nop(),
		Now:      ahora,
	})
}

func estadoFactura(t *testing.T, st *memstore.Store, id string) string {
	t.Helper()
	f, err := st.Facturas().GetByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, f)
	return f.Estado
}

func TestPagoUseCase_Create_ActualizaFactura(t *testing.T) {
	st := memstore.New()
	cli := nuevoCliente(t, st, "Constructora ABC")
	nuevaFactura(t, st, "F-2026-001", cli.ID, dia(2026, time.May, 2), 87000, entity.FacturaPendiente)
	uc := newPagoUC(st)

	out, err := uc.Create(context.Background(), dto.CreatePagoRequest{
		Pago: dto.PagoInput{
			ClienteID:   cli.ID,
			FacturaID:   "F-2026-001",
			Fecha:       "2026-05-18",
			Monto:       decimal.NewFromInt(87000),
			MetodoPago:  "transferencia",
			Comprobante: " TR-2026-001 ",
		},
		ActualizarFactura: true,
	})
	require.NoError(t, err)
	assert.NotZero(t, out.ID)
	assert.Equal(t, entity.MetodoTransferencia, out.MetodoPago)
	assert.Equal(t, "TR-2026-001", out.Comprobante)
	assert.Equal(t, "2026-05-18", out.Fecha)
	assert.Equal(t, entity.FacturaPagada, estadoFactura(t, st, "F-2026-001"))
}

func TestPagoUseCase_Create_SinActualizarFacturaLaDejaPendiente(t *testing.T) {
	st := memstore.New()
	cli := nuevoCliente(t, st, "Eventos del Sur")
	nuevaFactura(t, st, "F-2026-002", cli.ID, dia(2026, time.May, 2), 12000, entity.FacturaPendiente)
	uc := newPagoUC(st)

	_, err := uc.Create(context.Background(), dto.CreatePagoRequest{
		Pago: dto.PagoInput{
			ClienteID: cli.ID, FacturaID: "F-2026-002", Fecha: "2026-05-18",
			Monto: decimal.NewFromInt(5000), MetodoPago: "Efectivo",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.FacturaPendiente, estadoFactura(t, st, "F-2026-002"))
}

func TestPagoUseCase_Create_Validacion(t *testing.T) {
	st := memstore.New()
	cli := nuevoCliente(t, st, "Municipalidad")
	uc := newPagoUC(st)
	ctx := context.Background()

	base := dto.PagoInput{ClienteID: cli.ID, Fecha: "2026-05-18", Monto: decimal.NewFromInt(100), MetodoPago: "Cheque"}

	cases := map[string]func(p *dto.PagoInput){
		"metodo desconocido": func(p *dto.PagoInput) { p.MetodoPago = "bitcoin" },
		"monto cero":         func(p *dto.PagoInput) { p.Monto = decimal.Zero },
		"fecha inválida":     func(p *dto.PagoInput) { p.Fecha = "18/05/2026" },
		"sin cliente":        func(p *dto.PagoInput) { p.ClienteID = 0 },
	}
	for name, mutar := range cases {
		t.Run(name, func(t *testing.T) {
			in := base
			mutar(&in)
			_, err := uc.Create(ctx, dto.CreatePagoRequest{Pago: in})
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}

	in := base
	in.ClienteID = 999
	_, err := uc.Create(ctx, dto.CreatePagoRequest{Pago: in})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPagoUseCase_Create_FacturaInexistenteNoDejaPago(t *testing.T) {
	st := memstore.New()
	cli := nuevoCliente(t, st, "Constructora ABC")
	uc := newPagoUC(st)

	_, err := uc.Create(context.Background(), dto.CreatePagoRequest{
		Pago: dto.PagoInput{
			ClienteID: cli.ID, FacturaID: "F-0000-000", Fecha: "2026-05-18",
			Monto: decimal.NewFromInt(100), MetodoPago: "Efectivo",
		},
		ActualizarFactura: true,
	})
	require.ErrorIs(t, err, domain.ErrConflict)

	list, err := uc.List(context.Background(), repository.PagoFiltro{})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestPagoUseCase_Delete_RestableceFactura(t *testing.T) {
	st := memstore.New()
	cli := nuevoCliente(t, st, "Constructora ABC")
	nuevaFactura(t, st, "F-2026-003", cli.ID, dia(2026, time.May, 2), 40000, entity.FacturaPendiente)
	uc := newPagoUC(st)
	ctx := context.Background()

	p, err := uc.Create(ctx, dto.CreatePagoRequest{
		Pago: dto.PagoInput{
			ClienteID: cli.ID, FacturaID: "F-2026-003", Fecha: "2026-05-18",
			Monto: decimal.NewFromInt(40000), MetodoPago: "Tarjeta",
		},
		ActualizarFactura: true,
	})
	require.NoError(t, err)
	require.Equal(t, entity.FacturaPagada, estadoFactura(t, st, "F-2026-003"))

	require.NoError(t, uc.Delete(ctx, p.ID))
	assert.Equal(t, entity.FacturaPendiente, estadoFactura(t, st, "F-2026-003"))

	_, err = uc.GetByID(ctx, p.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, uc.Delete(ctx, p.ID), domain.ErrNotFound)
}

func TestPagoUseCase_Update_Parcial(t *testing.T) {
	st := memstore.New()
	cli := nuevoCliente(t, st, "Constructora ABC")
	uc := newPagoUC(st)
	ctx := context.Background()

	p, err := uc.Create(ctx, dto.CreatePagoRequest{
		Pago: dto.PagoInput{ClienteID: cli.ID, Fecha: "2026-05-18", Monto: decimal.NewFromInt(100), MetodoPago: "Efectivo"},
	})
	require.NoError(t, err)

	metodo := "cheque"
	monto := decimal.NewFromInt(250)
	out, err := uc.Update(ctx, p.ID, dto.UpdatePagoRequest{MetodoPago: &metodo, Monto: &monto})
	require.NoError(t, err)
	assert.Equal(t, entity.MetodoCheque, out.MetodoPago)
	assert.True(t, monto.Equal(out.Monto))
	assert.Equal(t, "2026-05-18", out.Fecha)

	malo := "trueque"
	_, err = uc.Update(ctx, p.ID, dto.UpdatePagoRequest{MetodoPago: &malo})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Update(ctx, 999, dto.UpdatePagoRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPagoUseCase_GetByID_ConDocumentos(t *testing.T) {
	st := memstore.New()
	cli := nuevoCliente(t, st, "Constructora ABC")
	nuevaFactura(t, st, "F-2026-004", cli.ID, dia(2026, time.May, 2), 9000, entity.FacturaPendiente)
	uc := newPagoUC(st)
	ctx := context.Background()

	p, err := uc.Create(ctx, dto.CreatePagoRequest{
		Pago: dto.PagoInput{ClienteID: cli.ID, FacturaID: "F-2026-004", Fecha: "2026-05-18", Monto: decimal.NewFromInt(9000), MetodoPago: "Efectivo"},
	})
	require.NoError(t, err)

	det, err := uc.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Constructora ABC", det.Cliente.Nombre)
	require.NotNil(t, det.Factura)
	assert.Equal(t, "F-2026-004", det.Factura.ID)
	assert.Nil(t, det.Remito)
}
