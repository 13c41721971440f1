package usecase_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Banos-api/internal/application/dto"
	"github.com/jhoicas/Banos-api/internal/application/usecase"
	"github.com/jhoicas/Banos-api/internal/domain"
	"github.com/jhoicas/Banos-api/internal/domain/entity"
	"github.com/jhoicas/Banos-api/internal/testutil/memstore"
)

func newClienteUC(st *memstore.Store) *usecase.ClienteUseCase {
	return usecase.NewClienteUseCase(st.Clientes(), st.Contratos(), st.Facturas(), st.Tx(), ahora)
}

func TestClienteUseCase_Create(t *testing.T) {
	uc := newClienteUC(memstore.New())

	out, err := uc.Create(context.Background(), dto.CreateClienteRequest{
		Nombre:    "  Constructora ABC ",
		CUIT:      "30-71234567-0",
		Direccion: "Av. Libertador 1234",
	})
	require.NoError(t, err)
	assert.NotZero(t, out.ID)
	assert.Equal(t, "Constructora ABC", out.Nombre)

	_, err = uc.Create(context.Background(), dto.CreateClienteRequest{Nombre: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestClienteUseCase_GetByID_Detalle(t *testing.T) {
	st := memstore.New()
	cl := nuevoCliente(t, st, "Constructora ABC")
	nuevosBanos(t, st, entity.BanoDisponible, "B001")
	_, err := newContratoUC(st).Create(context.Background(), contratoValido(cl.ID, "B001"))
	require.NoError(t, err)
	nuevaFactura(t, st, "F-2026-001", cl.ID, dia(2026, time.May, 2), 34500, entity.FacturaPendiente)
	uc := newClienteUC(st)

	out, err := uc.GetByID(context.Background(), cl.ID)
	require.NoError(t, err)
	require.Len(t, out.Contratos, 1)
	assert.Equal(t, "C-2026-001", out.Contratos[0].ID)
	assert.Equal(t, "2026-05-24", out.Contratos[0].FechaFin)
	require.Len(t, out.Facturas, 1)
	assert.Equal(t, "F-2026-001", out.Facturas[0].ID)

	_, err = uc.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClienteUseCase_ListYRecientes(t *testing.T) {
	st := memstore.New()
	for i := 1; i <= 5; i++ {
		nuevoCliente(t, st, fmt.Sprintf("Cliente %d", i))
	}
	uc := newClienteUC(st)
	ctx := context.Background()

	list, err := uc.List(ctx, "cliente 3")
	require.NoError(t, err)
	require.Len(t, list, 1)

	recientes, err := uc.Recientes(ctx, 0)
	require.NoError(t, err)
	require.Len(t, recientes, 3)
	assert.Equal(t, "Cliente 5", recientes[0].Nombre)

	todos, err := uc.Recientes(ctx, 500)
	require.NoError(t, err)
	assert.Len(t, todos, 5)
}

func TestClienteUseCase_UpdateYDelete(t *testing.T) {
	st := memstore.New()
	cl := nuevoCliente(t, st, "Constructora ABC")
	uc := newClienteUC(st)
	ctx := context.Background()

	tel := " 011-4567-8901 "
	out, err := uc.Update(ctx, cl.ID, dto.UpdateClienteRequest{Telefono: &tel})
	require.NoError(t, err)
	assert.Equal(t, "011-4567-8901", out.Telefono)
	assert.Equal(t, "Constructora ABC", out.Nombre)

	vacio := ""
	_, err = uc.Update(ctx, cl.ID, dto.UpdateClienteRequest{Nombre: &vacio})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Update(ctx, 404, dto.UpdateClienteRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, uc.Delete(ctx, cl.ID))
	assert.ErrorIs(t, uc.Delete(ctx, cl.ID), domain.ErrNotFound)
}

func TestClienteUseCase_Delete_LiberaBanosDeSusContratos(t *testing.T) {
	st := memstore.New()
	abc := nuevoCliente(t, st, "Constructora ABC")
	otro := nuevoCliente(t, st, "Eventos del Sur")
	nuevosBanos(t, st, entity.BanoDisponible, "B001", "B002", "B003")
	contratos := newContratoUC(st)
	ctx := context.Background()

	_, err := contratos.Create(ctx, contratoValido(abc.ID, "B001"))
	require.NoError(t, err)

	// B002 estuvo alquilado a ABC en marzo y hoy lo tiene otro cliente
	viejo := contratoValido(abc.ID, "B002")
	viejo.Contrato.ID = "C-2026-000"
	viejo.Contrato.FechaInicio = "2026-03-01"
	viejo.Contrato.FechaFin = "2026-03-31"
	_, err = contratos.Create(ctx, viejo)
	require.NoError(t, err)
	require.NoError(t, st.Banos().SetEstado(ctx, []string{"B002"}, entity.BanoDisponible, entity.UbicacionDeposito))
	actual := contratoValido(otro.ID, "B002")
	actual.Contrato.ID = "C-2026-002"
	actual.Contrato.FechaInicio = "2026-05-05"
	actual.Contrato.FechaFin = "2026-06-30"
	_, err = contratos.Create(ctx, actual)
	require.NoError(t, err)

	require.NoError(t, newClienteUC(st).Delete(ctx, abc.ID))

	b001, err := st.Banos().GetByID(ctx, "B001")
	require.NoError(t, err)
	assert.Equal(t, entity.BanoDisponible, b001.Estado)
	assert.Equal(t, entity.UbicacionDeposito, b001.Ubicacion)
	assert.Equal(t, entity.BanoAlquilado, estadoBano(t, st, "B002"), "sigue alquilado al otro cliente")

	inv, err := usecase.NewBanoUseCase(st.Banos(), ahora).Inventario(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, inv.Totales.Total)
	assert.Equal(t, 2, inv.Totales.Disponibles)
	assert.Equal(t, 1, inv.Totales.Alquilados)
	require.Len(t, inv.PorCliente, 1)
	assert.Equal(t, "Eventos del Sur", inv.PorCliente[0].Cliente)

	assert.ErrorIs(t, newClienteUC(st).Delete(ctx, abc.ID), domain.ErrNotFound)
}
