package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Banos-api/internal/application/dto"
	"github.com/jhoicas/Banos-api/internal/application/usecase"
	"github.com/jhoicas/Banos-api/internal/domain"
	"github.com/jhoicas/Banos-api/internal/domain/entity"
	"github.com/jhoicas/Banos-api/internal/domain/vencimiento"
	"github.com/jhoicas/Banos-api/internal/testutil/memstore"
)

func TestBanoUseCase_Create(t *testing.T) {
	st := memstore.New()
	uc := usecase.NewBanoUseCase(st.Banos(), ahora)
	ctx := context.Background()

	out, err := uc.Create(ctx, dto.CreateBanoRequest{ID: " b101 "})
	require.NoError(t, err)
	assert.Equal(t, "B101", out.ID)
	assert.Equal(t, entity.BanoDisponible, out.Estado)
	assert.Equal(t, entity.UbicacionDeposito, out.Ubicacion)

	_, err = uc.Create(ctx, dto.CreateBanoRequest{ID: "B101"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = uc.Create(ctx, dto.CreateBanoRequest{ID: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, dto.CreateBanoRequest{ID: "B102", Estado: "Roto"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestBanoUseCase_ListYUpdate(t *testing.T) {
	st := memstore.New()
	nuevosBanos(t, st, entity.BanoDisponible, "B002", "B001")
	nuevosBanos(t, st, entity.BanoMantenimiento, "B003")
	uc := usecase.NewBanoUseCase(st.Banos(), ahora)
	ctx := context.Background()

	disponibles, err := uc.List(ctx, entity.BanoDisponible, "")
	require.NoError(t, err)
	require.Len(t, disponibles, 2)
	assert.Equal(t, "B001", disponibles[0].ID)

	_, err = uc.List(ctx, "Perdido", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	estado := entity.BanoDisponible
	obs := "reparado"
	out, err := uc.Update(ctx, "B003", dto.UpdateBanoRequest{Estado: &estado, Observaciones: &obs})
	require.NoError(t, err)
	assert.Equal(t, entity.BanoDisponible, out.Estado)
	assert.Equal(t, "reparado", out.Observaciones)

	_, err = uc.Update(ctx, "B999", dto.UpdateBanoRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, uc.Delete(ctx, "B003"))
	assert.ErrorIs(t, uc.Delete(ctx, "B003"), domain.ErrNotFound)
}

func TestBanoUseCase_GetByID_Historial(t *testing.T) {
	st := memstore.New()
	cl := nuevoCliente(t, st, "Constructora ABC")
	nuevosBanos(t, st, entity.BanoDisponible, "B001")
	_, err := newContratoUC(st).Create(context.Background(), contratoValido(cl.ID, "B001"))
	require.NoError(t, err)

	uc := usecase.NewBanoUseCase(st.Banos(), ahora)
	out, err := uc.GetByID(context.Background(), "B001")
	require.NoError(t, err)
	assert.Equal(t, entity.BanoAlquilado, out.Estado)
	require.Len(t, out.Contratos, 1)
	assert.Equal(t, "C-2026-001", out.Contratos[0].ContratoID)
	assert.Equal(t, "Constructora ABC", out.Contratos[0].ClienteNombre)

	_, err = uc.GetByID(context.Background(), "B404")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBanoUseCase_IDEnMinusculas(t *testing.T) {
	st := memstore.New()
	uc := usecase.NewBanoUseCase(st.Banos(), ahora)
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateBanoRequest{ID: "b001"})
	require.NoError(t, err)

	out, err := uc.GetByID(ctx, "b001")
	require.NoError(t, err)
	assert.Equal(t, "B001", out.ID)

	obs := "limpieza"
	upd, err := uc.Update(ctx, " b001", dto.UpdateBanoRequest{Observaciones: &obs})
	require.NoError(t, err)
	assert.Equal(t, "limpieza", upd.Observaciones)

	require.NoError(t, uc.Delete(ctx, "b001"))
	assert.ErrorIs(t, uc.Delete(ctx, "B001"), domain.ErrNotFound)
}

func TestBanoUseCase_Inventario(t *testing.T) {
	st := memstore.New()
	abc := nuevoCliente(t, st, "Constructora ABC")
	eventos := nuevoCliente(t, st, "Eventos del Sur")
	nuevosBanos(t, st, entity.BanoDisponible, "B001", "B002", "B003", "B010")
	contratos := newContratoUC(st)
	ctx := context.Background()

	// vence el 24/05: quedan 5 días
	_, err := contratos.Create(ctx, contratoValido(abc.ID, "B001", "B002"))
	require.NoError(t, err)

	// venció el 10/05
	vencido := contratoValido(eventos.ID, "B003")
	vencido.Contrato.ID = "C-2026-002"
	vencido.Contrato.FechaInicio = "2026-04-01"
	vencido.Contrato.FechaFin = "2026-05-10"
	_, err = contratos.Create(ctx, vencido)
	require.NoError(t, err)

	out, err := usecase.NewBanoUseCase(st.Banos(), ahora).Inventario(ctx)
	require.NoError(t, err)

	require.Len(t, out.Disponibles, 1)
	assert.Equal(t, "B010", out.Disponibles[0].ID)

	require.Len(t, out.PorCliente, 2)
	assert.Equal(t, "Constructora ABC", out.PorCliente[0].Cliente)
	require.Len(t, out.PorCliente[0].Banos, 2)
	b1 := out.PorCliente[0].Banos[0]
	assert.Equal(t, "B001", b1.ID)
	assert.Equal(t, 5, b1.DiasRestantes)
	assert.Equal(t, vencimiento.EstadoPorVencer, b1.Estado)
	assert.True(t, b1.CargoAdicional.IsZero())

	assert.Equal(t, "Eventos del Sur", out.PorCliente[1].Cliente)
	b3 := out.PorCliente[1].Banos[0]
	assert.Equal(t, -9, b3.DiasRestantes)
	assert.Equal(t, vencimiento.EstadoFinalizado, b3.Estado)
	assert.Equal(t, "13500", b3.CargoAdicional.String(), "9 días × $1500")

	tot := out.Totales
	assert.Equal(t, 4, tot.Total)
	assert.Equal(t, 1, tot.Disponibles)
	assert.Equal(t, 3, tot.Alquilados)
	assert.Equal(t, 25, tot.PorcentajeDisponibles)
	assert.Equal(t, 75, tot.PorcentajeAlquilados)
	assert.Equal(t, 1, tot.Vencidos)
	assert.Equal(t, 2, tot.PorVencer)
}
