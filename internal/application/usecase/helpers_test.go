package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Banos-api/internal/domain/entity"
	"github.com/jhoicas/Banos-api/internal/testutil/memstore"
)

var buenosAires = time.FixedZone("ART", -3*60*60)

// ahora mediodía del 19/05/2026 en Buenos Aires.
func ahora() time.Time {
	return time.Date(2026, time.May, 19, 12, 0, 0, 0, buenosAires)
}

func dia(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func nuevoCliente(t *testing.T, st *memstore.Store, nombre string) *entity.Cliente {
	t.Helper()
	c := &entity.Cliente{Nombre: nombre, CUIT: "30-00000000-0", Direccion: "Calle 123"}
	require.NoError(t, st.Clientes().Create(context.Background(), c))
	return c
}

func nuevosBanos(t *testing.T, st *memstore.Store, estado string, ids ...string) {
	t.Helper()
	for _, id := range ids {
		ubicacion := entity.UbicacionDeposito
		if estado == entity.BanoAlquilado {
			ubicacion = entity.UbicacionCliente
		}
		require.NoError(t, st.Banos().Create(context.Background(), &entity.Bano{ID: id, Estado: estado, Ubicacion: ubicacion}))
	}
}

func nuevaFactura(t *testing.T, st *memstore.Store, id string, clienteID int64, fecha time.Time, monto int64, estado string) {
	t.Helper()
	require.NoError(t, st.Facturas().Create(context.Background(), &entity.Factura{
		ID: id, ClienteID: clienteID, Fecha: fecha, Monto: decimal.NewFromInt(monto), Estado: estado,
	}))
}

func estadoBano(t *testing.T, st *memstore.Store, id string) string {
	t.Helper()
	b, err := st.Banos().GetByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, b, "baño %s", id)
	return b.Estado
}
