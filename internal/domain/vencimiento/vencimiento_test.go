package vencimiento_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Banos-api/internal/domain/entity"
	"github.com/jhoicas/Banos-api/internal/domain/vencimiento"
)

var buenosAires = time.FixedZone("ART", -3*60*60)

// fecha construye una fecha tal como la devuelve una columna DATE (medianoche UTC).
func fecha(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDiasRestantes_IgnoraLaHoraDelDia(t *testing.T) {
	fin := fecha(2026, time.May, 20)

	temprano := time.Date(2026, time.May, 19, 0, 5, 0, 0, buenosAires)
	tarde := time.Date(2026, time.May, 19, 23, 55, 0, 0, buenosAires)

	assert.Equal(t, 1, vencimiento.DiasRestantes(fin, temprano))
	assert.Equal(t, 1, vencimiento.DiasRestantes(fin, tarde),
		"a las 21hs de Buenos Aires ya es otro día en UTC, pero la fecha local manda")
}

func TestDiasRestantes_MismoDiaYPasado(t *testing.T) {
	hoy := time.Date(2026, time.May, 19, 15, 0, 0, 0, buenosAires)

	assert.Equal(t, 0, vencimiento.DiasRestantes(fecha(2026, time.May, 19), hoy))
	assert.Equal(t, -4, vencimiento.DiasRestantes(fecha(2026, time.May, 15), hoy))
	assert.Equal(t, 43, vencimiento.DiasRestantes(fecha(2026, time.July, 1), hoy))
}

func TestEstadoContrato(t *testing.T) {
	cases := []struct {
		dias int
		want string
	}{
		{-1, vencimiento.EstadoFinalizado},
		{0, vencimiento.EstadoPorVencer},
		{7, vencimiento.EstadoPorVencer},
		{8, vencimiento.EstadoActivo},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, vencimiento.EstadoContrato(tc.dias), "dias=%d", tc.dias)
	}
	assert.True(t, vencimiento.PorVencer(0))
	assert.False(t, vencimiento.PorVencer(-1))
}

func TestValorContrato(t *testing.T) {
	// 3 baños × $1450 × 60 días (1/5 al 30/6)
	v := vencimiento.ValorContrato(3, decimal.NewFromInt(1450), fecha(2023, time.May, 1), fecha(2023, time.June, 30))
	assert.True(t, decimal.NewFromInt(261000).Equal(v), "got %s", v)

	assert.Equal(t, 0, vencimiento.DiasTotales(fecha(2023, time.June, 30), fecha(2023, time.May, 1)),
		"fechas invertidas no generan duración negativa")
}

func TestCargoAdicional(t *testing.T) {
	valor := decimal.NewFromInt(1600)
	assert.True(t, vencimiento.CargoAdicional(-3, valor).Equal(decimal.NewFromInt(4800)))
	assert.True(t, vencimiento.CargoAdicional(0, valor).IsZero())
	assert.True(t, vencimiento.CargoAdicional(5, valor).IsZero())

	assert.True(t, vencimiento.CargoAdicionalEstimado(2).Equal(decimal.NewFromInt(9000)))
}

func TestPrioridadContrato(t *testing.T) {
	assert.Equal(t, entity.PrioridadAlta, vencimiento.PrioridadContrato(0))
	assert.Equal(t, entity.PrioridadAlta, vencimiento.PrioridadContrato(3))
	assert.Equal(t, entity.PrioridadMedia, vencimiento.PrioridadContrato(4))
}

func TestFacturaVencida(t *testing.T) {
	hoy := time.Date(2026, time.March, 31, 10, 0, 0, 0, buenosAires)

	assert.False(t, vencimiento.FacturaVencida(entity.FacturaPendiente, fecha(2026, time.March, 1), hoy),
		"exactamente 30 días todavía no está vencida")
	assert.True(t, vencimiento.FacturaVencida(entity.FacturaPendiente, fecha(2026, time.February, 28), hoy))
	assert.False(t, vencimiento.FacturaVencida(entity.FacturaPagada, fecha(2026, time.January, 1), hoy))

	assert.Equal(t, 0, vencimiento.DiasParaVencer(fecha(2026, time.March, 1), hoy))
	assert.Equal(t, fecha(2026, time.March, 1).Format("2006-01-02"),
		vencimiento.LimiteFacturasVencidas(hoy).Format("2006-01-02"))
}

func TestPorcentaje(t *testing.T) {
	assert.Equal(t, 0, vencimiento.Porcentaje(3, 0))
	assert.Equal(t, 50, vencimiento.Porcentaje(50, 100))
	assert.Equal(t, 33, vencimiento.Porcentaje(1, 3))
	assert.Equal(t, 67, vencimiento.Porcentaje(2, 3))
}

func TestDiaYMes(t *testing.T) {
	hoy := time.Date(2026, time.December, 31, 22, 30, 0, 0, buenosAires)

	assert.Equal(t, fecha(2026, time.December, 31), vencimiento.Dia(hoy))

	desde, hasta := vencimiento.Mes(hoy)
	assert.Equal(t, fecha(2026, time.December, 1), desde)
	assert.Equal(t, fecha(2027, time.January, 1), hasta)
}
