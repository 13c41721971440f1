// Package vencimiento reúne la aritmética de fechas del negocio: días restantes de contratos,
// plazo de pago de facturas y cargos por baños no devueltos a tiempo.
//
// Todas las funciones trabajan sobre fechas calendario: las horas se descartan en la zona
// horaria de hoy, de modo que un contrato que vence mañana tiene 1 día restante sin importar
// la hora de la consulta.
package vencimiento

import (
	"time"

	"github.com/jhoicas/Banos-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

const (
	// VentanaPorVencer días hacia adelante en los que un contrato se considera "por vencer".
	VentanaPorVencer = 7
	// UmbralPrioridadAlta días restantes a partir de los cuales la alerta de contrato es alta.
	UmbralPrioridadAlta = 3
	// PlazoPagoDias días desde la emisión de una factura hasta que se considera vencida.
	PlazoPagoDias = 30
	// ValorDiarioEstimado y DiasRetrasoEstimados alimentan el cargo adicional estimado del dashboard.
	ValorDiarioEstimado  = 1500
	DiasRetrasoEstimados = 3
)

// Estados de contrato derivados de los días restantes.
const (
	EstadoActivo     = "Activo"
	EstadoPorVencer  = "Por vencer"
	EstadoFinalizado = "Finalizado"
)

// Fecha trunca t a medianoche conservando la zona horaria.
func Fecha(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// diasEntre cuenta días calendario entre dos fechas. Se normaliza a UTC para que los
// cambios de horario no produzcan días de 23 o 25 horas.
func diasEntre(desde, hasta time.Time) int {
	y1, m1, d1 := desde.Date()
	y2, m2, d2 := hasta.Date()
	a := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	b := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}

// DiasRestantes días calendario desde hoy hasta fin. Negativo si fin ya pasó.
// fin suele venir de una columna DATE (medianoche UTC): se toma su fecha tal cual.
func DiasRestantes(fin, hoy time.Time) int {
	return diasEntre(hoy, fin)
}

// EstadoContrato clasifica un contrato según sus días restantes.
func EstadoContrato(diasRestantes int) string {
	switch {
	case diasRestantes < 0:
		return EstadoFinalizado
	case diasRestantes <= VentanaPorVencer:
		return EstadoPorVencer
	default:
		return EstadoActivo
	}
}

// PorVencer indica si quedan entre 0 y VentanaPorVencer días.
func PorVencer(diasRestantes int) bool {
	return diasRestantes >= 0 && diasRestantes <= VentanaPorVencer
}

// DiasTotales duración del contrato en días (nunca negativa).
func DiasTotales(inicio, fin time.Time) int {
	d := diasEntre(inicio, fin)
	if d < 0 {
		return 0
	}
	return d
}

// ValorContrato = cantidad de baños × valor diario × días totales.
func ValorContrato(cantidadBanos int, valorDiario decimal.Decimal, inicio, fin time.Time) decimal.Decimal {
	return valorDiario.
		Mul(decimal.NewFromInt(int64(cantidadBanos))).
		Mul(decimal.NewFromInt(int64(DiasTotales(inicio, fin))))
}

// CargoAdicional días de atraso × valor diario; cero si el baño no está vencido.
func CargoAdicional(diasRestantes int, valorDiario decimal.Decimal) decimal.Decimal {
	if diasRestantes >= 0 {
		return decimal.Zero
	}
	return valorDiario.Mul(decimal.NewFromInt(int64(-diasRestantes)))
}

// PrioridadContrato prioridad de la alerta de un contrato por vencer.
func PrioridadContrato(diasRestantes int) string {
	if diasRestantes <= UmbralPrioridadAlta {
		return entity.PrioridadAlta
	}
	return entity.PrioridadMedia
}

// VencimientoFactura fecha a partir de la cual una factura impaga está vencida.
func VencimientoFactura(fecha time.Time) time.Time {
	return Fecha(fecha).AddDate(0, 0, PlazoPagoDias)
}

// DiasParaVencer días hasta el vencimiento de la factura (negativo si ya venció).
func DiasParaVencer(fecha, hoy time.Time) int {
	return DiasRestantes(VencimientoFactura(fecha), hoy)
}

// FacturaVencida una factura pendiente emitida hace más de PlazoPagoDias días.
func FacturaVencida(estado string, fecha, hoy time.Time) bool {
	return estado == entity.FacturaPendiente && diasEntre(fecha, hoy) > PlazoPagoDias
}

// LimiteFacturasVencidas fecha de corte: facturas anteriores a ella están vencidas.
func LimiteFacturasVencidas(hoy time.Time) time.Time {
	return Fecha(hoy).AddDate(0, 0, -PlazoPagoDias)
}

// CargoAdicionalEstimado estimación gruesa del dashboard para baños vencidos.
func CargoAdicionalEstimado(banosVencidos int) decimal.Decimal {
	return decimal.NewFromInt(int64(banosVencidos * ValorDiarioEstimado * DiasRetrasoEstimados))
}

// Porcentaje redondeado de parte sobre total; 0 si total es 0.
func Porcentaje(parte, total int) int {
	if total <= 0 {
		return 0
	}
	return int(decimal.NewFromInt(int64(parte)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(total))).
		Round(0).IntPart())
}

// Dia fecha calendario de t expresada como medianoche UTC, el formato de una columna DATE.
func Dia(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Mes primer día del mes de hoy y primer día del mes siguiente (rango semiabierto).
func Mes(hoy time.Time) (desde, hasta time.Time) {
	y, m, _ := hoy.Date()
	desde = time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
	return desde, desde.AddDate(0, 1, 0)
}

// Reloj devuelve el instante actual; los casos de uso lo reciben para poder fijar "hoy" en tests.
type Reloj func() time.Time

// RelojEn reloj del sistema expresado en la zona indicada.
func RelojEn(loc *time.Location) Reloj {
	return func() time.Time { return time.Now().In(loc) }
}
