package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una factura.
const (
	FacturaPendiente = "Pendiente"
	FacturaPagada    = "Pagada"
	FacturaAnulada   = "Anulada"
)

// Factura emitida contra un contrato.
type Factura struct {
	ID         string
	ClienteID  int64
	ContratoID string // vacío si no está asociada a un contrato
	Fecha      time.Time
	Monto      decimal.Decimal
	Estado     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// EstadoFacturaValido indica si el estado pertenece al catálogo.
func EstadoFacturaValido(estado string) bool {
	switch estado {
	case FacturaPendiente, FacturaPagada, FacturaAnulada:
		return true
	}
	return false
}
