package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago aceptados.
const (
	MetodoEfectivo      = "Efectivo"
	MetodoTransferencia = "Transferencia"
	MetodoCheque        = "Cheque"
	MetodoTarjeta       = "Tarjeta"
)

// Pago registrado por un cliente; puede imputarse a una factura y/o a un remito.
type Pago struct {
	ID            int64
	ClienteID     int64
	FacturaID     string
	RemitoID      string
	Fecha         time.Time
	Monto         decimal.Decimal
	MetodoPago    string
	Comprobante   string
	Observaciones string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NormalizarMetodoPago devuelve el método con mayúscula inicial ("transferencia" -> "Transferencia").
// ok es false si el método no pertenece al catálogo.
func NormalizarMetodoPago(metodo string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(metodo)) {
	case "efectivo":
		return MetodoEfectivo, true
	case "transferencia":
		return MetodoTransferencia, true
	case "cheque":
		return MetodoCheque, true
	case "tarjeta":
		return MetodoTarjeta, true
	}
	return "", false
}
