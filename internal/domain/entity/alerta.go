package entity

import "time"

// Tipos de alerta.
const (
	AlertaPago     = "pago"
	AlertaContrato = "contrato"
)

// Prioridades de alerta.
const (
	PrioridadAlta  = "alta"
	PrioridadMedia = "media"
	PrioridadBaja  = "baja"
)

// Alerta notificación derivada (pago vencido, contrato por vencer) o cargada a mano.
type Alerta struct {
	ID         int64
	Tipo       string
	ClienteID  int64
	ContratoID string
	FacturaID  string
	Mensaje    string
	Fecha      time.Time
	Prioridad  string
	Resuelta   bool
	CreatedAt  time.Time
}

// PrioridadValida indica si la prioridad pertenece al catálogo.
func PrioridadValida(p string) bool {
	return p == PrioridadAlta || p == PrioridadMedia || p == PrioridadBaja
}
