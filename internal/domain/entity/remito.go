package entity

import "time"

// Tipos de remito.
const (
	RemitoEntrega = "Entrega"
	RemitoRetiro  = "Retiro"
)

// Remito comprobante de entrega o retiro de baños.
type Remito struct {
	ID            string
	ClienteID     int64
	ContratoID    string
	Fecha         time.Time
	Tipo          string
	Cantidad      int
	Observaciones string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
