package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateClienteRequest body para POST /api/clientes.
type CreateClienteRequest struct {
	Nombre    string `json:"nombre"`
	CUIT      string `json:"cuit"`
	Telefono  string `json:"telefono"`
	Direccion string `json:"direccion"`
	Email     string `json:"email,omitempty"`
}

// UpdateClienteRequest body para PUT /api/clientes/:id (solo se aplican los campos enviados).
type UpdateClienteRequest struct {
	Nombre    *string `json:"nombre"`
	CUIT      *string `json:"cuit"`
	Telefono  *string `json:"telefono"`
	Direccion *string `json:"direccion"`
	Email     *string `json:"email"`
}

// ClienteResponse cliente en respuestas.
type ClienteResponse struct {
	ID        int64     `json:"id"`
	Nombre    string    `json:"nombre"`
	CUIT      string    `json:"cuit"`
	Telefono  string    `json:"telefono"`
	Direccion string    `json:"direccion"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ClienteDetalleResponse cliente con sus contratos y facturas (GET /api/clientes/:id).
type ClienteDetalleResponse struct {
	ClienteResponse
	Contratos []ContratoResumenDTO `json:"contratos"`
	Facturas  []FacturaResumenDTO  `json:"facturas"`
}

// ContratoResumenDTO contrato dentro del detalle de un cliente.
type ContratoResumenDTO struct {
	ID          string          `json:"id"`
	FechaInicio string          `json:"fecha_inicio"`
	FechaFin    string          `json:"fecha_fin"`
	ValorDiario decimal.Decimal `json:"valor_diario"`
}

// FacturaResumenDTO factura dentro del detalle de un cliente o de un pago.
type FacturaResumenDTO struct {
	ID     string          `json:"id"`
	Fecha  string          `json:"fecha"`
	Monto  decimal.Decimal `json:"monto"`
	Estado string          `json:"estado"`
}
