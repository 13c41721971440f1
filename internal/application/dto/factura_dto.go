package dto

import "github.com/shopspring/decimal"

// CreateFacturaRequest body para POST /api/facturas.
// ID opcional (F-<año>-xxxxxxxx); Estado por defecto "Pendiente".
type CreateFacturaRequest struct {
	ID         string          `json:"id,omitempty"`
	ClienteID  int64           `json:"cliente_id"`
	ContratoID string          `json:"contrato_id,omitempty"`
	Fecha      string          `json:"fecha"`
	Monto      decimal.Decimal `json:"monto"`
	Estado     string          `json:"estado,omitempty"`
}

// UpdateFacturaRequest body para PUT /api/facturas/:id.
type UpdateFacturaRequest struct {
	ClienteID  *int64           `json:"cliente_id"`
	ContratoID *string          `json:"contrato_id"`
	Fecha      *string          `json:"fecha"`
	Monto      *decimal.Decimal `json:"monto"`
	Estado     *string          `json:"estado"`
}

// FacturaResponse factura con su vencimiento calculado.
type FacturaResponse struct {
	ID             string          `json:"id"`
	ClienteID      int64           `json:"cliente_id"`
	ContratoID     string          `json:"contrato_id,omitempty"`
	Fecha          string          `json:"fecha"`
	Monto          decimal.Decimal `json:"monto"`
	Estado         string          `json:"estado"`
	Vencimiento    string          `json:"vencimiento"`
	DiasParaVencer int             `json:"dias_para_vencer"`
	Vencida        bool            `json:"vencida"`
}

// FacturaListItem fila del listado de facturas.
type FacturaListItem struct {
	FacturaResponse
	Cliente ClienteRefDTO `json:"cliente"`
}

// FacturaDetalleResponse respuesta de GET /api/facturas/:id.
type FacturaDetalleResponse struct {
	FacturaResponse
	Cliente  ClienteContactoDTO `json:"cliente"`
	Contrato *ContratoRefDTO    `json:"contrato,omitempty"`
}

// DocumentosClienteDTO facturas y remitos de un cliente (pantalla de facturación).
type DocumentosClienteDTO struct {
	ClienteID int64             `json:"cliente_id"`
	Nombre    string            `json:"nombre"`
	Facturas  []FacturaResponse `json:"facturas"`
	Remitos   []RemitoResponse  `json:"remitos"`
}
