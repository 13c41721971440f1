package dto

// CreateRemitoRequest body para POST /api/remitos.
type CreateRemitoRequest struct {
	ID            string `json:"id,omitempty"`
	ClienteID     int64  `json:"cliente_id"`
	ContratoID    string `json:"contrato_id,omitempty"`
	Fecha         string `json:"fecha"`
	Tipo          string `json:"tipo"`
	Cantidad      int    `json:"cantidad"`
	Observaciones string `json:"observaciones,omitempty"`
}

// UpdateRemitoRequest body para PUT /api/remitos/:id.
type UpdateRemitoRequest struct {
	ClienteID     *int64  `json:"cliente_id"`
	ContratoID    *string `json:"contrato_id"`
	Fecha         *string `json:"fecha"`
	Tipo          *string `json:"tipo"`
	Cantidad      *int    `json:"cantidad"`
	Observaciones *string `json:"observaciones"`
}

// RemitoResponse remito en respuestas.
type RemitoResponse struct {
	ID            string `json:"id"`
	ClienteID     int64  `json:"cliente_id"`
	ContratoID    string `json:"contrato_id,omitempty"`
	Fecha         string `json:"fecha"`
	Tipo          string `json:"tipo"`
	Cantidad      int    `json:"cantidad"`
	Observaciones string `json:"observaciones,omitempty"`
}

// RemitoListItem fila del listado de remitos.
type RemitoListItem struct {
	RemitoResponse
	Cliente ClienteRefDTO `json:"cliente"`
}

// RemitoDetalleResponse respuesta de GET /api/remitos/:id.
type RemitoDetalleResponse struct {
	RemitoResponse
	Cliente  ClienteContactoDTO `json:"cliente"`
	Contrato *ContratoRefDTO    `json:"contrato,omitempty"`
}

// RemitoRefDTO remito dentro del detalle de un pago.
type RemitoRefDTO struct {
	ID    string `json:"id"`
	Fecha string `json:"fecha"`
	Tipo  string `json:"tipo"`
}
