package dto

import "github.com/shopspring/decimal"

// ContratoInput datos del contrato en POST /api/contratos.
// ID es opcional: si va vacío se genera (C-<año>-xxxxxxxx).
type ContratoInput struct {
	ID               string          `json:"id,omitempty"`
	ClienteID        int64           `json:"cliente_id"`
	FechaInicio      string          `json:"fecha_inicio"`
	FechaFin         string          `json:"fecha_fin"`
	ValorDiario      decimal.Decimal `json:"valor_diario"`
	DireccionEntrega string          `json:"direccion_entrega"`
	Observaciones    string          `json:"observaciones,omitempty"`
}

// CreateContratoRequest body para POST /api/contratos.
type CreateContratoRequest struct {
	Contrato ContratoInput `json:"contrato"`
	Banos    []string      `json:"banos"`
}

// UpdateContratoInput campos modificables del contrato.
type UpdateContratoInput struct {
	ClienteID        *int64           `json:"cliente_id"`
	FechaInicio      *string          `json:"fecha_inicio"`
	FechaFin         *string          `json:"fecha_fin"`
	ValorDiario      *decimal.Decimal `json:"valor_diario"`
	DireccionEntrega *string          `json:"direccion_entrega"`
	Observaciones    *string          `json:"observaciones"`
}

// UpdateContratoRequest body para PUT /api/contratos/:id.
// Banos: baños a agregar. BanosEliminar: baños a liberar del contrato.
type UpdateContratoRequest struct {
	Contrato      UpdateContratoInput `json:"contrato"`
	Banos         []string            `json:"banos"`
	BanosEliminar []string            `json:"banos_eliminar"`
}

// ContratoResponse contrato en respuestas.
type ContratoResponse struct {
	ID               string          `json:"id"`
	ClienteID        int64           `json:"cliente_id"`
	FechaInicio      string          `json:"fecha_inicio"`
	FechaFin         string          `json:"fecha_fin"`
	ValorDiario      decimal.Decimal `json:"valor_diario"`
	DireccionEntrega string          `json:"direccion_entrega"`
	Observaciones    string          `json:"observaciones,omitempty"`
}

// ContratoListItem fila del listado de contratos.
type ContratoListItem struct {
	ContratoResponse
	Cliente       ClienteRefDTO `json:"cliente"`
	CantidadBanos int           `json:"cantidad_banos"`
	DiasRestantes int           `json:"dias_restantes"`
	Estado        string        `json:"estado"`
}

// ContratoDetalleResponse respuesta de GET /api/contratos/:id.
type ContratoDetalleResponse struct {
	ContratoResponse
	DiasRestantes int                `json:"dias_restantes"`
	Estado        string             `json:"estado"`
	Cliente       ClienteContactoDTO `json:"cliente"`
	Banos         []AsignacionDTO    `json:"banos"`
	Facturas      []FacturaResponse  `json:"facturas"`
	Remitos       []RemitoResponse   `json:"remitos"`
}

// AsignacionDTO baño asignado a un contrato.
type AsignacionDTO struct {
	ID          int64  `json:"id"`
	BanoID      string `json:"bano_id"`
	FechaInicio string `json:"fecha_inicio"`
	FechaFin    string `json:"fecha_fin"`
	Estado      string `json:"estado"`
	Ubicacion   string `json:"ubicacion"`
}

// ContratoCreadoResponse respuesta de POST /api/contratos.
type ContratoCreadoResponse struct {
	Contrato ContratoResponse `json:"contrato"`
	Banos    []string         `json:"banos"`
}

// ContratosResumenDTO tarjetas de la pantalla de contratos.
type ContratosResumenDTO struct {
	Activos          int             `json:"activos"`
	PorVencer        int             `json:"por_vencer"`
	ValorTotalActivo decimal.Decimal `json:"valor_total_activo"`
}
