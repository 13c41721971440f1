package dto

// CreateAlertaRequest body para POST /api/alertas.
type CreateAlertaRequest struct {
	Tipo       string `json:"tipo"`
	ClienteID  int64  `json:"cliente_id"`
	ContratoID string `json:"contrato_id,omitempty"`
	FacturaID  string `json:"factura_id,omitempty"`
	Mensaje    string `json:"mensaje"`
	Fecha      string `json:"fecha,omitempty"`
	Prioridad  string `json:"prioridad,omitempty"`
}

// ResolverAlertaRequest body para POST /api/alertas/resolver.
type ResolverAlertaRequest struct {
	ID int64 `json:"id"`
}

// AlertaResponse alerta en respuestas.
type AlertaResponse struct {
	ID         int64  `json:"id"`
	Tipo       string `json:"tipo"`
	ClienteID  int64  `json:"cliente_id"`
	ContratoID string `json:"contrato_id,omitempty"`
	FacturaID  string `json:"factura_id,omitempty"`
	Mensaje    string `json:"mensaje"`
	Fecha      string `json:"fecha"`
	Prioridad  string `json:"prioridad"`
	Resuelta   bool   `json:"resuelta"`
}

// AlertaListItem fila del listado de alertas.
type AlertaListItem struct {
	AlertaResponse
	Cliente ClienteRefDTO `json:"cliente"`
}

// AlertasListResponse listado con conteo por tipo.
type AlertasListResponse struct {
	Items     []AlertaListItem `json:"items"`
	Total     int              `json:"total"`
	Pagos     int              `json:"pagos"`
	Contratos int              `json:"contratos"`
}

// AlertasGeneradasResponse respuesta de POST /api/alertas/generar.
type AlertasGeneradasResponse struct {
	AlertasGeneradas []AlertaResponse `json:"alertas_generadas"`
	Total            int              `json:"total"`
}
