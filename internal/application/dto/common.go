package dto

// LayoutFecha formato de fecha en requests y respuestas (columnas DATE).
const LayoutFecha = "2006-01-02"

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ClienteRefDTO referencia mínima a un cliente dentro de otros recursos.
type ClienteRefDTO struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
}

// ClienteContactoDTO datos de contacto del cliente en vistas de detalle.
type ClienteContactoDTO struct {
	ID        int64  `json:"id"`
	Nombre    string `json:"nombre"`
	CUIT      string `json:"cuit,omitempty"`
	Telefono  string `json:"telefono,omitempty"`
	Direccion string `json:"direccion,omitempty"`
}

// ContratoRefDTO referencia a un contrato con su período.
type ContratoRefDTO struct {
	ID          string `json:"id"`
	FechaInicio string `json:"fecha_inicio"`
	FechaFin    string `json:"fecha_fin"`
}
