package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateBanoRequest body para POST /api/banos.
type CreateBanoRequest struct {
	ID            string `json:"id"`
	Estado        string `json:"estado"`
	Ubicacion     string `json:"ubicacion"`
	Observaciones string `json:"observaciones,omitempty"`
}

// UpdateBanoRequest body para PUT /api/banos/:id.
type UpdateBanoRequest struct {
	Estado        *string `json:"estado"`
	Ubicacion     *string `json:"ubicacion"`
	Observaciones *string `json:"observaciones"`
}

// BanoResponse baño en respuestas.
type BanoResponse struct {
	ID            string    `json:"id"`
	Estado        string    `json:"estado"`
	Ubicacion     string    `json:"ubicacion"`
	Observaciones string    `json:"observaciones,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// BanoDetalleResponse baño con su historial de contratos.
type BanoDetalleResponse struct {
	BanoResponse
	Contratos []BanoHistorialDTO `json:"contratos"`
}

// BanoHistorialDTO una asignación pasada o vigente del baño.
type BanoHistorialDTO struct {
	AsignacionID  int64           `json:"asignacion_id"`
	ContratoID    string          `json:"contrato_id"`
	FechaInicio   string          `json:"fecha_inicio"`
	FechaFin      string          `json:"fecha_fin"`
	ValorDiario   decimal.Decimal `json:"valor_diario"`
	ClienteID     int64           `json:"cliente_id"`
	ClienteNombre string          `json:"cliente_nombre"`
}

// InventarioResponse respuesta de GET /api/inventario.
type InventarioResponse struct {
	Totales     InventarioTotalesDTO `json:"totales"`
	Disponibles []BanoResponse       `json:"disponibles"`
	PorCliente  []BanosClienteDTO    `json:"por_cliente"`
}

// InventarioTotalesDTO tarjetas de la pantalla de inventario.
type InventarioTotalesDTO struct {
	Total                 int `json:"total"`
	Disponibles           int `json:"disponibles"`
	Alquilados            int `json:"alquilados"`
	PorcentajeDisponibles int `json:"porcentaje_disponibles"`
	PorcentajeAlquilados  int `json:"porcentaje_alquilados"`
	Vencidos              int `json:"vencidos"`
	PorVencer             int `json:"por_vencer"`
}

// BanosClienteDTO baños alquilados agrupados por cliente.
type BanosClienteDTO struct {
	ClienteID int64             `json:"cliente_id"`
	Cliente   string            `json:"cliente"`
	Banos     []BanoAsignadoDTO `json:"banos"`
}

// BanoAsignadoDTO fila de la tabla de baños alquilados.
type BanoAsignadoDTO struct {
	ID             string          `json:"id"`
	FechaInicio    string          `json:"fecha_inicio"`
	FechaFin       string          `json:"fecha_fin"`
	DiasRestantes  int             `json:"dias_restantes"`
	ContratoID     string          `json:"contrato_id"`
	Estado         string          `json:"estado"`
	ValorDiario    decimal.Decimal `json:"valor_diario"`
	CargoAdicional decimal.Decimal `json:"cargo_adicional"`
}
