package dto

import "github.com/shopspring/decimal"

// PagoInput datos del pago.
type PagoInput struct {
	ClienteID     int64           `json:"cliente_id"`
	FacturaID     string          `json:"factura_id,omitempty"`
	RemitoID      string          `json:"remito_id,omitempty"`
	Fecha         string          `json:"fecha"`
	Monto         decimal.Decimal `json:"monto"`
	MetodoPago    string          `json:"metodo_pago"`
	Comprobante   string          `json:"comprobante,omitempty"`
	Observaciones string          `json:"observaciones,omitempty"`
}

// CreatePagoRequest body para POST /api/pagos.
// ActualizarFactura marca la factura asociada como "Pagada".
type CreatePagoRequest struct {
	Pago              PagoInput `json:"pago"`
	ActualizarFactura bool      `json:"actualizar_factura"`
}

// UpdatePagoRequest body para PUT /api/pagos/:id.
type UpdatePagoRequest struct {
	ClienteID     *int64           `json:"cliente_id"`
	FacturaID     *string          `json:"factura_id"`
	RemitoID      *string          `json:"remito_id"`
	Fecha         *string          `json:"fecha"`
	Monto         *decimal.Decimal `json:"monto"`
	MetodoPago    *string          `json:"metodo_pago"`
	Comprobante   *string          `json:"comprobante"`
	Observaciones *string          `json:"observaciones"`
}

// PagoResponse pago en respuestas.
type PagoResponse struct {
	ID            int64           `json:"id"`
	ClienteID     int64           `json:"cliente_id"`
	FacturaID     string          `json:"factura_id,omitempty"`
	RemitoID      string          `json:"remito_id,omitempty"`
	Fecha         string          `json:"fecha"`
	Monto         decimal.Decimal `json:"monto"`
	MetodoPago    string          `json:"metodo_pago"`
	Comprobante   string          `json:"comprobante,omitempty"`
	Observaciones string          `json:"observaciones,omitempty"`
}

// PagoListItem fila del listado de pagos.
type PagoListItem struct {
	PagoResponse
	Cliente      ClienteRefDTO    `json:"cliente"`
	FacturaMonto *decimal.Decimal `json:"factura_monto,omitempty"`
}

// PagoDetalleResponse respuesta de GET /api/pagos/:id.
type PagoDetalleResponse struct {
	PagoResponse
	Cliente ClienteContactoDTO `json:"cliente"`
	Factura *FacturaResumenDTO `json:"factura,omitempty"`
	Remito  *RemitoRefDTO      `json:"remito,omitempty"`
}

// CuentaDTO posición de cuenta corriente de un cliente.
type CuentaDTO struct {
	ClienteID       int64            `json:"cliente_id"`
	Cliente         string           `json:"cliente"`
	DeudaTotal      decimal.Decimal  `json:"deuda_total"`
	UltimoPago      string           `json:"ultimo_pago,omitempty"`
	MontoUltimoPago *decimal.Decimal `json:"monto_ultimo_pago,omitempty"`
	Estado          string           `json:"estado"` // "Al día" | "Con deuda"
}

// CuentasResponse respuesta de GET /api/cuentas.
type CuentasResponse struct {
	Items            []CuentaDTO     `json:"items"`
	DeudaTotal       decimal.Decimal `json:"deuda_total"`
	ClientesConDeuda int             `json:"clientes_con_deuda"`
	PagosMes         decimal.Decimal `json:"pagos_mes"`
}
