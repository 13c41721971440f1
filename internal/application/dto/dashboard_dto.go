package dto

import "github.com/shopspring/decimal"

// DashboardStatsDTO respuesta de GET /api/dashboard/stats.
type DashboardStatsDTO struct {
	Banos                  BanosStatsDTO     `json:"banos"`
	Contratos              ContratosStatsDTO `json:"contratos"`
	Facturacion            MontoMensualDTO   `json:"facturacion"`
	Pagos                  MontoMensualDTO   `json:"pagos"`
	Alertas                AlertasStatsDTO   `json:"alertas"`
	CargoAdicionalEstimado decimal.Decimal   `json:"cargo_adicional_estimado"`
	Periodo                string            `json:"periodo"` // ej: "Mayo 2026"
}

// BanosStatsDTO conteo de baños por estado; Vencidos cuenta asignaciones con fecha_fin pasada.
type BanosStatsDTO struct {
	Total       int `json:"total"`
	Disponibles int `json:"disponibles"`
	Alquilados  int `json:"alquilados"`
	Vencidos    int `json:"vencidos"`
}

// ContratosStatsDTO contratos con fecha_fin >= hoy.
type ContratosStatsDTO struct {
	Activos int `json:"activos"`
}

// MontoMensualDTO suma del mes en curso.
type MontoMensualDTO struct {
	Mensual decimal.Decimal `json:"mensual"`
}

// AlertasStatsDTO alertas sin resolver.
type AlertasStatsDTO struct {
	Total     int `json:"total"`
	Pagos     int `json:"pagos"`
	Contratos int `json:"contratos"`
}

// SeedResponse resultado de la carga de datos de ejemplo.
type SeedResponse struct {
	Message   string `json:"message"`
	Clientes  int    `json:"clientes"`
	Banos     int    `json:"banos"`
	Contratos int    `json:"contratos"`
	Facturas  int    `json:"facturas"`
	Remitos   int    `json:"remitos"`
	Pagos     int    `json:"pagos"`
	Alertas   int    `json:"alertas"`
}
