package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ConteoBanos cantidad de baños por estado.
type ConteoBanos struct {
	Total         int
	Disponibles   int
	Alquilados    int
	Mantenimiento int
}

// ConteoAlertas alertas sin resolver por tipo.
type ConteoAlertas struct {
	Total     int
	Pagos     int
	Contratos int
}

// CuentaCliente resultado crudo de la consulta de cuentas corrientes.
// Lo produce la DB; el use case lo convierte en DTO.
type CuentaCliente struct {
	ClienteID       int64
	ClienteNombre   string
	Deuda           decimal.Decimal  // Σ monto de facturas Pendiente
	UltimoPago      *time.Time       // fecha del pago más reciente
	MontoUltimoPago *decimal.Decimal // monto de ese pago
}

// AnalyticsRepository consultas de lectura para el dashboard y las cuentas corrientes.
// Las implementaciones son read-only (no modifican datos).
type AnalyticsRepository interface {
	ConteoBanos(ctx context.Context) (ConteoBanos, error)
	// AsignacionesVencidas asignaciones con fecha_fin < hoy.
	AsignacionesVencidas(ctx context.Context, hoy time.Time) (int, error)
	// ContratosActivos contratos con fecha_fin >= hoy.
	ContratosActivos(ctx context.Context, hoy time.Time) (int, error)
	// Facturado suma de facturas con desde <= fecha < hasta.
	Facturado(ctx context.Context, desde, hasta time.Time) (decimal.Decimal, error)
	// Cobrado suma de pagos con desde <= fecha < hasta.
	Cobrado(ctx context.Context, desde, hasta time.Time) (decimal.Decimal, error)
	ConteoAlertas(ctx context.Context) (ConteoAlertas, error)
	// Cuentas una fila por cliente; query filtra por nombre.
	Cuentas(ctx context.Context, query string) ([]CuentaCliente, error)
}

// SeedRepository operaciones masivas usadas por la carga de datos de ejemplo.
type SeedRepository interface {
	// Limpiar vacía todas las tablas (hijas primero) y reinicia las secuencias.
	Limpiar(ctx context.Context) error
}
