package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Banos-api/internal/domain/entity"
	"github.com/jhoicas/Banos-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el dashboard y las cuentas corrientes.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// ConteoBanos cuenta baños por estado en una sola pasada.
func (r *AnalyticsRepo) ConteoBanos(ctx context.Context) (repository.ConteoBanos, error) {
	const query = `
	SELECT
	    COUNT(*),
	    COUNT(*) FILTER (WHERE estado = $1),
	    COUNT(*) FILTER (WHERE estado = $2),
	    COUNT(*) FILTER (WHERE estado = $3)
	FROM banos`

	var c repository.ConteoBanos
	err := r.pool.QueryRow(ctx, query, entity.BanoDisponible, entity.BanoAlquilado, entity.BanoMantenimiento).
		Scan(&c.Total, &c.Disponibles, &c.Alquilados, &c.Mantenimiento)
	if err != nil {
		return c, fmt.Errorf("analytics.ConteoBanos: %w", err)
	}
	return c, nil
}

// AsignacionesVencidas asignaciones cuya fecha_fin ya pasó.
func (r *AnalyticsRepo) AsignacionesVencidas(ctx context.Context, hoy time.Time) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM banos_contratos WHERE fecha_fin < $1`, hoy).Scan(&n); err != nil {
		return 0, fmt.Errorf("analytics.AsignacionesVencidas: %w", err)
	}
	return n, nil
}

// ContratosActivos contratos que no terminaron.
func (r *AnalyticsRepo) ContratosActivos(ctx context.Context, hoy time.Time) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM contratos WHERE fecha_fin >= $1`, hoy).Scan(&n); err != nil {
		return 0, fmt.Errorf("analytics.ContratosActivos: %w", err)
	}
	return n, nil
}

// Facturado suma de facturas del período. COALESCE devuelve cero para períodos vacíos.
func (r *AnalyticsRepo) Facturado(ctx context.Context, desde, hasta time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(monto), 0) FROM facturas WHERE fecha >= $1 AND fecha < $2`, desde, hasta).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("analytics.Facturado: %w", err)
	}
	return total, nil
}

// Cobrado suma de pagos del período.
func (r *AnalyticsRepo) Cobrado(ctx context.Context, desde, hasta time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(monto), 0) FROM pagos WHERE fecha >= $1 AND fecha < $2`, desde, hasta).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("analytics.Cobrado: %w", err)
	}
	return total, nil
}

// ConteoAlertas alertas sin resolver por tipo.
func (r *AnalyticsRepo) ConteoAlertas(ctx context.Context) (repository.ConteoAlertas, error) {
	const query = `
	SELECT
	    COUNT(*),
	    COUNT(*) FILTER (WHERE tipo = $1),
	    COUNT(*) FILTER (WHERE tipo = $2)
	FROM alertas
	WHERE NOT resuelta`

	var c repository.ConteoAlertas
	if err := r.pool.QueryRow(ctx, query, entity.AlertaPago, entity.AlertaContrato).
		Scan(&c.Total, &c.Pagos, &c.Contratos); err != nil {
		return c, fmt.Errorf("analytics.ConteoAlertas: %w", err)
	}
	return c, nil
}

// Cuentas deuda pendiente y último pago por cliente, los más endeudados primero.
func (r *AnalyticsRepo) Cuentas(ctx context.Context, query string) ([]repository.CuentaCliente, error) {
	const sql = `
	SELECT
	    cl.id,
	    cl.nombre,
	    COALESCE((SELECT SUM(f.monto) FROM facturas f
	              WHERE f.cliente_id = cl.id AND f.estado = $1), 0) AS deuda,
	    up.fecha,
	    up.monto
	FROM clientes cl
	LEFT JOIN LATERAL (
	    SELECT p.fecha, p.monto FROM pagos p
	    WHERE p.cliente_id = cl.id
	    ORDER BY p.fecha DESC, p.id DESC
	    LIMIT 1
	) up ON true
	WHERE ($2::text = '' OR cl.nombre ILIKE '%' || $2 || '%')
	ORDER BY deuda DESC, cl.nombre`

	rows, err := r.pool.Query(ctx, sql, entity.FacturaPendiente, patronLike(query))
	if err != nil {
		return nil, fmt.Errorf("analytics.Cuentas: %w", err)
	}
	defer rows.Close()

	var out []repository.CuentaCliente
	for rows.Next() {
		var c repository.CuentaCliente
		if err := rows.Scan(&c.ClienteID, &c.ClienteNombre, &c.Deuda, &c.UltimoPago, &c.MontoUltimoPago); err != nil {
			return nil, fmt.Errorf("analytics.Cuentas scan: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
