package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Banos-api/internal/domain/entity"
	"github.com/jhoicas/Banos-api/internal/domain/repository"
)

var _ repository.AlertaRepository = (*AlertaRepo)(nil)

// AlertaRepo implementación de AlertaRepository.
type AlertaRepo struct {
	q Querier
}

// NewAlertaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAlertaRepository(q Querier) *AlertaRepo {
	return &AlertaRepo{q: q}
}

// Create persiste una alerta y completa su ID.
func (r *AlertaRepo) Create(ctx context.Context, a *entity.Alerta) error {
	query := `
		INSERT INTO alertas (tipo, cliente_id, contrato_id, factura_id, mensaje, fecha, prioridad, resuelta, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, a.Tipo, a.ClienteID, nullIfEmpty(a.ContratoID), nullIfEmpty(a.FacturaID),
		a.Mensaje, a.Fecha, a.Prioridad, a.Resuelta, a.CreatedAt).Scan(&a.ID)
	if err != nil {
		return mapWriteError("insert alerta", err)
	}
	return nil
}

// List alertas con nombre de cliente, la más reciente primero.
func (r *AlertaRepo) List(ctx context.Context, f repository.AlertaFiltro) ([]repository.AlertaConCliente, error) {
	query := `
	SELECT a.id, a.tipo, a.cliente_id, a.contrato_id, a.factura_id, a.mensaje, a.fecha, a.prioridad,
	       a.resuelta, a.created_at, cl.nombre
	FROM alertas a
	JOIN clientes cl ON cl.id = a.cliente_id
	WHERE ($1::text = '' OR a.tipo = $1)
	  AND ($2::text = '' OR a.prioridad = $2)
	  AND ($3::boolean IS NULL OR a.resuelta = $3)
	ORDER BY a.fecha DESC, a.id DESC`

	rows, err := r.q.Query(ctx, query, f.Tipo, f.Prioridad, f.Resuelta)
	if err != nil {
		return nil, fmt.Errorf("list alertas: %w", err)
	}
	defer rows.Close()

	var out []repository.AlertaConCliente
	for rows.Next() {
		var ac repository.AlertaConCliente
		var contratoID, facturaID *string
		if err := rows.Scan(&ac.ID, &ac.Tipo, &ac.ClienteID, &contratoID, &facturaID, &ac.Mensaje, &ac.Fecha,
			&ac.Prioridad, &ac.Resuelta, &ac.CreatedAt, &ac.ClienteNombre); err != nil {
			return nil, fmt.Errorf("scan alerta: %w", err)
		}
		ac.ContratoID = deref(contratoID)
		ac.FacturaID = deref(facturaID)
		out = append(out, ac)
	}
	return out, rows.Err()
}

// Resolver marca la alerta como resuelta.
func (r *AlertaRepo) Resolver(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `UPDATE alertas SET resuelta = true WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("resolver alerta: %w", err)
	}
	return expectOne(tag)
}

// ExistePendienteContrato indica si el contrato ya tiene una alerta de vencimiento sin resolver.
func (r *AlertaRepo) ExistePendienteContrato(ctx context.Context, contratoID string) (bool, error) {
	return r.existe(ctx, `
		SELECT EXISTS (SELECT 1 FROM alertas WHERE tipo = $1 AND contrato_id = $2 AND NOT resuelta)`,
		entity.AlertaContrato, contratoID)
}

// ExistePendienteFactura indica si la factura ya tiene una alerta de pago sin resolver.
func (r *AlertaRepo) ExistePendienteFactura(ctx context.Context, facturaID string) (bool, error) {
	return r.existe(ctx, `
		SELECT EXISTS (SELECT 1 FROM alertas WHERE tipo = $1 AND factura_id = $2 AND NOT resuelta)`,
		entity.AlertaPago, facturaID)
}

func (r *AlertaRepo) existe(ctx context.Context, query string, args ...any) (bool, error) {
	var ok bool
	if err := r.q.QueryRow(ctx, query, args...).Scan(&ok); err != nil {
		return false, fmt.Errorf("buscar alerta pendiente: %w", err)
	}
	return ok, nil
}
