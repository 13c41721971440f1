package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Banos-api/internal/domain/entity"
	"github.com/jhoicas/Banos-api/internal/domain/repository"
)

var _ repository.FacturaRepository = (*FacturaRepo)(nil)

// FacturaRepo implementación de FacturaRepository.
type FacturaRepo struct {
	q Querier
}

// NewFacturaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewFacturaRepository(q Querier) *FacturaRepo {
	return &FacturaRepo{q: q}
}

const facturaColumns = `f.id, f.cliente_id, f.contrato_id, f.fecha, f.monto, f.estado, f.created_at, f.updated_at`

// facturaRow destino de scan con contrato_id nullable.
type facturaRow struct {
	f          entity.Factura
	contratoID *string
}

func (r *facturaRow) dest() []any {
	return []any{&r.f.ID, &r.f.ClienteID, &r.contratoID, &r.f.Fecha, &r.f.Monto, &r.f.Estado, &r.f.CreatedAt, &r.f.UpdatedAt}
}

func (r *facturaRow) entity() entity.Factura {
	r.f.ContratoID = deref(r.contratoID)
	return r.f
}

// Create persiste una factura.
func (r *FacturaRepo) Create(ctx context.Context, f *entity.Factura) error {
	query := `
		INSERT INTO facturas (id, cliente_id, contrato_id, fecha, monto, estado, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query, f.ID, f.ClienteID, nullIfEmpty(f.ContratoID), f.Fecha, f.Monto, f.Estado,
		f.CreatedAt, f.UpdatedAt)
	if err != nil {
		return mapWriteError("insert factura", err)
	}
	return nil
}

// GetByID obtiene una factura por ID.
func (r *FacturaRepo) GetByID(ctx context.Context, id string) (*entity.Factura, error) {
	var row facturaRow
	err := r.q.QueryRow(ctx, `SELECT `+facturaColumns+` FROM facturas f WHERE f.id = $1`, id).Scan(row.dest()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get factura: %w", err)
	}
	f := row.entity()
	return &f, nil
}

// List facturas con nombre de cliente, la más reciente primero.
func (r *FacturaRepo) List(ctx context.Context, filtro repository.FacturaFiltro) ([]repository.FacturaConCliente, error) {
	query := `
	SELECT ` + facturaColumns + `, cl.nombre
	FROM facturas f
	JOIN clientes cl ON cl.id = f.cliente_id
	WHERE ($1::bigint = 0 OR f.cliente_id = $1)
	  AND ($2::text = '' OR f.contrato_id = $2)
	  AND ($3::text = '' OR f.estado = $3)
	  AND ($4::text = '' OR f.id ILIKE '%' || $4 || '%' OR cl.nombre ILIKE '%' || $4 || '%')
	ORDER BY f.fecha DESC, f.id DESC`

	rows, err := r.q.Query(ctx, query, filtro.ClienteID, filtro.ContratoID, filtro.Estado, patronLike(filtro.Query))
	if err != nil {
		return nil, fmt.Errorf("list facturas: %w", err)
	}
	defer rows.Close()

	var out []repository.FacturaConCliente
	for rows.Next() {
		var row facturaRow
		var nombre string
		if err := rows.Scan(append(row.dest(), &nombre)...); err != nil {
			return nil, fmt.Errorf("scan factura: %w", err)
		}
		out = append(out, repository.FacturaConCliente{Factura: row.entity(), ClienteNombre: nombre})
	}
	return out, rows.Err()
}

// ListPendientesAntesDe facturas Pendiente emitidas antes de limite.
func (r *FacturaRepo) ListPendientesAntesDe(ctx context.Context, limite time.Time) ([]*entity.Factura, error) {
	query := `SELECT ` + facturaColumns + ` FROM facturas f WHERE f.estado = $1 AND f.fecha < $2 ORDER BY f.fecha, f.id`
	rows, err := r.q.Query(ctx, query, entity.FacturaPendiente, limite)
	if err != nil {
		return nil, fmt.Errorf("list facturas vencidas: %w", err)
	}
	defer rows.Close()

	var out []*entity.Factura
	for rows.Next() {
		var row facturaRow
		if err := rows.Scan(row.dest()...); err != nil {
			return nil, fmt.Errorf("scan factura: %w", err)
		}
		f := row.entity()
		out = append(out, &f)
	}
	return out, rows.Err()
}

// Update actualiza una factura.
func (r *FacturaRepo) Update(ctx context.Context, f *entity.Factura) error {
	query := `
		UPDATE facturas
		SET cliente_id = $2, contrato_id = $3, fecha = $4, monto = $5, estado = $6, updated_at = $7
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, f.ID, f.ClienteID, nullIfEmpty(f.ContratoID), f.Fecha, f.Monto, f.Estado, f.UpdatedAt)
	if err != nil {
		return mapWriteError("update factura", err)
	}
	return expectOne(tag)
}

// SetEstado cambia solo el estado de la factura.
func (r *FacturaRepo) SetEstado(ctx context.Context, id, estado string) error {
	tag, err := r.q.Exec(ctx, `UPDATE facturas SET estado = $2, updated_at = now() WHERE id = $1`, id, estado)
	if err != nil {
		return fmt.Errorf("set estado factura: %w", err)
	}
	return expectOne(tag)
}

// Delete elimina una factura; los pagos imputados quedan sin factura.
func (r *FacturaRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM facturas WHERE id = $1`, id)
	if err != nil {
		return mapWriteError("delete factura", err)
	}
	return expectOne(tag)
}
