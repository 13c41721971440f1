package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Banos-api/internal/domain/entity"
	"github.com/jhoicas/Banos-api/internal/domain/repository"
)

var _ repository.PagoRepository = (*PagoRepo)(nil)

// PagoRepo implementación de PagoRepository.
type PagoRepo struct {
	q Querier
}

// NewPagoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPagoRepository(q Querier) *PagoRepo {
	return &PagoRepo{q: q}
}

const pagoColumns = `p.id, p.cliente_id, p.factura_id, p.remito_id, p.fecha, p.monto, p.metodo_pago,
	p.comprobante, p.observaciones, p.created_at, p.updated_at`

type pagoRow struct {
	p         entity.Pago
	facturaID *string
	remitoID  *string
}

func (x *pagoRow) dest() []any {
	return []any{&x.p.ID, &x.p.ClienteID, &x.facturaID, &x.remitoID, &x.p.Fecha, &x.p.Monto, &x.p.MetodoPago,
		&x.p.Comprobante, &x.p.Observaciones, &x.p.CreatedAt, &x.p.UpdatedAt}
}

func (x *pagoRow) entity() entity.Pago {
	x.p.FacturaID = deref(x.facturaID)
	x.p.RemitoID = deref(x.remitoID)
	return x.p
}

// Create persiste un pago y completa su ID.
func (r *PagoRepo) Create(ctx context.Context, p *entity.Pago) error {
	query := `
		INSERT INTO pagos (cliente_id, factura_id, remito_id, fecha, monto, metodo_pago, comprobante, observaciones,
		                   created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, p.ClienteID, nullIfEmpty(p.FacturaID), nullIfEmpty(p.RemitoID), p.Fecha, p.Monto,
		p.MetodoPago, p.Comprobante, p.Observaciones, p.CreatedAt, p.UpdatedAt).Scan(&p.ID)
	if err != nil {
		return mapWriteError("insert pago", err)
	}
	return nil
}

// GetByID obtiene un pago por ID.
func (r *PagoRepo) GetByID(ctx context.Context, id int64) (*entity.Pago, error) {
	var row pagoRow
	err := r.q.QueryRow(ctx, `SELECT `+pagoColumns+` FROM pagos p WHERE p.id = $1`, id).Scan(row.dest()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pago: %w", err)
	}
	p := row.entity()
	return &p, nil
}

// List pagos con cliente y monto de la factura, el más reciente primero.
func (r *PagoRepo) List(ctx context.Context, f repository.PagoFiltro) ([]repository.PagoConCliente, error) {
	query := `
	SELECT ` + pagoColumns + `, cl.nombre, fa.monto
	FROM pagos p
	JOIN clientes cl ON cl.id = p.cliente_id
	LEFT JOIN facturas fa ON fa.id = p.factura_id
	WHERE ($1::bigint = 0 OR p.cliente_id = $1)
	  AND ($2::text = '' OR p.factura_id = $2)
	  AND ($3::text = '' OR p.comprobante ILIKE '%' || $3 || '%' OR cl.nombre ILIKE '%' || $3 || '%')
	ORDER BY p.fecha DESC, p.id DESC`

	rows, err := r.q.Query(ctx, query, f.ClienteID, f.FacturaID, patronLike(f.Query))
	if err != nil {
		return nil, fmt.Errorf("list pagos: %w", err)
	}
	defer rows.Close()

	var out []repository.PagoConCliente
	for rows.Next() {
		var row pagoRow
		var pc repository.PagoConCliente
		if err := rows.Scan(append(row.dest(), &pc.ClienteNombre, &pc.FacturaMonto)...); err != nil {
			return nil, fmt.Errorf("scan pago: %w", err)
		}
		pc.Pago = row.entity()
		out = append(out, pc)
	}
	return out, rows.Err()
}

// Update actualiza un pago.
func (r *PagoRepo) Update(ctx context.Context, p *entity.Pago) error {
	query := `
		UPDATE pagos
		SET cliente_id = $2, factura_id = $3, remito_id = $4, fecha = $5, monto = $6, metodo_pago = $7,
		    comprobante = $8, observaciones = $9, updated_at = $10
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, p.ID, p.ClienteID, nullIfEmpty(p.FacturaID), nullIfEmpty(p.RemitoID), p.Fecha,
		p.Monto, p.MetodoPago, p.Comprobante, p.Observaciones, p.UpdatedAt)
	if err != nil {
		return mapWriteError("update pago", err)
	}
	return expectOne(tag)
}

// Delete elimina un pago.
func (r *PagoRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM pagos WHERE id = $1`, id)
	if err != nil {
		return mapWriteError("delete pago", err)
	}
	return expectOne(tag)
}
