package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Banos-api/internal/domain/entity"
	"github.com/jhoicas/Banos-api/internal/domain/repository"
)

var _ repository.RemitoRepository = (*RemitoRepo)(nil)

// RemitoRepo implementación de RemitoRepository.
type RemitoRepo struct {
	q Querier
}

// NewRemitoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRemitoRepository(q Querier) *RemitoRepo {
	return &RemitoRepo{q: q}
}

const remitoColumns = `r.id, r.cliente_id, r.contrato_id, r.fecha, r.tipo, r.cantidad, r.observaciones, r.created_at, r.updated_at`

type remitoRow struct {
	r          entity.Remito
	contratoID *string
}

func (x *remitoRow) dest() []any {
	return []any{&x.r.ID, &x.r.ClienteID, &x.contratoID, &x.r.Fecha, &x.r.Tipo, &x.r.Cantidad,
		&x.r.Observaciones, &x.r.CreatedAt, &x.r.UpdatedAt}
}

func (x *remitoRow) entity() entity.Remito {
	x.r.ContratoID = deref(x.contratoID)
	return x.r
}

// Create persiste un remito.
func (r *RemitoRepo) Create(ctx context.Context, rem *entity.Remito) error {
	query := `
		INSERT INTO remitos (id, cliente_id, contrato_id, fecha, tipo, cantidad, observaciones, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query, rem.ID, rem.ClienteID, nullIfEmpty(rem.ContratoID), rem.Fecha, rem.Tipo,
		rem.Cantidad, rem.Observaciones, rem.CreatedAt, rem.UpdatedAt)
	if err != nil {
		return mapWriteError("insert remito", err)
	}
	return nil
}

// GetByID obtiene un remito por ID.
func (r *RemitoRepo) GetByID(ctx context.Context, id string) (*entity.Remito, error) {
	var row remitoRow
	err := r.q.QueryRow(ctx, `SELECT `+remitoColumns+` FROM remitos r WHERE r.id = $1`, id).Scan(row.dest()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get remito: %w", err)
	}
	rem := row.entity()
	return &rem, nil
}

// List remitos con nombre de cliente, el más reciente primero.
func (r *RemitoRepo) List(ctx context.Context, f repository.RemitoFiltro) ([]repository.RemitoConCliente, error) {
	query := `
	SELECT ` + remitoColumns + `, cl.nombre
	FROM remitos r
	JOIN clientes cl ON cl.id = r.cliente_id
	WHERE ($1::bigint = 0 OR r.cliente_id = $1)
	  AND ($2::text = '' OR r.contrato_id = $2)
	  AND ($3::text = '' OR r.tipo = $3)
	  AND ($4::text = '' OR r.id ILIKE '%' || $4 || '%' OR cl.nombre ILIKE '%' || $4 || '%')
	ORDER BY r.fecha DESC, r.id DESC`

	rows, err := r.q.Query(ctx, query, f.ClienteID, f.ContratoID, f.Tipo, patronLike(f.Query))
	if err != nil {
		return nil, fmt.Errorf("list remitos: %w", err)
	}
	defer rows.Close()

	var out []repository.RemitoConCliente
	for rows.Next() {
		var row remitoRow
		var nombre string
		if err := rows.Scan(append(row.dest(), &nombre)...); err != nil {
			return nil, fmt.Errorf("scan remito: %w", err)
		}
		out = append(out, repository.RemitoConCliente{Remito: row.entity(), ClienteNombre: nombre})
	}
	return out, rows.Err()
}

// Update actualiza un remito.
func (r *RemitoRepo) Update(ctx context.Context, rem *entity.Remito) error {
	query := `
		UPDATE remitos
		SET cliente_id = $2, contrato_id = $3, fecha = $4, tipo = $5, cantidad = $6, observaciones = $7, updated_at = $8
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, rem.ID, rem.ClienteID, nullIfEmpty(rem.ContratoID), rem.Fecha, rem.Tipo,
		rem.Cantidad, rem.Observaciones, rem.UpdatedAt)
	if err != nil {
		return mapWriteError("update remito", err)
	}
	return expectOne(tag)
}

// Delete elimina un remito.
func (r *RemitoRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM remitos WHERE id = $1`, id)
	if err != nil {
		return mapWriteError("delete remito", err)
	}
	return expectOne(tag)
}
