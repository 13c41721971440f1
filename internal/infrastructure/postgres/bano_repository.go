package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Banos-api/internal/domain/entity"
	"github.com/jhoicas/Banos-api/internal/domain/repository"
)

var _ repository.BanoRepository = (*BanoRepo)(nil)

// BanoRepo implementación de BanoRepository.
type BanoRepo struct {
	q Querier
}

// NewBanoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBanoRepository(q Querier) *BanoRepo {
	return &BanoRepo{q: q}
}

const banoColumns = `id, estado, ubicacion, observaciones, created_at, updated_at`

func scanBano(row pgx.Row) (*entity.Bano, error) {
	var b entity.Bano
	if err := row.Scan(&b.ID, &b.Estado, &b.Ubicacion, &b.Observaciones, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, err
	}
	return &b, nil
}

// Create persiste un baño. ID repetido -> domain.ErrDuplicate.
func (r *BanoRepo) Create(ctx context.Context, b *entity.Bano) error {
	query := `
		INSERT INTO banos (id, estado, ubicacion, observaciones, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query, b.ID, b.Estado, b.Ubicacion, b.Observaciones, b.CreatedAt, b.UpdatedAt)
	if err != nil {
		return mapWriteError("insert bano", err)
	}
	return nil
}

// GetByID obtiene un baño por ID.
func (r *BanoRepo) GetByID(ctx context.Context, id string) (*entity.Bano, error) {
	b, err := scanBano(r.q.QueryRow(ctx, `SELECT `+banoColumns+` FROM banos WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bano: %w", err)
	}
	return b, nil
}

// List baños ordenados por ID.
func (r *BanoRepo) List(ctx context.Context, f repository.BanoFiltro) ([]*entity.Bano, error) {
	query := `
		SELECT ` + banoColumns + `
		FROM banos
		WHERE ($1::text = '' OR estado = $1)
		  AND ($2::text = '' OR id ILIKE '%' || $2 || '%')
		ORDER BY id`
	return r.list(ctx, "list banos", query, f.Estado, patronLike(f.Query))
}

// GetByIDs baños existentes de la lista.
func (r *BanoRepo) GetByIDs(ctx context.Context, ids []string) ([]*entity.Bano, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return r.list(ctx, "get banos", `SELECT `+banoColumns+` FROM banos WHERE id = ANY($1) ORDER BY id`, ids)
}

func (r *BanoRepo) list(ctx context.Context, op, query string, args ...any) ([]*entity.Bano, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	var list []*entity.Bano
	for rows.Next() {
		b, err := scanBano(rows)
		if err != nil {
			return nil, fmt.Errorf("scan bano: %w", err)
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

// Update actualiza estado, ubicación y observaciones.
func (r *BanoRepo) Update(ctx context.Context, b *entity.Bano) error {
	query := `UPDATE banos SET estado = $2, ubicacion = $3, observaciones = $4, updated_at = $5 WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, b.ID, b.Estado, b.Ubicacion, b.Observaciones, b.UpdatedAt)
	if err != nil {
		return mapWriteError("update bano", err)
	}
	return expectOne(tag)
}

// Delete elimina un baño y su historial de asignaciones.
func (r *BanoRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM banos WHERE id = $1`, id)
	if err != nil {
		return mapWriteError("delete bano", err)
	}
	return expectOne(tag)
}

// SetEstado cambia estado y ubicación de varios baños.
func (r *BanoRepo) SetEstado(ctx context.Context, ids []string, estado, ubicacion string) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.q.Exec(ctx,
		`UPDATE banos SET estado = $2, ubicacion = $3, updated_at = now() WHERE id = ANY($1)`,
		ids, estado, ubicacion)
	if err != nil {
		return fmt.Errorf("set estado banos: %w", err)
	}
	return nil
}

// Historial asignaciones del baño, la más reciente primero.
func (r *BanoRepo) Historial(ctx context.Context, banoID string) ([]repository.BanoHistorial, error) {
	const query = `
	SELECT bc.id, c.id, bc.fecha_inicio, bc.fecha_fin, c.valor_diario, cl.id, cl.nombre
	FROM banos_contratos bc
	JOIN contratos c  ON c.id  = bc.contrato_id
	JOIN clientes  cl ON cl.id = c.cliente_id
	WHERE bc.bano_id = $1
	ORDER BY bc.fecha_inicio DESC, bc.id DESC`

	rows, err := r.q.Query(ctx, query, banoID)
	if err != nil {
		return nil, fmt.Errorf("historial bano: %w", err)
	}
	defer rows.Close()

	var out []repository.BanoHistorial
	for rows.Next() {
		var h repository.BanoHistorial
		if err := rows.Scan(&h.AsignacionID, &h.ContratoID, &h.FechaInicio, &h.FechaFin,
			&h.ValorDiario, &h.ClienteID, &h.ClienteNombre); err != nil {
			return nil, fmt.Errorf("scan historial bano: %w", err)
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

// ListAlquilados asignación más reciente de cada baño Alquilado, ordenado por cliente y baño.
func (r *BanoRepo) ListAlquilados(ctx context.Context) ([]repository.BanoAlquilado, error) {
	const query = `
	SELECT bano_id, contrato_id, fecha_inicio, fecha_fin, valor_diario, cliente_id, cliente_nombre
	FROM (
	    SELECT DISTINCT ON (b.id)
	        b.id AS bano_id, c.id AS contrato_id, bc.fecha_inicio, bc.fecha_fin, c.valor_diario,
	        cl.id AS cliente_id, cl.nombre AS cliente_nombre
	    FROM banos b
	    JOIN banos_contratos bc ON bc.bano_id = b.id
	    JOIN contratos       c  ON c.id       = bc.contrato_id
	    JOIN clientes        cl ON cl.id      = c.cliente_id
	    WHERE b.estado = $1
	    ORDER BY b.id, bc.fecha_inicio DESC, bc.id DESC
	) t
	ORDER BY cliente_nombre, bano_id`

	rows, err := r.q.Query(ctx, query, entity.BanoAlquilado)
	if err != nil {
		return nil, fmt.Errorf("list banos alquilados: %w", err)
	}
	defer rows.Close()

	var out []repository.BanoAlquilado
	for rows.Next() {
		var a repository.BanoAlquilado
		if err := rows.Scan(&a.BanoID, &a.ContratoID, &a.FechaInicio, &a.FechaFin,
			&a.ValorDiario, &a.ClienteID, &a.ClienteNombre); err != nil {
			return nil, fmt.Errorf("scan bano alquilado: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
