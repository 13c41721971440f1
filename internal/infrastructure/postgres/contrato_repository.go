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

var _ repository.ContratoRepository = (*ContratoRepo)(nil)

// ContratoRepo implementación de ContratoRepository.
type ContratoRepo struct {
	q Querier
}

// NewContratoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewContratoRepository(q Querier) *ContratoRepo {
	return &ContratoRepo{q: q}
}

const contratoColumns = `c.id, c.cliente_id, c.fecha_inicio, c.fecha_fin, c.valor_diario,
	c.direccion_entrega, c.observaciones, c.created_at, c.updated_at`

func contratoDest(c *entity.Contrato) []any {
	return []any{&c.ID, &c.ClienteID, &c.FechaInicio, &c.FechaFin, &c.ValorDiario,
		&c.DireccionEntrega, &c.Observaciones, &c.CreatedAt, &c.UpdatedAt}
}

// Create persiste un contrato. El cliente debe existir (si no, domain.ErrConflict).
func (r *ContratoRepo) Create(ctx context.Context, c *entity.Contrato) error {
	query := `
		INSERT INTO contratos (id, cliente_id, fecha_inicio, fecha_fin, valor_diario,
		                       direccion_entrega, observaciones, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query, c.ID, c.ClienteID, c.FechaInicio, c.FechaFin, c.ValorDiario,
		c.DireccionEntrega, c.Observaciones, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return mapWriteError("insert contrato", err)
	}
	return nil
}

// GetByID obtiene un contrato por ID.
func (r *ContratoRepo) GetByID(ctx context.Context, id string) (*entity.Contrato, error) {
	var c entity.Contrato
	err := r.q.QueryRow(ctx, `SELECT `+contratoColumns+` FROM contratos c WHERE c.id = $1`, id).Scan(contratoDest(&c)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contrato: %w", err)
	}
	return &c, nil
}

// List contratos con cliente y cantidad de baños, el más reciente primero.
func (r *ContratoRepo) List(ctx context.Context, f repository.ContratoFiltro) ([]repository.ContratoConCliente, error) {
	query := `
	SELECT ` + contratoColumns + `, cl.nombre,
	       (SELECT COUNT(*) FROM banos_contratos bc WHERE bc.contrato_id = c.id)
	FROM contratos c
	JOIN clientes cl ON cl.id = c.cliente_id
	WHERE ($1::bigint = 0 OR c.cliente_id = $1)
	  AND ($2::text = '' OR c.id ILIKE '%' || $2 || '%' OR cl.nombre ILIKE '%' || $2 || '%')
	ORDER BY c.fecha_inicio DESC, c.id`

	rows, err := r.q.Query(ctx, query, f.ClienteID, patronLike(f.Query))
	if err != nil {
		return nil, fmt.Errorf("list contratos: %w", err)
	}
	defer rows.Close()

	var out []repository.ContratoConCliente
	for rows.Next() {
		var cc repository.ContratoConCliente
		dest := append(contratoDest(&cc.Contrato), &cc.ClienteNombre, &cc.CantidadBanos)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan contrato: %w", err)
		}
		out = append(out, cc)
	}
	return out, rows.Err()
}

// ListByCliente contratos del cliente, el más reciente primero.
func (r *ContratoRepo) ListByCliente(ctx context.Context, clienteID int64) ([]*entity.Contrato, error) {
	return r.list(ctx, "list contratos cliente",
		`SELECT `+contratoColumns+` FROM contratos c WHERE c.cliente_id = $1 ORDER BY c.fecha_inicio DESC`, clienteID)
}

// ListVencenEntre contratos con desde <= fecha_fin <= hasta.
func (r *ContratoRepo) ListVencenEntre(ctx context.Context, desde, hasta time.Time) ([]*entity.Contrato, error) {
	return r.list(ctx, "list contratos por vencer",
		`SELECT `+contratoColumns+` FROM contratos c WHERE c.fecha_fin BETWEEN $1 AND $2 ORDER BY c.fecha_fin, c.id`,
		desde, hasta)
}

func (r *ContratoRepo) list(ctx context.Context, op, query string, args ...any) ([]*entity.Contrato, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	var list []*entity.Contrato
	for rows.Next() {
		var c entity.Contrato
		if err := rows.Scan(contratoDest(&c)...); err != nil {
			return nil, fmt.Errorf("scan contrato: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza los datos del contrato (no toca las asignaciones).
func (r *ContratoRepo) Update(ctx context.Context, c *entity.Contrato) error {
	query := `
		UPDATE contratos
		SET cliente_id = $2, fecha_inicio = $3, fecha_fin = $4, valor_diario = $5,
		    direccion_entrega = $6, observaciones = $7, updated_at = $8
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, c.ID, c.ClienteID, c.FechaInicio, c.FechaFin, c.ValorDiario,
		c.DireccionEntrega, c.Observaciones, c.UpdatedAt)
	if err != nil {
		return mapWriteError("update contrato", err)
	}
	return expectOne(tag)
}

// Delete elimina el contrato; las asignaciones y alertas asociadas caen en cascada.
func (r *ContratoRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM contratos WHERE id = $1`, id)
	if err != nil {
		return mapWriteError("delete contrato", err)
	}
	return expectOne(tag)
}
