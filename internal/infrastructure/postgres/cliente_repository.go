package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Banos-api/internal/domain/entity"
	"github.com/jhoicas/Banos-api/internal/domain/repository"
)

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// ClienteRepo implementación de ClienteRepository (usable con pool o tx).
type ClienteRepo struct {
	q Querier
}

// NewClienteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

const clienteColumns = `id, nombre, cuit, telefono, direccion, email, created_at, updated_at`

func scanCliente(row pgx.Row) (*entity.Cliente, error) {
	var c entity.Cliente
	if err := row.Scan(&c.ID, &c.Nombre, &c.CUIT, &c.Telefono, &c.Direccion, &c.Email, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persiste un nuevo cliente y completa su ID.
func (r *ClienteRepo) Create(ctx context.Context, c *entity.Cliente) error {
	query := `
		INSERT INTO clientes (nombre, cuit, telefono, direccion, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		c.Nombre, c.CUIT, c.Telefono, c.Direccion, c.Email, c.CreatedAt, c.UpdatedAt,
	).Scan(&c.ID)
	if err != nil {
		return mapWriteError("insert cliente", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *ClienteRepo) GetByID(ctx context.Context, id int64) (*entity.Cliente, error) {
	c, err := scanCliente(r.q.QueryRow(ctx, `SELECT `+clienteColumns+` FROM clientes WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return c, nil
}

// List clientes ordenados por nombre; query busca en nombre, cuit y dirección.
func (r *ClienteRepo) List(ctx context.Context, query string) ([]*entity.Cliente, error) {
	sql := `
		SELECT ` + clienteColumns + `
		FROM clientes
		WHERE ($1::text = ''
		    OR nombre    ILIKE '%' || $1 || '%'
		    OR cuit      ILIKE '%' || $1 || '%'
		    OR direccion ILIKE '%' || $1 || '%')
		ORDER BY nombre`
	return r.list(ctx, "list clientes", sql, patronLike(query))
}

// ListRecientes últimos clientes dados de alta.
func (r *ClienteRepo) ListRecientes(ctx context.Context, limit int) ([]*entity.Cliente, error) {
	sql := `SELECT ` + clienteColumns + ` FROM clientes ORDER BY created_at DESC, id DESC LIMIT $1`
	return r.list(ctx, "list clientes recientes", sql, limit)
}

func (r *ClienteRepo) list(ctx context.Context, op, sql string, args ...any) ([]*entity.Cliente, error) {
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	var list []*entity.Cliente
	for rows.Next() {
		c, err := scanCliente(rows)
		if err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Update actualiza un cliente.
func (r *ClienteRepo) Update(ctx context.Context, c *entity.Cliente) error {
	query := `
		UPDATE clientes SET nombre = $2, cuit = $3, telefono = $4, direccion = $5, email = $6, updated_at = $7
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, c.ID, c.Nombre, c.CUIT, c.Telefono, c.Direccion, c.Email, c.UpdatedAt)
	if err != nil {
		return mapWriteError("update cliente", err)
	}
	return expectOne(tag)
}

// Delete elimina un cliente por ID (sus contratos, facturas, remitos, pagos y alertas caen en cascada).
func (r *ClienteRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM clientes WHERE id = $1`, id)
	if err != nil {
		return mapWriteError("delete cliente", err)
	}
	return expectOne(tag)
}
