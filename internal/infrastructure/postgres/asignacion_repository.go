package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Banos-api/internal/domain/entity"
	"github.com/jhoicas/Banos-api/internal/domain/repository"
)

var _ repository.AsignacionRepository = (*AsignacionRepo)(nil)

// AsignacionRepo implementación de AsignacionRepository sobre banos_contratos.
type AsignacionRepo struct {
	q Querier
}

// NewAsignacionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAsignacionRepository(q Querier) *AsignacionRepo {
	return &AsignacionRepo{q: q}
}

// CreateMany inserta las asignaciones en un solo batch y completa sus IDs.
// Una asignación repetida (mismo baño y contrato) se ignora.
func (r *AsignacionRepo) CreateMany(ctx context.Context, asignaciones []*entity.BanoContrato) error {
	if len(asignaciones) == 0 {
		return nil
	}
	const query = `
		INSERT INTO banos_contratos (bano_id, contrato_id, fecha_inicio, fecha_fin)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (bano_id, contrato_id) DO NOTHING
		RETURNING id`

	batch := &pgx.Batch{}
	for _, a := range asignaciones {
		batch.Queue(query, a.BanoID, a.ContratoID, a.FechaInicio, a.FechaFin)
	}
	br := r.q.SendBatch(ctx, batch)
	defer br.Close()

	for _, a := range asignaciones {
		rows, err := br.Query()
		if err != nil {
			return mapWriteError("insert asignacion", err)
		}
		for rows.Next() {
			if err := rows.Scan(&a.ID); err != nil {
				rows.Close()
				return fmt.Errorf("scan asignacion: %w", err)
			}
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return mapWriteError("insert asignacion", err)
		}
	}
	return br.Close()
}

// ListByContrato baños asignados al contrato con su estado actual.
func (r *AsignacionRepo) ListByContrato(ctx context.Context, contratoID string) ([]repository.AsignacionConBano, error) {
	const query = `
	SELECT bc.id, bc.bano_id, bc.contrato_id, bc.fecha_inicio, bc.fecha_fin, b.estado, b.ubicacion
	FROM banos_contratos bc
	JOIN banos b ON b.id = bc.bano_id
	WHERE bc.contrato_id = $1
	ORDER BY bc.bano_id`

	rows, err := r.q.Query(ctx, query, contratoID)
	if err != nil {
		return nil, fmt.Errorf("list asignaciones: %w", err)
	}
	defer rows.Close()

	var out []repository.AsignacionConBano
	for rows.Next() {
		var a repository.AsignacionConBano
		if err := rows.Scan(&a.ID, &a.BanoID, &a.ContratoID, &a.FechaInicio, &a.FechaFin, &a.Estado, &a.Ubicacion); err != nil {
			return nil, fmt.Errorf("scan asignacion: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// BanoIDsByContrato IDs de los baños asignados al contrato.
func (r *AsignacionRepo) BanoIDsByContrato(ctx context.Context, contratoID string) ([]string, error) {
	rows, err := r.q.Query(ctx, `SELECT bano_id FROM banos_contratos WHERE contrato_id = $1 ORDER BY bano_id`, contratoID)
	if err != nil {
		return nil, fmt.Errorf("list banos de contrato: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("scan banos de contrato: %w", err)
	}
	return ids, nil
}

// ActualizarFechas acompaña un cambio de fechas del contrato.
func (r *AsignacionRepo) ActualizarFechas(ctx context.Context, contratoID string, antes, despues entity.Periodo) error {
	const query = `
	UPDATE banos_contratos SET fecha_inicio = $4, fecha_fin = $5
	WHERE contrato_id = $1 AND fecha_inicio = $2 AND fecha_fin = $3`

	_, err := r.q.Exec(ctx, query, contratoID, antes.Inicio, antes.Fin, despues.Inicio, despues.Fin)
	if err != nil {
		return fmt.Errorf("update fechas asignaciones: %w", err)
	}
	return nil
}

// DeleteByContratoAndBanos quita del contrato las asignaciones de los baños indicados.
func (r *AsignacionRepo) DeleteByContratoAndBanos(ctx context.Context, contratoID string, banoIDs []string) error {
	if len(banoIDs) == 0 {
		return nil
	}
	_, err := r.q.Exec(ctx, `DELETE FROM banos_contratos WHERE contrato_id = $1 AND bano_id = ANY($2)`, contratoID, banoIDs)
	if err != nil {
		return fmt.Errorf("delete asignaciones: %w", err)
	}
	return nil
}
