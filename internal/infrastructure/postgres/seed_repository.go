package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Banos-api/internal/domain/repository"
)

var _ repository.SeedRepository = (*SeedRepo)(nil)

// SeedRepo operaciones masivas para la carga de datos de ejemplo.
type SeedRepo struct {
	q Querier
}

// NewSeedRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSeedRepository(q Querier) *SeedRepo {
	return &SeedRepo{q: q}
}

// Limpiar vacía todas las tablas del negocio y reinicia las secuencias.
func (r *SeedRepo) Limpiar(ctx context.Context) error {
	_, err := r.q.Exec(ctx, `
		TRUNCATE alertas, pagos, remitos, facturas, banos_contratos, contratos, banos, clientes
		RESTART IDENTITY CASCADE`)
	if err != nil {
		return fmt.Errorf("truncate: %w", err)
	}
	return nil
}
