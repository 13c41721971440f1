package repository

import (
	"context"

	"github.com/jhoicas/Banos-api/internal/domain/entity"
)

// AlertaFiltro filtros del listado de alertas. Resuelta nil no filtra.
type AlertaFiltro struct {
	Tipo      string
	Prioridad string
	Resuelta  *bool
}

// AlertaConCliente alerta con el nombre del cliente.
type AlertaConCliente struct {
	entity.Alerta
	ClienteNombre string
}

// AlertaRepository puerto de persistencia para Alerta.
type AlertaRepository interface {
	Create(ctx context.Context, a *entity.Alerta) error
	List(ctx context.Context, f AlertaFiltro) ([]AlertaConCliente, error)
	// Resolver marca la alerta como resuelta; domain.ErrNotFound si no existe.
	Resolver(ctx context.Context, id int64) error
	ExistePendienteContrato(ctx context.Context, contratoID string) (bool, error)
	ExistePendienteFactura(ctx context.Context, facturaID string) (bool, error)
}
