package repository

import (
	"context"

	"github.com/jhoicas/Banos-api/internal/domain/entity"
)

// RemitoFiltro filtros del listado de remitos.
type RemitoFiltro struct {
	ClienteID  int64
	ContratoID string
	Tipo       string
	Query      string
}

// RemitoConCliente remito con el nombre del cliente.
type RemitoConCliente struct {
	entity.Remito
	ClienteNombre string
}

// RemitoRepository puerto de persistencia para Remito.
type RemitoRepository interface {
	Create(ctx context.Context, r *entity.Remito) error
	GetByID(ctx context.Context, id string) (*entity.Remito, error)
	List(ctx context.Context, f RemitoFiltro) ([]RemitoConCliente, error)
	Update(ctx context.Context, r *entity.Remito) error
	Delete(ctx context.Context, id string) error
}
