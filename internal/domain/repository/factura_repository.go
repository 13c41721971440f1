package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Banos-api/internal/domain/entity"
)

// FacturaFiltro filtros del listado de facturas. Los campos vacíos no filtran.
type FacturaFiltro struct {
	ClienteID  int64
	ContratoID string
	Estado     string
	// Query busca en el id de la factura y en el nombre del cliente.
	Query string
}

// FacturaConCliente factura con el nombre del cliente.
type FacturaConCliente struct {
	entity.Factura
	ClienteNombre string
}

// FacturaRepository puerto de persistencia para Factura.
type FacturaRepository interface {
	Create(ctx context.Context, f *entity.Factura) error
	GetByID(ctx context.Context, id string) (*entity.Factura, error)
	List(ctx context.Context, f FacturaFiltro) ([]FacturaConCliente, error)
	Update(ctx context.Context, f *entity.Factura) error
	// SetEstado devuelve domain.ErrNotFound si la factura no existe.
	SetEstado(ctx context.Context, id, estado string) error
	Delete(ctx context.Context, id string) error
	// ListPendientesAntesDe facturas Pendiente con fecha < limite.
	ListPendientesAntesDe(ctx context.Context, limite time.Time) ([]*entity.Factura, error)
}
