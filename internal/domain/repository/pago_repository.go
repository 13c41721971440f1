package repository

import (
	"context"

	"github.com/jhoicas/Banos-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// PagoFiltro filtros del listado de pagos.
type PagoFiltro struct {
	ClienteID int64
	FacturaID string
	// Query busca en el comprobante y en el nombre del cliente.
	Query string
}

// PagoConCliente pago con nombre del cliente y monto de la factura imputada (si hay).
type PagoConCliente struct {
	entity.Pago
	ClienteNombre string
	FacturaMonto  *decimal.Decimal
}

// PagoRepository puerto de persistencia para Pago.
type PagoRepository interface {
	Create(ctx context.Context, p *entity.Pago) error
	GetByID(ctx context.Context, id int64) (*entity.Pago, error)
	List(ctx context.Context, f PagoFiltro) ([]PagoConCliente, error)
	Update(ctx context.Context, p *entity.Pago) error
	Delete(ctx context.Context, id int64) error
}
