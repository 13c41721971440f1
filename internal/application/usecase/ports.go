package usecase

import (
	"context"

	"github.com/jhoicas/Banos-api/internal/domain/repository"
)

// ContratoTxRunner ejecuta una función dentro de una transacción con los repos de contratos,
// asignaciones y baños.
type ContratoTxRunner interface {
	RunContratos(ctx context.Context, fn func(
		contratoRepo repository.ContratoRepository,
		asignacionRepo repository.AsignacionRepository,
		banoRepo repository.BanoRepository,
	) error) error
}

// PagoTxRunner ejecuta una función dentro de una transacción con los repos de pagos y facturas.
type PagoTxRunner interface {
	RunPagos(ctx context.Context, fn func(
		pagoRepo repository.PagoRepository,
		facturaRepo repository.FacturaRepository,
	) error) error
}

// ClienteTxRunner ejecuta la baja de un cliente con los repos que necesita para liberar sus baños.
type ClienteTxRunner interface {
	RunClientes(ctx context.Context, fn func(
		clienteRepo repository.ClienteRepository,
		contratoRepo repository.ContratoRepository,
		asignacionRepo repository.AsignacionRepository,
		banoRepo repository.BanoRepository,
	) error) error
}
