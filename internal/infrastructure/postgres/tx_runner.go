package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Banos-api/internal/application/seed"
	"github.com/jhoicas/Banos-api/internal/application/usecase"
	"github.com/jhoicas/Banos-api/internal/domain/repository"
)

var (
	_ usecase.ContratoTxRunner = (*TxRunner)(nil)
	_ usecase.PagoTxRunner     = (*TxRunner)(nil)
	_ usecase.ClienteTxRunner  = (*TxRunner)(nil)
	_ seed.TxRunner            = (*TxRunner)(nil)
)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// inTx inicia una transacción, ejecuta fn y hace Commit o Rollback.
func (r *TxRunner) inTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunContratos alta, modificación o baja de un contrato junto con sus asignaciones y el estado de los baños.
func (r *TxRunner) RunContratos(ctx context.Context, fn func(
	contratoRepo repository.ContratoRepository,
	asignacionRepo repository.AsignacionRepository,
	banoRepo repository.BanoRepository,
) error) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		return fn(NewContratoRepository(tx), NewAsignacionRepository(tx), NewBanoRepository(tx))
	})
}

// RunPagos registro o baja de un pago junto con el estado de su factura.
func (r *TxRunner) RunPagos(ctx context.Context, fn func(
	pagoRepo repository.PagoRepository,
	facturaRepo repository.FacturaRepository,
) error) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		return fn(NewPagoRepository(tx), NewFacturaRepository(tx))
	})
}

// RunClientes baja de un cliente junto con la liberación de los baños de sus contratos.
func (r *TxRunner) RunClientes(ctx context.Context, fn func(
	clienteRepo repository.ClienteRepository,
	contratoRepo repository.ContratoRepository,
	asignacionRepo repository.AsignacionRepository,
	banoRepo repository.BanoRepository,
) error) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		return fn(NewClienteRepository(tx), NewContratoRepository(tx), NewAsignacionRepository(tx), NewBanoRepository(tx))
	})
}

// RunSeed todos los repos en una transacción (la carga de ejemplo es todo o nada).
func (r *TxRunner) RunSeed(ctx context.Context, fn func(repos repository.Repositorios) error) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		return fn(repository.Repositorios{
			Clientes:     NewClienteRepository(tx),
			Banos:        NewBanoRepository(tx),
			Contratos:    NewContratoRepository(tx),
			Asignaciones: NewAsignacionRepository(tx),
			Facturas:     NewFacturaRepository(tx),
			Remitos:      NewRemitoRepository(tx),
			Pagos:        NewPagoRepository(tx),
			Alertas:      NewAlertaRepository(tx),
			Seed:         NewSeedRepository(tx),
		})
	})
}
