// Package seed carga los juegos de datos de ejemplo (básico y completo).
package seed

import (
	"context"
	"fmt"

	"github.com/jhoicas/Banos-api/internal/application/dto"
	"github.com/jhoicas/Banos-api/internal/domain/entity"
	"github.com/jhoicas/Banos-api/internal/domain/repository"
	"github.com/jhoicas/Banos-api/internal/domain/vencimiento"
	"github.com/jhoicas/Banos-api/pkg/logger"
)

// TxRunner ejecuta la carga completa dentro de una transacción.
type TxRunner interface {
	RunSeed(ctx context.Context, fn func(repos repository.Repositorios) error) error
}

// UseCase carga de datos de ejemplo.
type UseCase struct {
	tx  TxRunner
	log *logger.Logger
	now vencimiento.Reloj
}

// NewUseCase construye el caso de uso.
func NewUseCase(tx TxRunner, log *logger.Logger, now vencimiento.Reloj) *UseCase {
	return &UseCase{tx: tx, log: log, now: now}
}

// Basico vacía la base y carga el juego básico (5 clientes, 20 baños, 3 contratos).
func (uc *UseCase) Basico(ctx context.Context) (*dto.SeedResponse, error) {
	return uc.cargar(ctx, basico())
}

// Completo vacía la base y carga el juego completo con fechas relativas a hoy.
func (uc *UseCase) Completo(ctx context.Context) (*dto.SeedResponse, error) {
	return uc.cargar(ctx, completo(vencimiento.Dia(uc.now())))
}

func (uc *UseCase) cargar(ctx context.Context, ds dataset) (*dto.SeedResponse, error) {
	err := uc.tx.RunSeed(ctx, func(repos repository.Repositorios) error {
		if err := repos.Seed.Limpiar(ctx); err != nil {
			return fmt.Errorf("seed: limpiar: %w", err)
		}
		return insertar(ctx, repos, ds)
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("dataset", ds.nombre).
		Int("clientes", len(ds.clientes)).
		Int("banos", len(ds.banos)).
		Int("contratos", len(ds.contratos)).
		Msg("datos de ejemplo cargados")

	return &dto.SeedResponse{
		Message:   ds.mensaje,
		Clientes:  len(ds.clientes),
		Banos:     len(ds.banos),
		Contratos: len(ds.contratos),
		Facturas:  len(ds.facturas),
		Remitos:   len(ds.remitos),
		Pagos:     len(ds.pagos),
		Alertas:   len(ds.alertas),
	}, nil
}

// insertar respeta el orden de las claves foráneas. En el dataset, ClienteID es la
// posición (desde 1) del cliente en ds.clientes; acá se reemplaza por el id real.
func insertar(ctx context.Context, repos repository.Repositorios, ds dataset) error {
	ids := make([]int64, len(ds.clientes))
	for i := range ds.clientes {
		c := ds.clientes[i]
		if err := repos.Clientes.Create(ctx, &c); err != nil {
			return fmt.Errorf("seed: cliente %s: %w", c.Nombre, err)
		}
		ids[i] = c.ID
	}
	cliente := func(pos int64) int64 { return ids[pos-1] }

	for i := range ds.banos {
		b := ds.banos[i]
		if err := repos.Banos.Create(ctx, &b); err != nil {
			return fmt.Errorf("seed: baño %s: %w", b.ID, err)
		}
	}
	for i := range ds.contratos {
		c := ds.contratos[i]
		c.ClienteID = cliente(c.ClienteID)
		if err := repos.Contratos.Create(ctx, &c); err != nil {
			return fmt.Errorf("seed: contrato %s: %w", c.ID, err)
		}
	}
	asignaciones := make([]*entity.BanoContrato, len(ds.asignaciones))
	for i := range ds.asignaciones {
		a := ds.asignaciones[i]
		asignaciones[i] = &a
	}
	if err := repos.Asignaciones.CreateMany(ctx, asignaciones); err != nil {
		return fmt.Errorf("seed: asignaciones: %w", err)
	}
	for i := range ds.facturas {
		f := ds.facturas[i]
		f.ClienteID = cliente(f.ClienteID)
		if err := repos.Facturas.Create(ctx, &f); err != nil {
			return fmt.Errorf("seed: factura %s: %w", f.ID, err)
		}
	}
	for i := range ds.remitos {
		r := ds.remitos[i]
		r.ClienteID = cliente(r.ClienteID)
		if err := repos.Remitos.Create(ctx, &r); err != nil {
			return fmt.Errorf("seed: remito %s: %w", r.ID, err)
		}
	}
	for i := range ds.pagos {
		p := ds.pagos[i]
		p.ClienteID = cliente(p.ClienteID)
		if err := repos.Pagos.Create(ctx, &p); err != nil {
			return fmt.Errorf("seed: pago %s: %w", p.Comprobante, err)
		}
	}
	for i := range ds.alertas {
		a := ds.alertas[i]
		a.ClienteID = cliente(a.ClienteID)
		if err := repos.Alertas.Create(ctx, &a); err != nil {
			return fmt.Errorf("seed: alerta: %w", err)
		}
	}
	return nil
}
