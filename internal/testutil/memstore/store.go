// Package memstore implementa los puertos de repository en memoria para tests.
// Guarda copias de las entidades: modificar lo devuelto no altera el store.
package memstore

import (
	"context"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/jhoicas/Banos-api/internal/domain/entity"
	"github.com/jhoicas/Banos-api/internal/domain/repository"
)

// Store estado compartido por todos los repos.
type Store struct {
	mu sync.Mutex

	clientes     map[int64]entity.Cliente
	banos        map[string]entity.Bano
	contratos    map[string]entity.Contrato
	asignaciones map[int64]entity.BanoContrato
	facturas     map[string]entity.Factura
	remitos      map[string]entity.Remito
	pagos        map[int64]entity.Pago
	alertas      map[int64]entity.Alerta
	seq          int64

	// Now fija created_at; time.Now si es nil.
	Now func() time.Time
}

// New store vacío.
func New() *Store {
	s := &Store{}
	s.reset()
	return s
}

func (s *Store) reset() {
	s.clientes = map[int64]entity.Cliente{}
	s.banos = map[string]entity.Bano{}
	s.contratos = map[string]entity.Contrato{}
	s.asignaciones = map[int64]entity.BanoContrato{}
	s.facturas = map[string]entity.Factura{}
	s.remitos = map[string]entity.Remito{}
	s.pagos = map[int64]entity.Pago{}
	s.alertas = map[int64]entity.Alerta{}
	s.seq = 0
}

func (s *Store) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Store) nextID() int64 {
	s.seq++
	return s.seq
}

type snapshot struct {
	clientes     map[int64]entity.Cliente
	banos        map[string]entity.Bano
	contratos    map[string]entity.Contrato
	asignaciones map[int64]entity.BanoContrato
	facturas     map[string]entity.Factura
	remitos      map[string]entity.Remito
	pagos        map[int64]entity.Pago
	alertas      map[int64]entity.Alerta
	seq          int64
}

func (s *Store) snapshot() snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot{
		clientes:     maps.Clone(s.clientes),
		banos:        maps.Clone(s.banos),
		contratos:    maps.Clone(s.contratos),
		asignaciones: maps.Clone(s.asignaciones),
		facturas:     maps.Clone(s.facturas),
		remitos:      maps.Clone(s.remitos),
		pagos:        maps.Clone(s.pagos),
		alertas:      maps.Clone(s.alertas),
		seq:          s.seq,
	}
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clientes = snap.clientes
	s.banos = snap.banos
	s.contratos = snap.contratos
	s.asignaciones = snap.asignaciones
	s.facturas = snap.facturas
	s.remitos = snap.remitos
	s.pagos = snap.pagos
	s.alertas = snap.alertas
	s.seq = snap.seq
}

// Repositorios todos los repos sobre este store.
func (s *Store) Repositorios() repository.Repositorios {
	return repository.Repositorios{
		Clientes:     s.Clientes(),
		Banos:        s.Banos(),
		Contratos:    s.Contratos(),
		Asignaciones: s.Asignaciones(),
		Facturas:     s.Facturas(),
		Remitos:      s.Remitos(),
		Pagos:        s.Pagos(),
		Alertas:      s.Alertas(),
		Seed:         s.Seed(),
	}
}

// Tx ejecuta los callbacks transaccionales sobre el store; si fn falla se
// restaura el estado previo.
type Tx struct {
	s *Store
}

// Tx runner transaccional.
func (s *Store) Tx() *Tx { return &Tx{s: s} }

func (t *Tx) run(fn func() error) error {
	snap := t.s.snapshot()
	if err := fn(); err != nil {
		t.s.restore(snap)
		return err
	}
	return nil
}

// RunContratos implementa usecase.ContratoTxRunner.
func (t *Tx) RunContratos(ctx context.Context, fn func(
	contratoRepo repository.ContratoRepository,
	asignacionRepo repository.AsignacionRepository,
	banoRepo repository.BanoRepository,
) error) error {
	return t.run(func() error { return fn(t.s.Contratos(), t.s.Asignaciones(), t.s.Banos()) })
}

// RunPagos implementa usecase.PagoTxRunner.
func (t *Tx) RunPagos(ctx context.Context, fn func(
	pagoRepo repository.PagoRepository,
	facturaRepo repository.FacturaRepository,
) error) error {
	return t.run(func() error { return fn(t.s.Pagos(), t.s.Facturas()) })
}

// RunClientes implementa usecase.ClienteTxRunner.
func (t *Tx) RunClientes(ctx context.Context, fn func(
	clienteRepo repository.ClienteRepository,
	contratoRepo repository.ContratoRepository,
	asignacionRepo repository.AsignacionRepository,
	banoRepo repository.BanoRepository,
) error) error {
	return t.run(func() error { return fn(t.s.Clientes(), t.s.Contratos(), t.s.Asignaciones(), t.s.Banos()) })
}

// RunSeed implementa seed.TxRunner.
func (t *Tx) RunSeed(ctx context.Context, fn func(repos repository.Repositorios) error) error {
	return t.run(func() error { return fn(t.s.Repositorios()) })
}

// contiene compara sin distinguir mayúsculas, como ILIKE '%q%'.
func contiene(s, q string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(q))
}

func algunoContiene(q string, campos ...string) bool {
	if q == "" {
		return true
	}
	return slices.ContainsFunc(campos, func(c string) bool { return contiene(c, q) })
}

func ptr[T any](v T) *T { return &v }
