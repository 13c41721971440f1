package memstore

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/jhoicas/Banos-api/internal/domain"
	"github.com/jhoicas/Banos-api/internal/domain/entity"
	"github.com/jhoicas/Banos-api/internal/domain/repository"
)

// checkRefs valida cliente y contrato como las claves foráneas. Requiere s.mu tomado.
func (s *Store) checkRefs(op string, clienteID int64, contratoID string) error {
	if _, ok := s.clientes[clienteID]; !ok {
		return fmt.Errorf("%s: cliente %d: %w", op, clienteID, domain.ErrConflict)
	}
	if contratoID != "" {
		if _, ok := s.contratos[contratoID]; !ok {
			return fmt.Errorf("%s: contrato %s: %w", op, contratoID, domain.ErrConflict)
		}
	}
	return nil
}

type facturaRepo struct{ s *Store }

var _ repository.FacturaRepository = facturaRepo{}

// Facturas repo de facturas.
func (s *Store) Facturas() repository.FacturaRepository { return facturaRepo{s} }

func (r facturaRepo) Create(_ context.Context, f *entity.Factura) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.facturas[f.ID]; ok {
		return domain.ErrDuplicate
	}
	if err := r.s.checkRefs("create factura", f.ClienteID, f.ContratoID); err != nil {
		return err
	}
	if f.CreatedAt.IsZero() {
		f.CreatedAt = r.s.now()
	}
	f.UpdatedAt = f.CreatedAt
	r.s.facturas[f.ID] = *f
	return nil
}

func (r facturaRepo) GetByID(_ context.Context, id string) (*entity.Factura, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	f, ok := r.s.facturas[id]
	if !ok {
		return nil, nil
	}
	return &f, nil
}

func (r facturaRepo) List(_ context.Context, filtro repository.FacturaFiltro) ([]repository.FacturaConCliente, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []repository.FacturaConCliente
	for _, f := range r.s.facturas {
		nombre := r.s.clientes[f.ClienteID].Nombre
		switch {
		case filtro.ClienteID != 0 && f.ClienteID != filtro.ClienteID,
			filtro.ContratoID != "" && f.ContratoID != filtro.ContratoID,
			filtro.Estado != "" && f.Estado != filtro.Estado,
			!algunoContiene(filtro.Query, f.ID, nombre):
			continue
		}
		out = append(out, repository.FacturaConCliente{Factura: f, ClienteNombre: nombre})
	}
	slices.SortFunc(out, func(a, b repository.FacturaConCliente) int {
		return cmp.Or(b.Fecha.Compare(a.Fecha), cmp.Compare(b.ID, a.ID))
	})
	return out, nil
}

func (r facturaRepo) Update(_ context.Context, f *entity.Factura) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.facturas[f.ID]; !ok {
		return domain.ErrNotFound
	}
	if err := r.s.checkRefs("update factura", f.ClienteID, f.ContratoID); err != nil {
		return err
	}
	f.UpdatedAt = r.s.now()
	r.s.facturas[f.ID] = *f
	return nil
}

func (r facturaRepo) SetEstado(_ context.Context, id, estado string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	f, ok := r.s.facturas[id]
	if !ok {
		return domain.ErrNotFound
	}
	f.Estado, f.UpdatedAt = estado, r.s.now()
	r.s.facturas[id] = f
	return nil
}

func (r facturaRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.facturas[id]; !ok {
		return domain.ErrNotFound
	}
	r.s.borrarFactura(id)
	return nil
}

func (r facturaRepo) ListPendientesAntesDe(_ context.Context, limite time.Time) ([]*entity.Factura, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Factura
	for _, f := range r.s.facturas {
		if f.Estado == entity.FacturaPendiente && f.Fecha.Before(limite) {
			out = append(out, ptr(f))
		}
	}
	slices.SortFunc(out, func(a, b *entity.Factura) int {
		return cmp.Or(a.Fecha.Compare(b.Fecha), cmp.Compare(a.ID, b.ID))
	})
	return out, nil
}

// borrarFactura requiere s.mu tomado.
func (s *Store) borrarFactura(id string) {
	delete(s.facturas, id)
	for k, p := range s.pagos {
		if p.FacturaID == id {
			p.FacturaID = ""
			s.pagos[k] = p
		}
	}
	for k, a := range s.alertas {
		if a.FacturaID == id {
			delete(s.alertas, k)
		}
	}
}

type remitoRepo struct{ s *Store }

var _ repository.RemitoRepository = remitoRepo{}

// Remitos repo de remitos.
func (s *Store) Remitos() repository.RemitoRepository { return remitoRepo{s} }

func (r remitoRepo) Create(_ context.Context, x *entity.Remito) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.remitos[x.ID]; ok {
		return domain.ErrDuplicate
	}
	if err := r.s.checkRefs("create remito", x.ClienteID, x.ContratoID); err != nil {
		return err
	}
	if x.CreatedAt.IsZero() {
		x.CreatedAt = r.s.now()
	}
	x.UpdatedAt = x.CreatedAt
	r.s.remitos[x.ID] = *x
	return nil
}

func (r remitoRepo) GetByID(_ context.Context, id string) (*entity.Remito, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	x, ok := r.s.remitos[id]
	if !ok {
		return nil, nil
	}
	return &x, nil
}

func (r remitoRepo) List(_ context.Context, f repository.RemitoFiltro) ([]repository.RemitoConCliente, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []repository.RemitoConCliente
	for _, x := range r.s.remitos {
		nombre := r.s.clientes[x.ClienteID].Nombre
		switch {
		case f.ClienteID != 0 && x.ClienteID != f.ClienteID,
			f.ContratoID != "" && x.ContratoID != f.ContratoID,
			f.Tipo != "" && x.Tipo != f.Tipo,
			!algunoContiene(f.Query, x.ID, nombre):
			continue
		}
		out = append(out, repository.RemitoConCliente{Remito: x, ClienteNombre: nombre})
	}
	slices.SortFunc(out, func(a, b repository.RemitoConCliente) int {
		return cmp.Or(b.Fecha.Compare(a.Fecha), cmp.Compare(b.ID, a.ID))
	})
	return out, nil
}

func (r remitoRepo) Update(_ context.Context, x *entity.Remito) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.remitos[x.ID]; !ok {
		return domain.ErrNotFound
	}
	if err := r.s.checkRefs("update remito", x.ClienteID, x.ContratoID); err != nil {
		return err
	}
	x.UpdatedAt = r.s.now()
	r.s.remitos[x.ID] = *x
	return nil
}

func (r remitoRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.remitos[id]; !ok {
		return domain.ErrNotFound
	}
	r.s.borrarRemito(id)
	return nil
}

// borrarRemito requiere s.mu tomado.
func (s *Store) borrarRemito(id string) {
	delete(s.remitos, id)
	for k, p := range s.pagos {
		if p.RemitoID == id {
			p.RemitoID = ""
			s.pagos[k] = p
		}
	}
}
