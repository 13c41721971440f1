package memstore

import (
	"cmp"
	"context"
	"slices"

	"github.com/jhoicas/Banos-api/internal/domain"
	"github.com/jhoicas/Banos-api/internal/domain/entity"
	"github.com/jhoicas/Banos-api/internal/domain/repository"
)

type clienteRepo struct{ s *Store }

var _ repository.ClienteRepository = clienteRepo{}

// Clientes repo de clientes.
func (s *Store) Clientes() repository.ClienteRepository { return clienteRepo{s} }

func (r clienteRepo) Create(_ context.Context, c *entity.Cliente) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c.ID = r.s.nextID()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = r.s.now()
	}
	c.UpdatedAt = c.CreatedAt
	r.s.clientes[c.ID] = *c
	return nil
}

func (r clienteRepo) GetByID(_ context.Context, id int64) (*entity.Cliente, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.clientes[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r clienteRepo) List(_ context.Context, query string) ([]*entity.Cliente, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Cliente
	for _, c := range r.s.clientes {
		if algunoContiene(query, c.Nombre, c.CUIT, c.Direccion) {
			out = append(out, ptr(c))
		}
	}
	slices.SortFunc(out, func(a, b *entity.Cliente) int { return cmp.Compare(a.Nombre, b.Nombre) })
	return out, nil
}

func (r clienteRepo) ListRecientes(_ context.Context, limit int) ([]*entity.Cliente, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Cliente
	for _, c := range r.s.clientes {
		out = append(out, ptr(c))
	}
	slices.SortFunc(out, func(a, b *entity.Cliente) int {
		if d := b.CreatedAt.Compare(a.CreatedAt); d != 0 {
			return d
		}
		return cmp.Compare(b.ID, a.ID)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r clienteRepo) Update(_ context.Context, c *entity.Cliente) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.clientes[c.ID]; !ok {
		return domain.ErrNotFound
	}
	c.UpdatedAt = r.s.now()
	r.s.clientes[c.ID] = *c
	return nil
}

// Delete borra en cascada como las claves foráneas del esquema.
func (r clienteRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.clientes[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.clientes, id)
	for cid, c := range r.s.contratos {
		if c.ClienteID == id {
			r.s.borrarContrato(cid)
		}
	}
	for k, f := range r.s.facturas {
		if f.ClienteID == id {
			r.s.borrarFactura(k)
		}
	}
	for k, x := range r.s.remitos {
		if x.ClienteID == id {
			r.s.borrarRemito(k)
		}
	}
	for k, p := range r.s.pagos {
		if p.ClienteID == id {
			delete(r.s.pagos, k)
		}
	}
	for k, a := range r.s.alertas {
		if a.ClienteID == id {
			delete(r.s.alertas, k)
		}
	}
	return nil
}
