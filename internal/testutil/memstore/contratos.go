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

type contratoRepo struct{ s *Store }

var _ repository.ContratoRepository = contratoRepo{}

// Contratos repo de contratos.
func (s *Store) Contratos() repository.ContratoRepository { return contratoRepo{s} }

func (r contratoRepo) Create(_ context.Context, c *entity.Contrato) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.contratos[c.ID]; ok {
		return domain.ErrDuplicate
	}
	if _, ok := r.s.clientes[c.ClienteID]; !ok {
		return fmt.Errorf("create contrato: cliente %d: %w", c.ClienteID, domain.ErrConflict)
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = r.s.now()
	}
	c.UpdatedAt = c.CreatedAt
	r.s.contratos[c.ID] = *c
	return nil
}

func (r contratoRepo) GetByID(_ context.Context, id string) (*entity.Contrato, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.contratos[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r contratoRepo) List(_ context.Context, f repository.ContratoFiltro) ([]repository.ContratoConCliente, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []repository.ContratoConCliente
	for _, c := range r.s.contratos {
		if f.ClienteID != 0 && c.ClienteID != f.ClienteID {
			continue
		}
		nombre := r.s.clientes[c.ClienteID].Nombre
		if !algunoContiene(f.Query, c.ID, nombre) {
			continue
		}
		n := 0
		for _, a := range r.s.asignaciones {
			if a.ContratoID == c.ID {
				n++
			}
		}
		out = append(out, repository.ContratoConCliente{Contrato: c, ClienteNombre: nombre, CantidadBanos: n})
	}
	slices.SortFunc(out, func(a, b repository.ContratoConCliente) int {
		return cmp.Or(b.FechaInicio.Compare(a.FechaInicio), cmp.Compare(a.ID, b.ID))
	})
	return out, nil
}

func (r contratoRepo) ListByCliente(_ context.Context, clienteID int64) ([]*entity.Contrato, error) {
	return r.filtrar(func(c entity.Contrato) bool { return c.ClienteID == clienteID }, func(a, b *entity.Contrato) int {
		return b.FechaInicio.Compare(a.FechaInicio)
	}), nil
}

func (r contratoRepo) ListVencenEntre(_ context.Context, desde, hasta time.Time) ([]*entity.Contrato, error) {
	return r.filtrar(func(c entity.Contrato) bool {
		return !c.FechaFin.Before(desde) && !c.FechaFin.After(hasta)
	}, func(a, b *entity.Contrato) int {
		return cmp.Or(a.FechaFin.Compare(b.FechaFin), cmp.Compare(a.ID, b.ID))
	}), nil
}

func (r contratoRepo) filtrar(ok func(entity.Contrato) bool, orden func(a, b *entity.Contrato) int) []*entity.Contrato {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Contrato
	for _, c := range r.s.contratos {
		if ok(c) {
			out = append(out, ptr(c))
		}
	}
	slices.SortFunc(out, orden)
	return out
}

func (r contratoRepo) Update(_ context.Context, c *entity.Contrato) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.contratos[c.ID]; !ok {
		return domain.ErrNotFound
	}
	c.UpdatedAt = r.s.now()
	r.s.contratos[c.ID] = *c
	return nil
}

func (r contratoRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.contratos[id]; !ok {
		return domain.ErrNotFound
	}
	r.s.borrarContrato(id)
	return nil
}

// borrarContrato aplica las reglas ON DELETE del esquema. Requiere s.mu tomado.
func (s *Store) borrarContrato(id string) {
	delete(s.contratos, id)
	for k, a := range s.asignaciones {
		if a.ContratoID == id {
			delete(s.asignaciones, k)
		}
	}
	for k, f := range s.facturas {
		if f.ContratoID == id {
			f.ContratoID = ""
			s.facturas[k] = f
		}
	}
	for k, x := range s.remitos {
		if x.ContratoID == id {
			x.ContratoID = ""
			s.remitos[k] = x
		}
	}
	for k, a := range s.alertas {
		if a.ContratoID == id {
			delete(s.alertas, k)
		}
	}
}

type asignacionRepo struct{ s *Store }

var _ repository.AsignacionRepository = asignacionRepo{}

// Asignaciones repo de banos_contratos.
func (s *Store) Asignaciones() repository.AsignacionRepository { return asignacionRepo{s} }

func (r asignacionRepo) CreateMany(_ context.Context, asignaciones []*entity.BanoContrato) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, a := range asignaciones {
		if _, ok := r.s.banos[a.BanoID]; !ok {
			return fmt.Errorf("create asignacion: baño %s: %w", a.BanoID, domain.ErrConflict)
		}
		if _, ok := r.s.contratos[a.ContratoID]; !ok {
			return fmt.Errorf("create asignacion: contrato %s: %w", a.ContratoID, domain.ErrConflict)
		}
		existe := false
		for _, x := range r.s.asignaciones {
			if x.BanoID == a.BanoID && x.ContratoID == a.ContratoID {
				existe = true
				break
			}
		}
		if existe {
			continue
		}
		a.ID = r.s.nextID()
		r.s.asignaciones[a.ID] = *a
	}
	return nil
}

func (r asignacionRepo) ListByContrato(_ context.Context, contratoID string) ([]repository.AsignacionConBano, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []repository.AsignacionConBano
	for _, a := range r.s.asignaciones {
		if a.ContratoID != contratoID {
			continue
		}
		b := r.s.banos[a.BanoID]
		out = append(out, repository.AsignacionConBano{BanoContrato: a, Estado: b.Estado, Ubicacion: b.Ubicacion})
	}
	slices.SortFunc(out, func(a, b repository.AsignacionConBano) int { return cmp.Compare(a.BanoID, b.BanoID) })
	return out, nil
}

func (r asignacionRepo) BanoIDsByContrato(ctx context.Context, contratoID string) ([]string, error) {
	list, err := r.ListByContrato(ctx, contratoID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(list))
	for _, a := range list {
		ids = append(ids, a.BanoID)
	}
	return ids, nil
}

func (r asignacionRepo) ActualizarFechas(_ context.Context, contratoID string, antes, despues entity.Periodo) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for k, a := range r.s.asignaciones {
		if a.ContratoID == contratoID && a.FechaInicio.Equal(antes.Inicio) && a.FechaFin.Equal(antes.Fin) {
			a.FechaInicio, a.FechaFin = despues.Inicio, despues.Fin
			r.s.asignaciones[k] = a
		}
	}
	return nil
}

func (r asignacionRepo) DeleteByContratoAndBanos(_ context.Context, contratoID string, banoIDs []string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for k, a := range r.s.asignaciones {
		if a.ContratoID == contratoID && slices.Contains(banoIDs, a.BanoID) {
			delete(r.s.asignaciones, k)
		}
	}
	return nil
}
