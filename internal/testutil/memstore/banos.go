package memstore

import (
	"cmp"
	"context"
	"slices"

	"github.com/jhoicas/Banos-api/internal/domain"
	"github.com/jhoicas/Banos-api/internal/domain/entity"
	"github.com/jhoicas/Banos-api/internal/domain/repository"
)

type banoRepo struct{ s *Store }

var _ repository.BanoRepository = banoRepo{}

// Banos repo de baños.
func (s *Store) Banos() repository.BanoRepository { return banoRepo{s} }

func (r banoRepo) Create(_ context.Context, b *entity.Bano) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.banos[b.ID]; ok {
		return domain.ErrDuplicate
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = r.s.now()
	}
	b.UpdatedAt = b.CreatedAt
	r.s.banos[b.ID] = *b
	return nil
}

func (r banoRepo) GetByID(_ context.Context, id string) (*entity.Bano, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b, ok := r.s.banos[id]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (r banoRepo) List(_ context.Context, f repository.BanoFiltro) ([]*entity.Bano, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Bano
	for _, b := range r.s.banos {
		if f.Estado != "" && b.Estado != f.Estado {
			continue
		}
		if !algunoContiene(f.Query, b.ID) {
			continue
		}
		out = append(out, ptr(b))
	}
	slices.SortFunc(out, func(a, b *entity.Bano) int { return cmp.Compare(a.ID, b.ID) })
	return out, nil
}

func (r banoRepo) Update(_ context.Context, b *entity.Bano) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.banos[b.ID]; !ok {
		return domain.ErrNotFound
	}
	b.UpdatedAt = r.s.now()
	r.s.banos[b.ID] = *b
	return nil
}

func (r banoRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.banos[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.banos, id)
	for k, a := range r.s.asignaciones {
		if a.BanoID == id {
			delete(r.s.asignaciones, k)
		}
	}
	return nil
}

func (r banoRepo) GetByIDs(_ context.Context, ids []string) ([]*entity.Bano, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Bano
	for _, id := range ids {
		if b, ok := r.s.banos[id]; ok {
			out = append(out, ptr(b))
		}
	}
	slices.SortFunc(out, func(a, b *entity.Bano) int { return cmp.Compare(a.ID, b.ID) })
	return out, nil
}

func (r banoRepo) SetEstado(_ context.Context, ids []string, estado, ubicacion string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, id := range ids {
		b, ok := r.s.banos[id]
		if !ok {
			continue
		}
		b.Estado, b.Ubicacion, b.UpdatedAt = estado, ubicacion, r.s.now()
		r.s.banos[id] = b
	}
	return nil
}

func (r banoRepo) Historial(_ context.Context, banoID string) ([]repository.BanoHistorial, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []repository.BanoHistorial
	for _, a := range r.s.asignacionesOrdenadas() {
		if a.BanoID != banoID {
			continue
		}
		c := r.s.contratos[a.ContratoID]
		out = append(out, repository.BanoHistorial{
			AsignacionID:  a.ID,
			ContratoID:    a.ContratoID,
			FechaInicio:   a.FechaInicio,
			FechaFin:      a.FechaFin,
			ValorDiario:   c.ValorDiario,
			ClienteID:     c.ClienteID,
			ClienteNombre: r.s.clientes[c.ClienteID].Nombre,
		})
	}
	return out, nil
}

func (r banoRepo) ListAlquilados(_ context.Context) ([]repository.BanoAlquilado, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	visto := map[string]bool{}
	var out []repository.BanoAlquilado
	for _, a := range r.s.asignacionesOrdenadas() {
		b, ok := r.s.banos[a.BanoID]
		if !ok || b.Estado != entity.BanoAlquilado || visto[a.BanoID] {
			continue
		}
		visto[a.BanoID] = true
		c := r.s.contratos[a.ContratoID]
		out = append(out, repository.BanoAlquilado{
			BanoID:        a.BanoID,
			ContratoID:    a.ContratoID,
			FechaInicio:   a.FechaInicio,
			FechaFin:      a.FechaFin,
			ValorDiario:   c.ValorDiario,
			ClienteID:     c.ClienteID,
			ClienteNombre: r.s.clientes[c.ClienteID].Nombre,
		})
	}
	slices.SortFunc(out, func(a, b repository.BanoAlquilado) int {
		return cmp.Or(cmp.Compare(a.ClienteNombre, b.ClienteNombre), cmp.Compare(a.BanoID, b.BanoID))
	})
	return out, nil
}

// asignacionesOrdenadas más reciente primero (fecha_inicio DESC, id DESC).
func (s *Store) asignacionesOrdenadas() []entity.BanoContrato {
	out := make([]entity.BanoContrato, 0, len(s.asignaciones))
	for _, a := range s.asignaciones {
		out = append(out, a)
	}
	slices.SortFunc(out, func(a, b entity.BanoContrato) int {
		return cmp.Or(b.FechaInicio.Compare(a.FechaInicio), cmp.Compare(b.ID, a.ID))
	})
	return out
}
