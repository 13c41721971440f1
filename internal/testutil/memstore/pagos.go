package memstore

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Banos-api/internal/domain"
	"github.com/jhoicas/Banos-api/internal/domain/entity"
	"github.com/jhoicas/Banos-api/internal/domain/repository"
)

type pagoRepo struct{ s *Store }

var _ repository.PagoRepository = pagoRepo{}

// Pagos repo de pagos.
func (s *Store) Pagos() repository.PagoRepository { return pagoRepo{s} }

// checkPago requiere s.mu tomado.
func (s *Store) checkPago(op string, p *entity.Pago) error {
	if err := s.checkRefs(op, p.ClienteID, ""); err != nil {
		return err
	}
	if _, ok := s.facturas[p.FacturaID]; p.FacturaID != "" && !ok {
		return fmt.Errorf("%s: factura %s: %w", op, p.FacturaID, domain.ErrConflict)
	}
	if _, ok := s.remitos[p.RemitoID]; p.RemitoID != "" && !ok {
		return fmt.Errorf("%s: remito %s: %w", op, p.RemitoID, domain.ErrConflict)
	}
	return nil
}

func (r pagoRepo) Create(_ context.Context, p *entity.Pago) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.checkPago("create pago", p); err != nil {
		return err
	}
	p.ID = r.s.nextID()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = r.s.now()
	}
	p.UpdatedAt = p.CreatedAt
	r.s.pagos[p.ID] = *p
	return nil
}

func (r pagoRepo) GetByID(_ context.Context, id int64) (*entity.Pago, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.pagos[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r pagoRepo) List(_ context.Context, f repository.PagoFiltro) ([]repository.PagoConCliente, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []repository.PagoConCliente
	for _, p := range r.s.pagos {
		nombre := r.s.clientes[p.ClienteID].Nombre
		switch {
		case f.ClienteID != 0 && p.ClienteID != f.ClienteID,
			f.FacturaID != "" && p.FacturaID != f.FacturaID,
			!algunoContiene(f.Query, p.Comprobante, nombre):
			continue
		}
		item := repository.PagoConCliente{Pago: p, ClienteNombre: nombre}
		if fa, ok := r.s.facturas[p.FacturaID]; ok {
			item.FacturaMonto = ptr(fa.Monto)
		}
		out = append(out, item)
	}
	slices.SortFunc(out, func(a, b repository.PagoConCliente) int {
		return cmp.Or(b.Fecha.Compare(a.Fecha), cmp.Compare(b.ID, a.ID))
	})
	return out, nil
}

func (r pagoRepo) Update(_ context.Context, p *entity.Pago) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.pagos[p.ID]; !ok {
		return domain.ErrNotFound
	}
	if err := r.s.checkPago("update pago", p); err != nil {
		return err
	}
	p.UpdatedAt = r.s.now()
	r.s.pagos[p.ID] = *p
	return nil
}

func (r pagoRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.pagos[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.pagos, id)
	return nil
}

type alertaRepo struct{ s *Store }

var _ repository.AlertaRepository = alertaRepo{}

// Alertas repo de alertas.
func (s *Store) Alertas() repository.AlertaRepository { return alertaRepo{s} }

func (r alertaRepo) Create(_ context.Context, a *entity.Alerta) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.checkRefs("create alerta", a.ClienteID, a.ContratoID); err != nil {
		return err
	}
	if _, ok := r.s.facturas[a.FacturaID]; a.FacturaID != "" && !ok {
		return fmt.Errorf("create alerta: factura %s: %w", a.FacturaID, domain.ErrConflict)
	}
	a.ID = r.s.nextID()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = r.s.now()
	}
	r.s.alertas[a.ID] = *a
	return nil
}

func (r alertaRepo) List(_ context.Context, f repository.AlertaFiltro) ([]repository.AlertaConCliente, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []repository.AlertaConCliente
	for _, a := range r.s.alertas {
		switch {
		case f.Tipo != "" && a.Tipo != f.Tipo,
			f.Prioridad != "" && a.Prioridad != f.Prioridad,
			f.Resuelta != nil && a.Resuelta != *f.Resuelta:
			continue
		}
		out = append(out, repository.AlertaConCliente{Alerta: a, ClienteNombre: r.s.clientes[a.ClienteID].Nombre})
	}
	slices.SortFunc(out, func(a, b repository.AlertaConCliente) int {
		return cmp.Or(b.Fecha.Compare(a.Fecha), cmp.Compare(b.ID, a.ID))
	})
	return out, nil
}

func (r alertaRepo) Resolver(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.alertas[id]
	if !ok {
		return domain.ErrNotFound
	}
	a.Resuelta = true
	r.s.alertas[id] = a
	return nil
}

func (r alertaRepo) ExistePendienteContrato(_ context.Context, contratoID string) (bool, error) {
	return r.existePendiente(func(a entity.Alerta) bool {
		return a.Tipo == entity.AlertaContrato && a.ContratoID == contratoID
	}), nil
}

func (r alertaRepo) ExistePendienteFactura(_ context.Context, facturaID string) (bool, error) {
	return r.existePendiente(func(a entity.Alerta) bool {
		return a.Tipo == entity.AlertaPago && a.FacturaID == facturaID
	}), nil
}

func (r alertaRepo) existePendiente(match func(entity.Alerta) bool) bool {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, a := range r.s.alertas {
		if !a.Resuelta && match(a) {
			return true
		}
	}
	return false
}

type analyticsRepo struct{ s *Store }

var _ repository.AnalyticsRepository = analyticsRepo{}

// Analytics consultas del dashboard y cuentas corrientes.
func (s *Store) Analytics() repository.AnalyticsRepository { return analyticsRepo{s} }

func (r analyticsRepo) ConteoBanos(_ context.Context) (repository.ConteoBanos, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var c repository.ConteoBanos
	for _, b := range r.s.banos {
		c.Total++
		switch b.Estado {
		case entity.BanoDisponible:
			c.Disponibles++
		case entity.BanoAlquilado:
			c.Alquilados++
		case entity.BanoMantenimiento:
			c.Mantenimiento++
		}
	}
	return c, nil
}

func (r analyticsRepo) AsignacionesVencidas(_ context.Context, hoy time.Time) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n := 0
	for _, a := range r.s.asignaciones {
		if a.FechaFin.Before(hoy) {
			n++
		}
	}
	return n, nil
}

func (r analyticsRepo) ContratosActivos(_ context.Context, hoy time.Time) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n := 0
	for _, c := range r.s.contratos {
		if !c.FechaFin.Before(hoy) {
			n++
		}
	}
	return n, nil
}

func enRango(t, desde, hasta time.Time) bool { return !t.Before(desde) && t.Before(hasta) }

func (r analyticsRepo) Facturado(_ context.Context, desde, hasta time.Time) (decimal.Decimal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	total := decimal.Zero
	for _, f := range r.s.facturas {
		if enRango(f.Fecha, desde, hasta) {
			total = total.Add(f.Monto)
		}
	}
	return total, nil
}

func (r analyticsRepo) Cobrado(_ context.Context, desde, hasta time.Time) (decimal.Decimal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	total := decimal.Zero
	for _, p := range r.s.pagos {
		if enRango(p.Fecha, desde, hasta) {
			total = total.Add(p.Monto)
		}
	}
	return total, nil
}

func (r analyticsRepo) ConteoAlertas(_ context.Context) (repository.ConteoAlertas, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var c repository.ConteoAlertas
	for _, a := range r.s.alertas {
		if a.Resuelta {
			continue
		}
		c.Total++
		switch a.Tipo {
		case entity.AlertaPago:
			c.Pagos++
		case entity.AlertaContrato:
			c.Contratos++
		}
	}
	return c, nil
}

func (r analyticsRepo) Cuentas(_ context.Context, query string) ([]repository.CuentaCliente, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []repository.CuentaCliente
	for _, cl := range r.s.clientes {
		if !algunoContiene(query, cl.Nombre) {
			continue
		}
		cc := repository.CuentaCliente{ClienteID: cl.ID, ClienteNombre: cl.Nombre, Deuda: decimal.Zero}
		for _, f := range r.s.facturas {
			if f.ClienteID == cl.ID && f.Estado == entity.FacturaPendiente {
				cc.Deuda = cc.Deuda.Add(f.Monto)
			}
		}
		var ultimo *entity.Pago
		for _, p := range r.s.pagos {
			if p.ClienteID != cl.ID {
				continue
			}
			if ultimo == nil || p.Fecha.After(ultimo.Fecha) || (p.Fecha.Equal(ultimo.Fecha) && p.ID > ultimo.ID) {
				ultimo = ptr(p)
			}
		}
		if ultimo != nil {
			cc.UltimoPago = ptr(ultimo.Fecha)
			cc.MontoUltimoPago = ptr(ultimo.Monto)
		}
		out = append(out, cc)
	}
	slices.SortFunc(out, func(a, b repository.CuentaCliente) int {
		return cmp.Or(b.Deuda.Cmp(a.Deuda), cmp.Compare(a.ClienteNombre, b.ClienteNombre))
	})
	return out, nil
}

type seedRepo struct{ s *Store }

var _ repository.SeedRepository = seedRepo{}

// Seed vaciado total.
func (s *Store) Seed() repository.SeedRepository { return seedRepo{s} }

func (r seedRepo) Limpiar(_ context.Context) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.reset()
	return nil
}
