package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/Banos-api/internal/application/dto"
	"github.com/jhoicas/Banos-api/internal/domain/entity"
	"github.com/jhoicas/Banos-api/internal/domain/repository"
	"github.com/jhoicas/Banos-api/internal/domain/vencimiento"
	"github.com/jhoicas/Banos-api/pkg/logger"
)

// PagoUseCase cobranzas. Alta y baja de pagos corren en transacción con la factura imputada.
type PagoUseCase struct {
	repo        repository.PagoRepository
	clienteRepo repository.ClienteRepository
	facturaRepo repository.FacturaRepository
	remitoRepo  repository.RemitoRepository
	tx          PagoTxRunner
	log         *logger.Logger
	now         vencimiento.Reloj
}

// PagoDeps dependencias del caso de uso.
type PagoDeps struct {
	Pagos    repository.PagoRepository
	Clientes repository.ClienteRepository
	Facturas repository.FacturaRepository
	Remitos  repository.RemitoRepository
	Tx       PagoTxRunner
	Log      *logger.Logger
	Now      vencimiento.Reloj
}

// NewPagoUseCase construye el caso de uso.
func NewPagoUseCase(d PagoDeps) *PagoUseCase {
	return &PagoUseCase{
		repo:        d.Pagos,
		clienteRepo: d.Clientes,
		facturaRepo: d.Facturas,
		remitoRepo:  d.Remitos,
		tx:          d.Tx,
		log:         d.Log,
		now:         d.Now,
	}
}

// Create registra el pago. Con ActualizarFactura la factura asociada pasa a Pagada.
func (uc *PagoUseCase) Create(ctx context.Context, in dto.CreatePagoRequest) (*dto.PagoResponse, error) {
	p := in.Pago
	if p.ClienteID <= 0 {
		return nil, invalid("cliente_id es obligatorio")
	}
	fecha, err := parseFecha("fecha", p.Fecha)
	if err != nil {
		return nil, err
	}
	if !p.Monto.IsPositive() {
		return nil, invalid("monto debe ser mayor a cero")
	}
	metodo, ok := entity.NormalizarMetodoPago(p.MetodoPago)
	if !ok {
		return nil, invalid("metodo_pago %q no es válido", p.MetodoPago)
	}
	cliente, err := uc.clienteRepo.GetByID(ctx, p.ClienteID)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, notFound("cliente")
	}

	now := uc.now()
	pago := &entity.Pago{
		ClienteID:     p.ClienteID,
		FacturaID:     strings.TrimSpace(p.FacturaID),
		RemitoID:      strings.TrimSpace(p.RemitoID),
		Fecha:         fecha,
		Monto:         p.Monto,
		MetodoPago:    metodo,
		Comprobante:   strings.TrimSpace(p.Comprobante),
		Observaciones: strings.TrimSpace(p.Observaciones),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	marcarPagada := in.ActualizarFactura && pago.FacturaID != ""

	err = uc.tx.RunPagos(ctx, func(pagoRepo repository.PagoRepository, facturaRepo repository.FacturaRepository) error {
		if err := pagoRepo.Create(ctx, pago); err != nil {
			return err
		}
		if marcarPagada {
			return facturaRepo.SetEstado(ctx, pago.FacturaID, entity.FacturaPagada)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().Int64("pago_id", pago.ID).Int64("cliente_id", pago.ClienteID).
		Str("factura_id", pago.FacturaID).Bool("factura_pagada", marcarPagada).Msg("pago registrado")
	out := toPagoResponse(pago)
	return &out, nil
}

// GetByID pago con cliente, factura y remito.
func (uc *PagoUseCase) GetByID(ctx context.Context, id int64) (*dto.PagoDetalleResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, notFound("pago")
	}
	out := &dto.PagoDetalleResponse{PagoResponse: toPagoResponse(p)}

	cliente, err := uc.clienteRepo.GetByID(ctx, p.ClienteID)
	if err != nil {
		return nil, err
	}
	if cliente != nil {
		out.Cliente = dto.ClienteContactoDTO{ID: cliente.ID, Nombre: cliente.Nombre, CUIT: cliente.CUIT}
	}
	if p.FacturaID != "" {
		f, err := uc.facturaRepo.GetByID(ctx, p.FacturaID)
		if err != nil {
			return nil, err
		}
		out.Factura = toFacturaResumen(f)
	}
	if p.RemitoID != "" {
		r, err := uc.remitoRepo.GetByID(ctx, p.RemitoID)
		if err != nil {
			return nil, err
		}
		if r != nil {
			out.Remito = &dto.RemitoRefDTO{ID: r.ID, Fecha: formatFecha(r.Fecha), Tipo: r.Tipo}
		}
	}
	return out, nil
}

// List pagos filtrados, el más reciente primero.
func (uc *PagoUseCase) List(ctx context.Context, f repository.PagoFiltro) ([]dto.PagoListItem, error) {
	f.Query = strings.TrimSpace(f.Query)
	list, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PagoListItem, 0, len(list))
	for i := range list {
		pc := &list[i]
		out = append(out, dto.PagoListItem{
			PagoResponse: toPagoResponse(&pc.Pago),
			Cliente:      dto.ClienteRefDTO{ID: pc.ClienteID, Nombre: pc.ClienteNombre},
			FacturaMonto: pc.FacturaMonto,
		})
	}
	return out, nil
}

// Update aplica solo los campos enviados (no cambia el estado de facturas).
func (uc *PagoUseCase) Update(ctx context.Context, id int64, in dto.UpdatePagoRequest) (*dto.PagoResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, notFound("pago")
	}
	if in.ClienteID != nil {
		if *in.ClienteID <= 0 {
			return nil, invalid("cliente_id no es válido")
		}
		p.ClienteID = *in.ClienteID
	}
	if in.FacturaID != nil {
		p.FacturaID = strings.TrimSpace(*in.FacturaID)
	}
	if in.RemitoID != nil {
		p.RemitoID = strings.TrimSpace(*in.RemitoID)
	}
	if in.Fecha != nil {
		t, err := parseFecha("fecha", *in.Fecha)
		if err != nil {
			return nil, err
		}
		p.Fecha = t
	}
	if in.Monto != nil {
		if !in.Monto.IsPositive() {
			return nil, invalid("monto debe ser mayor a cero")
		}
		p.Monto = *in.Monto
	}
	if in.MetodoPago != nil {
		metodo, ok := entity.NormalizarMetodoPago(*in.MetodoPago)
		if !ok {
			return nil, invalid("metodo_pago %q no es válido", *in.MetodoPago)
		}
		p.MetodoPago = metodo
	}
	if in.Comprobante != nil {
		p.Comprobante = strings.TrimSpace(*in.Comprobante)
	}
	if in.Observaciones != nil {
		p.Observaciones = strings.TrimSpace(*in.Observaciones)
	}
	p.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	out := toPagoResponse(p)
	return &out, nil
}

// Delete elimina el pago; si estaba imputado a una factura, ésta vuelve a Pendiente.
func (uc *PagoUseCase) Delete(ctx context.Context, id int64) error {
	var facturaID string
	err := uc.tx.RunPagos(ctx, func(pagoRepo repository.PagoRepository, facturaRepo repository.FacturaRepository) error {
		p, err := pagoRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if p == nil {
			return notFound("pago")
		}
		facturaID = p.FacturaID
		if err := pagoRepo.Delete(ctx, id); err != nil {
			return err
		}
		if facturaID != "" {
			return facturaRepo.SetEstado(ctx, facturaID, entity.FacturaPendiente)
		}
		return nil
	})
	if err != nil {
		return err
	}
	uc.log.Info().Int64("pago_id", id).Str("factura_id", facturaID).Msg("pago eliminado")
	return nil
}
