package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/jhoicas/Banos-api/internal/application/dto"
	"github.com/jhoicas/Banos-api/internal/domain/entity"
	"github.com/jhoicas/Banos-api/internal/domain/repository"
	"github.com/jhoicas/Banos-api/internal/domain/vencimiento"
)

// FacturaUseCase facturas emitidas a clientes.
type FacturaUseCase struct {
	repo         repository.FacturaRepository
	clienteRepo  repository.ClienteRepository
	contratoRepo repository.ContratoRepository
	remitoRepo   repository.RemitoRepository
	now          vencimiento.Reloj
}

// NewFacturaUseCase construye el caso de uso.
func NewFacturaUseCase(
	repo repository.FacturaRepository,
	clienteRepo repository.ClienteRepository,
	contratoRepo repository.ContratoRepository,
	remitoRepo repository.RemitoRepository,
	now vencimiento.Reloj,
) *FacturaUseCase {
	return &FacturaUseCase{repo: repo, clienteRepo: clienteRepo, contratoRepo: contratoRepo, remitoRepo: remitoRepo, now: now}
}

// Create emite una factura. Sin id se numera F-<año>-xxxxxxxx; sin estado queda Pendiente.
func (uc *FacturaUseCase) Create(ctx context.Context, in dto.CreateFacturaRequest) (*dto.FacturaResponse, error) {
	if in.ClienteID <= 0 {
		return nil, invalid("cliente_id es obligatorio")
	}
	fecha, err := parseFecha("fecha", in.Fecha)
	if err != nil {
		return nil, err
	}
	if !in.Monto.IsPositive() {
		return nil, invalid("monto debe ser mayor a cero")
	}
	estado := strings.TrimSpace(in.Estado)
	if estado == "" {
		estado = entity.FacturaPendiente
	}
	if !entity.EstadoFacturaValido(estado) {
		return nil, invalid("estado %q no es válido", estado)
	}
	if err := uc.existeCliente(ctx, in.ClienteID); err != nil {
		return nil, err
	}

	now := uc.now()
	f := &entity.Factura{
		ID:         strings.TrimSpace(in.ID),
		ClienteID:  in.ClienteID,
		ContratoID: strings.TrimSpace(in.ContratoID),
		Fecha:      fecha,
		Monto:      in.Monto,
		Estado:     estado,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if f.ID == "" {
		f.ID = entity.NuevoNumero(entity.PrefijoFactura, now)
	}
	if err := uc.repo.Create(ctx, f); err != nil {
		return nil, err
	}
	out := toFacturaResponse(f, now)
	return &out, nil
}

// GetByID factura con cliente y contrato.
func (uc *FacturaUseCase) GetByID(ctx context.Context, id string) (*dto.FacturaDetalleResponse, error) {
	f, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, notFound("factura")
	}
	out := &dto.FacturaDetalleResponse{FacturaResponse: toFacturaResponse(f, uc.now())}

	cliente, err := uc.clienteRepo.GetByID(ctx, f.ClienteID)
	if err != nil {
		return nil, err
	}
	if cliente != nil {
		out.Cliente = toClienteContacto(cliente)
	}
	if f.ContratoID != "" {
		c, err := uc.contratoRepo.GetByID(ctx, f.ContratoID)
		if err != nil {
			return nil, err
		}
		out.Contrato = toContratoRef(c)
	}
	return out, nil
}

// List facturas filtradas, la más reciente primero.
func (uc *FacturaUseCase) List(ctx context.Context, f repository.FacturaFiltro) ([]dto.FacturaListItem, error) {
	if f.Estado != "" && !entity.EstadoFacturaValido(f.Estado) {
		return nil, invalid("estado %q no es válido", f.Estado)
	}
	f.Query = strings.TrimSpace(f.Query)
	list, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	hoy := uc.now()
	out := make([]dto.FacturaListItem, 0, len(list))
	for i := range list {
		fc := &list[i]
		out = append(out, dto.FacturaListItem{
			FacturaResponse: toFacturaResponse(&fc.Factura, hoy),
			Cliente:         dto.ClienteRefDTO{ID: fc.ClienteID, Nombre: fc.ClienteNombre},
		})
	}
	return out, nil
}

// PorCliente facturas y remitos agrupados por cliente (solo clientes con documentos), por nombre.
func (uc *FacturaUseCase) PorCliente(ctx context.Context) ([]dto.DocumentosClienteDTO, error) {
	facturas, err := uc.repo.List(ctx, repository.FacturaFiltro{})
	if err != nil {
		return nil, err
	}
	remitos, err := uc.remitoRepo.List(ctx, repository.RemitoFiltro{})
	if err != nil {
		return nil, err
	}
	hoy := uc.now()

	grupos := map[int64]*dto.DocumentosClienteDTO{}
	grupo := func(id int64, nombre string) *dto.DocumentosClienteDTO {
		g, ok := grupos[id]
		if !ok {
			g = &dto.DocumentosClienteDTO{
				ClienteID: id,
				Nombre:    nombre,
				Facturas:  []dto.FacturaResponse{},
				Remitos:   []dto.RemitoResponse{},
			}
			grupos[id] = g
		}
		return g
	}
	for i := range facturas {
		g := grupo(facturas[i].ClienteID, facturas[i].ClienteNombre)
		g.Facturas = append(g.Facturas, toFacturaResponse(&facturas[i].Factura, hoy))
	}
	for i := range remitos {
		g := grupo(remitos[i].ClienteID, remitos[i].ClienteNombre)
		g.Remitos = append(g.Remitos, toRemitoResponse(&remitos[i].Remito))
	}

	out := make([]dto.DocumentosClienteDTO, 0, len(grupos))
	for _, g := range grupos {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Nombre == out[j].Nombre {
			return out[i].ClienteID < out[j].ClienteID
		}
		return out[i].Nombre < out[j].Nombre
	})
	return out, nil
}

// Update aplica solo los campos enviados.
func (uc *FacturaUseCase) Update(ctx context.Context, id string, in dto.UpdateFacturaRequest) (*dto.FacturaResponse, error) {
	f, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, notFound("factura")
	}
	if in.ClienteID != nil {
		if err := uc.existeCliente(ctx, *in.ClienteID); err != nil {
			return nil, err
		}
		f.ClienteID = *in.ClienteID
	}
	if in.ContratoID != nil {
		f.ContratoID = strings.TrimSpace(*in.ContratoID)
	}
	if in.Fecha != nil {
		t, err := parseFecha("fecha", *in.Fecha)
		if err != nil {
			return nil, err
		}
		f.Fecha = t
	}
	if in.Monto != nil {
		if !in.Monto.IsPositive() {
			return nil, invalid("monto debe ser mayor a cero")
		}
		f.Monto = *in.Monto
	}
	if in.Estado != nil {
		if !entity.EstadoFacturaValido(*in.Estado) {
			return nil, invalid("estado %q no es válido", *in.Estado)
		}
		f.Estado = *in.Estado
	}
	now := uc.now()
	f.UpdatedAt = now
	if err := uc.repo.Update(ctx, f); err != nil {
		return nil, err
	}
	out := toFacturaResponse(f, now)
	return &out, nil
}

// Delete elimina una factura.
func (uc *FacturaUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func (uc *FacturaUseCase) existeCliente(ctx context.Context, id int64) error {
	if id <= 0 {
		return invalid("cliente_id no es válido")
	}
	c, err := uc.clienteRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return notFound("cliente")
	}
	return nil
}
