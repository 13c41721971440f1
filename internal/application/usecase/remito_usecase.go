package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/Banos-api/internal/application/dto"
	"github.com/jhoicas/Banos-api/internal/domain/entity"
	"github.com/jhoicas/Banos-api/internal/domain/repository"
	"github.com/jhoicas/Banos-api/internal/domain/vencimiento"
)

// RemitoUseCase remitos de entrega y retiro.
type RemitoUseCase struct {
	repo         repository.RemitoRepository
	clienteRepo  repository.ClienteRepository
	contratoRepo repository.ContratoRepository
	now          vencimiento.Reloj
}

// NewRemitoUseCase construye el caso de uso.
func NewRemitoUseCase(
	repo repository.RemitoRepository,
	clienteRepo repository.ClienteRepository,
	contratoRepo repository.ContratoRepository,
	now vencimiento.Reloj,
) *RemitoUseCase {
	return &RemitoUseCase{repo: repo, clienteRepo: clienteRepo, contratoRepo: contratoRepo, now: now}
}

func tipoRemitoValido(t string) bool {
	return t == entity.RemitoEntrega || t == entity.RemitoRetiro
}

// Create registra un remito. Sin id se numera R-<año>-xxxxxxxx.
func (uc *RemitoUseCase) Create(ctx context.Context, in dto.CreateRemitoRequest) (*dto.RemitoResponse, error) {
	if in.ClienteID <= 0 {
		return nil, invalid("cliente_id es obligatorio")
	}
	fecha, err := parseFecha("fecha", in.Fecha)
	if err != nil {
		return nil, err
	}
	tipo := strings.TrimSpace(in.Tipo)
	if !tipoRemitoValido(tipo) {
		return nil, invalid("tipo debe ser %s o %s", entity.RemitoEntrega, entity.RemitoRetiro)
	}
	if in.Cantidad <= 0 {
		return nil, invalid("cantidad debe ser mayor a cero")
	}
	c, err := uc.clienteRepo.GetByID(ctx, in.ClienteID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, notFound("cliente")
	}

	now := uc.now()
	r := &entity.Remito{
		ID:            strings.TrimSpace(in.ID),
		ClienteID:     in.ClienteID,
		ContratoID:    strings.TrimSpace(in.ContratoID),
		Fecha:         fecha,
		Tipo:          tipo,
		Cantidad:      in.Cantidad,
		Observaciones: strings.TrimSpace(in.Observaciones),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if r.ID == "" {
		r.ID = entity.NuevoNumero(entity.PrefijoRemito, now)
	}
	if err := uc.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	out := toRemitoResponse(r)
	return &out, nil
}

// GetByID remito con cliente y contrato.
func (uc *RemitoUseCase) GetByID(ctx context.Context, id string) (*dto.RemitoDetalleResponse, error) {
	r, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, notFound("remito")
	}
	out := &dto.RemitoDetalleResponse{RemitoResponse: toRemitoResponse(r)}
	cliente, err := uc.clienteRepo.GetByID(ctx, r.ClienteID)
	if err != nil {
		return nil, err
	}
	if cliente != nil {
		out.Cliente = toClienteContacto(cliente)
	}
	if r.ContratoID != "" {
		c, err := uc.contratoRepo.GetByID(ctx, r.ContratoID)
		if err != nil {
			return nil, err
		}
		out.Contrato = toContratoRef(c)
	}
	return out, nil
}

// List remitos filtrados, el más reciente primero.
func (uc *RemitoUseCase) List(ctx context.Context, f repository.RemitoFiltro) ([]dto.RemitoListItem, error) {
	if f.Tipo != "" && !tipoRemitoValido(f.Tipo) {
		return nil, invalid("tipo %q no es válido", f.Tipo)
	}
	f.Query = strings.TrimSpace(f.Query)
	list, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RemitoListItem, 0, len(list))
	for i := range list {
		out = append(out, dto.RemitoListItem{
			RemitoResponse: toRemitoResponse(&list[i].Remito),
			Cliente:        dto.ClienteRefDTO{ID: list[i].ClienteID, Nombre: list[i].ClienteNombre},
		})
	}
	return out, nil
}

// Update aplica solo los campos enviados.
func (uc *RemitoUseCase) Update(ctx context.Context, id string, in dto.UpdateRemitoRequest) (*dto.RemitoResponse, error) {
	r, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, notFound("remito")
	}
	if in.ClienteID != nil {
		if *in.ClienteID <= 0 {
			return nil, invalid("cliente_id no es válido")
		}
		r.ClienteID = *in.ClienteID
	}
	if in.ContratoID != nil {
		r.ContratoID = strings.TrimSpace(*in.ContratoID)
	}
	if in.Fecha != nil {
		t, err := parseFecha("fecha", *in.Fecha)
		if err != nil {
			return nil, err
		}
		r.Fecha = t
	}
	if in.Tipo != nil {
		if !tipoRemitoValido(*in.Tipo) {
			return nil, invalid("tipo %q no es válido", *in.Tipo)
		}
		r.Tipo = *in.Tipo
	}
	if in.Cantidad != nil {
		if *in.Cantidad <= 0 {
			return nil, invalid("cantidad debe ser mayor a cero")
		}
		r.Cantidad = *in.Cantidad
	}
	if in.Observaciones != nil {
		r.Observaciones = strings.TrimSpace(*in.Observaciones)
	}
	r.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, r); err != nil {
		return nil, err
	}
	out := toRemitoResponse(r)
	return &out, nil
}

// Delete elimina un remito.
func (uc *RemitoUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}
