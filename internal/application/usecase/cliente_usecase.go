package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/Banos-api/internal/application/dto"
	"github.com/jhoicas/Banos-api/internal/domain/entity"
	"github.com/jhoicas/Banos-api/internal/domain/repository"
	"github.com/jhoicas/Banos-api/internal/domain/vencimiento"
)

const (
	recientesDefault = 3
	recientesMax     = 20
)

// ClienteUseCase casos de uso CRUD para clientes.
type ClienteUseCase struct {
	repo         repository.ClienteRepository
	contratoRepo repository.ContratoRepository
	facturaRepo  repository.FacturaRepository
	tx           ClienteTxRunner
	now          vencimiento.Reloj
}

// NewClienteUseCase construye el caso de uso.
func NewClienteUseCase(
	repo repository.ClienteRepository,
	contratoRepo repository.ContratoRepository,
	facturaRepo repository.FacturaRepository,
	tx ClienteTxRunner,
	now vencimiento.Reloj,
) *ClienteUseCase {
	return &ClienteUseCase{repo: repo, contratoRepo: contratoRepo, facturaRepo: facturaRepo, tx: tx, now: now}
}

// Create crea un nuevo cliente.
func (uc *ClienteUseCase) Create(ctx context.Context, in dto.CreateClienteRequest) (*dto.ClienteResponse, error) {
	nombre := strings.TrimSpace(in.Nombre)
	if nombre == "" {
		return nil, invalid("nombre es obligatorio")
	}
	now := uc.now()
	c := &entity.Cliente{
		Nombre:    nombre,
		CUIT:      strings.TrimSpace(in.CUIT),
		Telefono:  strings.TrimSpace(in.Telefono),
		Direccion: strings.TrimSpace(in.Direccion),
		Email:     strings.TrimSpace(in.Email),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	out := toClienteResponse(c)
	return &out, nil
}

// GetByID obtiene un cliente con sus contratos y facturas.
func (uc *ClienteUseCase) GetByID(ctx context.Context, id int64) (*dto.ClienteDetalleResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, notFound("cliente")
	}
	contratos, err := uc.contratoRepo.ListByCliente(ctx, id)
	if err != nil {
		return nil, err
	}
	facturas, err := uc.facturaRepo.List(ctx, repository.FacturaFiltro{ClienteID: id})
	if err != nil {
		return nil, err
	}

	out := &dto.ClienteDetalleResponse{
		ClienteResponse: toClienteResponse(c),
		Contratos:       make([]dto.ContratoResumenDTO, 0, len(contratos)),
		Facturas:        make([]dto.FacturaResumenDTO, 0, len(facturas)),
	}
	for _, k := range contratos {
		out.Contratos = append(out.Contratos, dto.ContratoResumenDTO{
			ID:          k.ID,
			FechaInicio: formatFecha(k.FechaInicio),
			FechaFin:    formatFecha(k.FechaFin),
			ValorDiario: k.ValorDiario,
		})
	}
	for i := range facturas {
		out.Facturas = append(out.Facturas, *toFacturaResumen(&facturas[i].Factura))
	}
	return out, nil
}

// List clientes ordenados por nombre.
func (uc *ClienteUseCase) List(ctx context.Context, query string) ([]dto.ClienteResponse, error) {
	list, err := uc.repo.List(ctx, strings.TrimSpace(query))
	if err != nil {
		return nil, err
	}
	return toClienteResponses(list), nil
}

// Recientes últimos clientes dados de alta (limit entre 1 y 20, 3 por defecto).
func (uc *ClienteUseCase) Recientes(ctx context.Context, limit int) ([]dto.ClienteResponse, error) {
	if limit <= 0 {
		limit = recientesDefault
	}
	if limit > recientesMax {
		limit = recientesMax
	}
	list, err := uc.repo.ListRecientes(ctx, limit)
	if err != nil {
		return nil, err
	}
	return toClienteResponses(list), nil
}

// Update aplica solo los campos enviados.
func (uc *ClienteUseCase) Update(ctx context.Context, id int64, in dto.UpdateClienteRequest) (*dto.ClienteResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, notFound("cliente")
	}
	if in.Nombre != nil {
		nombre := strings.TrimSpace(*in.Nombre)
		if nombre == "" {
			return nil, invalid("nombre no puede quedar vacío")
		}
		c.Nombre = nombre
	}
	if in.CUIT != nil {
		c.CUIT = strings.TrimSpace(*in.CUIT)
	}
	if in.Telefono != nil {
		c.Telefono = strings.TrimSpace(*in.Telefono)
	}
	if in.Direccion != nil {
		c.Direccion = strings.TrimSpace(*in.Direccion)
	}
	if in.Email != nil {
		c.Email = strings.TrimSpace(*in.Email)
	}
	c.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	out := toClienteResponse(c)
	return &out, nil
}

// Delete elimina el cliente. Sus contratos se borran en cascada y los baños
// alquilados a esos contratos vuelven al depósito como disponibles.
func (uc *ClienteUseCase) Delete(ctx context.Context, id int64) error {
	return uc.tx.RunClientes(ctx, func(
		clienteRepo repository.ClienteRepository,
		contratoRepo repository.ContratoRepository,
		asignacionRepo repository.AsignacionRepository,
		banoRepo repository.BanoRepository,
	) error {
		contratos, err := contratoRepo.ListByCliente(ctx, id)
		if err != nil {
			return err
		}
		inicios := map[string]time.Time{}
		for _, k := range contratos {
			asignadas, err := asignacionRepo.ListByContrato(ctx, k.ID)
			if err != nil {
				return err
			}
			registrarInicios(inicios, asignadas)
		}
		if err := clienteRepo.Delete(ctx, id); err != nil {
			return err
		}
		_, err = liberarBanos(ctx, banoRepo, inicios)
		return err
	})
}

func toClienteResponses(list []*entity.Cliente) []dto.ClienteResponse {
	out := make([]dto.ClienteResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toClienteResponse(c))
	}
	return out
}
