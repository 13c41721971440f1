package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/Banos-api/internal/application/dto"
	"github.com/jhoicas/Banos-api/internal/domain/entity"
	"github.com/jhoicas/Banos-api/internal/domain/repository"
	"github.com/jhoicas/Banos-api/internal/domain/vencimiento"
)

// BanoUseCase inventario de baños.
type BanoUseCase struct {
	repo repository.BanoRepository
	now  vencimiento.Reloj
}

// NewBanoUseCase construye el caso de uso.
func NewBanoUseCase(repo repository.BanoRepository, now vencimiento.Reloj) *BanoUseCase {
	return &BanoUseCase{repo: repo, now: now}
}

// Create da de alta un baño. Por defecto queda Disponible en el Depósito Central.
func (uc *BanoUseCase) Create(ctx context.Context, in dto.CreateBanoRequest) (*dto.BanoResponse, error) {
	id := banoID(in.ID)
	if id == "" {
		return nil, invalid("id es obligatorio")
	}
	estado := strings.TrimSpace(in.Estado)
	if estado == "" {
		estado = entity.BanoDisponible
	}
	if !entity.EstadoBanoValido(estado) {
		return nil, invalid("estado %q no es válido", estado)
	}
	ubicacion := strings.TrimSpace(in.Ubicacion)
	if ubicacion == "" {
		ubicacion = entity.UbicacionDeposito
	}
	now := uc.now()
	b := &entity.Bano{
		ID:            id,
		Estado:        estado,
		Ubicacion:     ubicacion,
		Observaciones: strings.TrimSpace(in.Observaciones),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	out := toBanoResponse(b)
	return &out, nil
}

// GetByID baño con su historial de contratos.
func (uc *BanoUseCase) GetByID(ctx context.Context, id string) (*dto.BanoDetalleResponse, error) {
	id = banoID(id)
	b, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, notFound("baño")
	}
	historial, err := uc.repo.Historial(ctx, id)
	if err != nil {
		return nil, err
	}
	out := &dto.BanoDetalleResponse{
		BanoResponse: toBanoResponse(b),
		Contratos:    make([]dto.BanoHistorialDTO, 0, len(historial)),
	}
	for _, h := range historial {
		out.Contratos = append(out.Contratos, dto.BanoHistorialDTO{
			AsignacionID:  h.AsignacionID,
			ContratoID:    h.ContratoID,
			FechaInicio:   formatFecha(h.FechaInicio),
			FechaFin:      formatFecha(h.FechaFin),
			ValorDiario:   h.ValorDiario,
			ClienteID:     h.ClienteID,
			ClienteNombre: h.ClienteNombre,
		})
	}
	return out, nil
}

// List baños ordenados por ID.
func (uc *BanoUseCase) List(ctx context.Context, estado, query string) ([]dto.BanoResponse, error) {
	estado = strings.TrimSpace(estado)
	if estado != "" && !entity.EstadoBanoValido(estado) {
		return nil, invalid("estado %q no es válido", estado)
	}
	list, err := uc.repo.List(ctx, repository.BanoFiltro{Estado: estado, Query: strings.TrimSpace(query)})
	if err != nil {
		return nil, err
	}
	out := make([]dto.BanoResponse, 0, len(list))
	for _, b := range list {
		out = append(out, toBanoResponse(b))
	}
	return out, nil
}

// Update aplica solo los campos enviados.
func (uc *BanoUseCase) Update(ctx context.Context, id string, in dto.UpdateBanoRequest) (*dto.BanoResponse, error) {
	b, err := uc.repo.GetByID(ctx, banoID(id))
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, notFound("baño")
	}
	if in.Estado != nil {
		if !entity.EstadoBanoValido(*in.Estado) {
			return nil, invalid("estado %q no es válido", *in.Estado)
		}
		b.Estado = *in.Estado
	}
	if in.Ubicacion != nil {
		b.Ubicacion = strings.TrimSpace(*in.Ubicacion)
	}
	if in.Observaciones != nil {
		b.Observaciones = strings.TrimSpace(*in.Observaciones)
	}
	b.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	out := toBanoResponse(b)
	return &out, nil
}

// Delete elimina un baño.
func (uc *BanoUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, banoID(id))
}

// Inventario vista general: disponibles, alquilados por cliente y totales.
func (uc *BanoUseCase) Inventario(ctx context.Context) (*dto.InventarioResponse, error) {
	disponibles, err := uc.repo.List(ctx, repository.BanoFiltro{Estado: entity.BanoDisponible})
	if err != nil {
		return nil, err
	}
	alquilados, err := uc.repo.ListAlquilados(ctx)
	if err != nil {
		return nil, err
	}
	hoy := uc.now()

	out := &dto.InventarioResponse{
		Disponibles: make([]dto.BanoResponse, 0, len(disponibles)),
		PorCliente:  []dto.BanosClienteDTO{},
	}
	for _, b := range disponibles {
		out.Disponibles = append(out.Disponibles, toBanoResponse(b))
	}

	// Se agrupa por cliente conservando el orden de la consulta.
	idx := map[int64]int{}
	for _, a := range alquilados {
		dias := vencimiento.DiasRestantes(a.FechaFin, hoy)
		switch {
		case dias < 0:
			out.Totales.Vencidos++
		case vencimiento.PorVencer(dias):
			out.Totales.PorVencer++
		}
		i, ok := idx[a.ClienteID]
		if !ok {
			i = len(out.PorCliente)
			idx[a.ClienteID] = i
			out.PorCliente = append(out.PorCliente, dto.BanosClienteDTO{ClienteID: a.ClienteID, Cliente: a.ClienteNombre})
		}
		out.PorCliente[i].Banos = append(out.PorCliente[i].Banos, dto.BanoAsignadoDTO{
			ID:             a.BanoID,
			FechaInicio:    formatFecha(a.FechaInicio),
			FechaFin:       formatFecha(a.FechaFin),
			DiasRestantes:  dias,
			ContratoID:     a.ContratoID,
			Estado:         vencimiento.EstadoContrato(dias),
			ValorDiario:    a.ValorDiario,
			CargoAdicional: vencimiento.CargoAdicional(dias, a.ValorDiario),
		})
	}

	t := &out.Totales
	t.Disponibles = len(disponibles)
	t.Alquilados = len(alquilados)
	t.Total = t.Disponibles + t.Alquilados
	t.PorcentajeDisponibles = vencimiento.Porcentaje(t.Disponibles, t.Total)
	t.PorcentajeAlquilados = vencimiento.Porcentaje(t.Alquilados, t.Total)
	return out, nil
}
