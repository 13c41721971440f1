// Package alertas gestiona las alertas de cobranza y de vencimiento de contratos:
// listado, alta manual, resolución y generación automática.
package alertas

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/Banos-api/internal/application/dto"
	"github.com/jhoicas/Banos-api/internal/domain"
	"github.com/jhoicas/Banos-api/internal/domain/entity"
	"github.com/jhoicas/Banos-api/internal/domain/repository"
	"github.com/jhoicas/Banos-api/internal/domain/vencimiento"
	"github.com/jhoicas/Banos-api/pkg/logger"
	"github.com/jhoicas/Banos-api/pkg/moneda"
)

// Recorder cuenta las alertas generadas por tipo.
type Recorder interface {
	AddAlertas(tipo string, n int)
}

// UseCase casos de uso de alertas.
type UseCase struct {
	repo         repository.AlertaRepository
	contratoRepo repository.ContratoRepository
	facturaRepo  repository.FacturaRepository
	recorder     Recorder
	log          *logger.Logger
	now          vencimiento.Reloj
}

// Deps dependencias del caso de uso. Recorder puede ser nil.
type Deps struct {
	Alertas   repository.AlertaRepository
	Contratos repository.ContratoRepository
	Facturas  repository.FacturaRepository
	Recorder  Recorder
	Log       *logger.Logger
	Now       vencimiento.Reloj
}

// NewUseCase construye el caso de uso.
func NewUseCase(d Deps) *UseCase {
	return &UseCase{
		repo:         d.Alertas,
		contratoRepo: d.Contratos,
		facturaRepo:  d.Facturas,
		recorder:     d.Recorder,
		log:          d.Log,
		now:          d.Now,
	}
}

// List alertas filtradas con el conteo por tipo de las devueltas.
func (uc *UseCase) List(ctx context.Context, f repository.AlertaFiltro) (*dto.AlertasListResponse, error) {
	if f.Tipo != "" && f.Tipo != entity.AlertaPago && f.Tipo != entity.AlertaContrato {
		return nil, invalid("tipo %q no es válido", f.Tipo)
	}
	if f.Prioridad != "" && !entity.PrioridadValida(f.Prioridad) {
		return nil, invalid("prioridad %q no es válida", f.Prioridad)
	}
	list, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := &dto.AlertasListResponse{Items: make([]dto.AlertaListItem, 0, len(list))}
	for i := range list {
		a := &list[i]
		out.Items = append(out.Items, dto.AlertaListItem{
			AlertaResponse: toAlertaResponse(&a.Alerta),
			Cliente:        dto.ClienteRefDTO{ID: a.ClienteID, Nombre: a.ClienteNombre},
		})
		switch a.Tipo {
		case entity.AlertaPago:
			out.Pagos++
		case entity.AlertaContrato:
			out.Contratos++
		}
	}
	out.Total = len(out.Items)
	return out, nil
}

// Create alta manual. Prioridad por defecto media; fecha por defecto hoy.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateAlertaRequest) (*dto.AlertaResponse, error) {
	tipo := strings.TrimSpace(in.Tipo)
	if tipo != entity.AlertaPago && tipo != entity.AlertaContrato {
		return nil, invalid("tipo debe ser %s o %s", entity.AlertaPago, entity.AlertaContrato)
	}
	if in.ClienteID <= 0 {
		return nil, invalid("cliente_id es obligatorio")
	}
	mensaje := strings.TrimSpace(in.Mensaje)
	if mensaje == "" {
		return nil, invalid("mensaje es obligatorio")
	}
	prioridad := strings.TrimSpace(in.Prioridad)
	if prioridad == "" {
		prioridad = entity.PrioridadMedia
	}
	if !entity.PrioridadValida(prioridad) {
		return nil, invalid("prioridad %q no es válida", prioridad)
	}
	now := uc.now()
	fecha := vencimiento.Dia(now)
	if s := strings.TrimSpace(in.Fecha); s != "" {
		t, err := time.Parse(dto.LayoutFecha, s)
		if err != nil {
			return nil, invalid("fecha debe tener formato AAAA-MM-DD")
		}
		fecha = t
	}

	a := &entity.Alerta{
		Tipo:       tipo,
		ClienteID:  in.ClienteID,
		ContratoID: strings.TrimSpace(in.ContratoID),
		FacturaID:  strings.TrimSpace(in.FacturaID),
		Mensaje:    mensaje,
		Fecha:      fecha,
		Prioridad:  prioridad,
		CreatedAt:  now,
	}
	if err := uc.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	out := toAlertaResponse(a)
	return &out, nil
}

// Resolver marca la alerta como resuelta.
func (uc *UseCase) Resolver(ctx context.Context, id int64) error {
	if id <= 0 {
		return invalid("id es obligatorio")
	}
	if err := uc.repo.Resolver(ctx, id); err != nil {
		return err
	}
	uc.log.Info().Int64("alerta_id", id).Msg("alerta resuelta")
	return nil
}

// Generar crea las alertas que falten:
//   - contratos que vencen dentro de la ventana (hoy..hoy+7) sin alerta de contrato pendiente;
//   - facturas Pendiente emitidas hace más del plazo de pago sin alerta de pago pendiente.
func (uc *UseCase) Generar(ctx context.Context) (*dto.AlertasGeneradasResponse, error) {
	now := uc.now()
	hoy := vencimiento.Dia(now)
	out := &dto.AlertasGeneradasResponse{AlertasGeneradas: []dto.AlertaResponse{}}

	contratos, err := uc.contratoRepo.ListVencenEntre(ctx, hoy, hoy.AddDate(0, 0, vencimiento.VentanaPorVencer))
	if err != nil {
		return nil, fmt.Errorf("alertas: contratos por vencer: %w", err)
	}
	nContratos := 0
	for _, c := range contratos {
		existe, err := uc.repo.ExistePendienteContrato(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		if existe {
			continue
		}
		dias := vencimiento.DiasRestantes(c.FechaFin, now)
		a := &entity.Alerta{
			Tipo:       entity.AlertaContrato,
			ClienteID:  c.ClienteID,
			ContratoID: c.ID,
			Mensaje:    fmt.Sprintf("Contrato vence en %d días", dias),
			Fecha:      hoy,
			Prioridad:  vencimiento.PrioridadContrato(dias),
			CreatedAt:  now,
		}
		if err := uc.repo.Create(ctx, a); err != nil {
			return nil, err
		}
		nContratos++
		out.AlertasGeneradas = append(out.AlertasGeneradas, toAlertaResponse(a))
	}

	facturas, err := uc.facturaRepo.ListPendientesAntesDe(ctx, vencimiento.Dia(vencimiento.LimiteFacturasVencidas(now)))
	if err != nil {
		return nil, fmt.Errorf("alertas: facturas vencidas: %w", err)
	}
	nPagos := 0
	for _, f := range facturas {
		existe, err := uc.repo.ExistePendienteFactura(ctx, f.ID)
		if err != nil {
			return nil, err
		}
		if existe {
			continue
		}
		a := &entity.Alerta{
			Tipo:       entity.AlertaPago,
			ClienteID:  f.ClienteID,
			ContratoID: f.ContratoID,
			FacturaID:  f.ID,
			Mensaje:    fmt.Sprintf("Factura %s vencida por %s", f.ID, moneda.Formato(f.Monto)),
			Fecha:      hoy,
			Prioridad:  entity.PrioridadAlta,
			CreatedAt:  now,
		}
		if err := uc.repo.Create(ctx, a); err != nil {
			return nil, err
		}
		nPagos++
		out.AlertasGeneradas = append(out.AlertasGeneradas, toAlertaResponse(a))
	}

	out.Total = len(out.AlertasGeneradas)
	if uc.recorder != nil {
		uc.recorder.AddAlertas(entity.AlertaContrato, nContratos)
		uc.recorder.AddAlertas(entity.AlertaPago, nPagos)
	}
	uc.log.Info().Int("contratos", nContratos).Int("pagos", nPagos).Msg("alertas generadas")
	return out, nil
}

func toAlertaResponse(a *entity.Alerta) dto.AlertaResponse {
	return dto.AlertaResponse{
		ID:         a.ID,
		Tipo:       a.Tipo,
		ClienteID:  a.ClienteID,
		ContratoID: a.ContratoID,
		FacturaID:  a.FacturaID,
		Mensaje:    a.Mensaje,
		Fecha:      a.Fecha.Format(dto.LayoutFecha),
		Prioridad:  a.Prioridad,
		Resuelta:   a.Resuelta,
	}
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, fmt.Sprintf(format, args...))
}
