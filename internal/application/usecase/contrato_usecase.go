package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/jhoicas/Banos-api/internal/application/dto"
	"github.com/jhoicas/Banos-api/internal/domain"
	"github.com/jhoicas/Banos-api/internal/domain/entity"
	"github.com/jhoicas/Banos-api/internal/domain/repository"
	"github.com/jhoicas/Banos-api/internal/domain/vencimiento"
	"github.com/jhoicas/Banos-api/pkg/logger"
	"github.com/shopspring/decimal"
)

// ContratoUseCase contratos de alquiler y asignación de baños.
//
// Las escrituras corren en una transacción (ContratoTxRunner): contrato, asignaciones y estado
// de los baños cambian juntos.
type ContratoUseCase struct {
	contratoRepo   repository.ContratoRepository
	asignacionRepo repository.AsignacionRepository
	clienteRepo    repository.ClienteRepository
	facturaRepo    repository.FacturaRepository
	remitoRepo     repository.RemitoRepository
	tx             ContratoTxRunner
	log            *logger.Logger
	now            vencimiento.Reloj
}

// ContratoDeps dependencias del caso de uso.
type ContratoDeps struct {
	Contratos    repository.ContratoRepository
	Asignaciones repository.AsignacionRepository
	Clientes     repository.ClienteRepository
	Facturas     repository.FacturaRepository
	Remitos      repository.RemitoRepository
	Tx           ContratoTxRunner
	Log          *logger.Logger
	Now          vencimiento.Reloj
}

// NewContratoUseCase construye el caso de uso.
func NewContratoUseCase(d ContratoDeps) *ContratoUseCase {
	return &ContratoUseCase{
		contratoRepo:   d.Contratos,
		asignacionRepo: d.Asignaciones,
		clienteRepo:    d.Clientes,
		facturaRepo:    d.Facturas,
		remitoRepo:     d.Remitos,
		tx:             d.Tx,
		log:            d.Log,
		now:            d.Now,
	}
}

// Create registra el contrato, asigna los baños con las fechas del contrato y los marca Alquilado.
func (uc *ContratoUseCase) Create(ctx context.Context, in dto.CreateContratoRequest) (*dto.ContratoCreadoResponse, error) {
	banos := normalizarIDs(in.Banos)
	if len(banos) == 0 {
		return nil, invalid("debe asignar al menos un baño")
	}
	if in.Contrato.ClienteID <= 0 {
		return nil, invalid("cliente_id es obligatorio")
	}
	inicio, err := parseFecha("fecha_inicio", in.Contrato.FechaInicio)
	if err != nil {
		return nil, err
	}
	fin, err := parseFecha("fecha_fin", in.Contrato.FechaFin)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	c := &entity.Contrato{
		ID:               strings.TrimSpace(in.Contrato.ID),
		ClienteID:        in.Contrato.ClienteID,
		FechaInicio:      inicio,
		FechaFin:         fin,
		ValorDiario:      in.Contrato.ValorDiario,
		DireccionEntrega: strings.TrimSpace(in.Contrato.DireccionEntrega),
		Observaciones:    strings.TrimSpace(in.Contrato.Observaciones),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if c.ID == "" {
		c.ID = entity.NuevoNumero(entity.PrefijoContrato, now)
	}
	if err := validarContrato(c); err != nil {
		return nil, err
	}

	cliente, err := uc.clienteRepo.GetByID(ctx, c.ClienteID)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, notFound("cliente")
	}

	err = uc.tx.RunContratos(ctx, func(
		contratoRepo repository.ContratoRepository,
		asignacionRepo repository.AsignacionRepository,
		banoRepo repository.BanoRepository,
	) error {
		if err := verificarDisponibles(ctx, banoRepo, banos); err != nil {
			return err
		}
		if err := contratoRepo.Create(ctx, c); err != nil {
			return err
		}
		if err := asignacionRepo.CreateMany(ctx, asignaciones(c, banos)); err != nil {
			return err
		}
		return banoRepo.SetEstado(ctx, banos, entity.BanoAlquilado, entity.UbicacionCliente)
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().Str("contrato_id", c.ID).Int64("cliente_id", c.ClienteID).Strs("banos", banos).Msg("contrato creado")
	return &dto.ContratoCreadoResponse{Contrato: toContratoResponse(c), Banos: banos}, nil
}

// Update modifica el contrato, agrega los baños de in.Banos y libera los de in.BanosEliminar.
func (uc *ContratoUseCase) Update(ctx context.Context, id string, in dto.UpdateContratoRequest) (*dto.ContratoResponse, error) {
	agregar := normalizarIDs(in.Banos)
	quitar := normalizarIDs(in.BanosEliminar)

	var out dto.ContratoResponse
	err := uc.tx.RunContratos(ctx, func(
		contratoRepo repository.ContratoRepository,
		asignacionRepo repository.AsignacionRepository,
		banoRepo repository.BanoRepository,
	) error {
		c, err := contratoRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if c == nil {
			return notFound("contrato")
		}
		antes := c.Periodo()
		if err := aplicarCambiosContrato(c, in.Contrato); err != nil {
			return err
		}
		if in.Contrato.ClienteID != nil {
			cliente, err := uc.clienteRepo.GetByID(ctx, c.ClienteID)
			if err != nil {
				return err
			}
			if cliente == nil {
				return notFound("cliente")
			}
		}
		c.UpdatedAt = uc.now()
		if err := contratoRepo.Update(ctx, c); err != nil {
			return err
		}
		if despues := c.Periodo(); !despues.Igual(antes) {
			if err := asignacionRepo.ActualizarFechas(ctx, id, antes, despues); err != nil {
				return err
			}
		}

		actuales, err := asignacionRepo.BanoIDsByContrato(ctx, id)
		if err != nil {
			return err
		}
		asignados := toSet(actuales)
		removidos := toSet(quitar)

		var nuevos []string
		for _, b := range agregar {
			if !asignados[b] && !removidos[b] {
				nuevos = append(nuevos, b)
			}
		}
		if len(nuevos) > 0 {
			if err := verificarDisponibles(ctx, banoRepo, nuevos); err != nil {
				return err
			}
			if err := asignacionRepo.CreateMany(ctx, asignaciones(c, nuevos)); err != nil {
				return err
			}
			if err := banoRepo.SetEstado(ctx, nuevos, entity.BanoAlquilado, entity.UbicacionCliente); err != nil {
				return err
			}
		}

		var liberar []string
		for _, b := range quitar {
			if asignados[b] {
				liberar = append(liberar, b)
			}
		}
		if len(liberar) > 0 {
			if err := asignacionRepo.DeleteByContratoAndBanos(ctx, id, liberar); err != nil {
				return err
			}
			if err := banoRepo.SetEstado(ctx, liberar, entity.BanoDisponible, entity.UbicacionDeposito); err != nil {
				return err
			}
		}

		uc.log.Info().Str("contrato_id", id).Strs("agregados", nuevos).Strs("liberados", liberar).Msg("contrato actualizado")
		out = toContratoResponse(c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete elimina el contrato y devuelve sus baños al depósito.
func (uc *ContratoUseCase) Delete(ctx context.Context, id string) error {
	var liberados []string
	err := uc.tx.RunContratos(ctx, func(
		contratoRepo repository.ContratoRepository,
		asignacionRepo repository.AsignacionRepository,
		banoRepo repository.BanoRepository,
	) error {
		c, err := contratoRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if c == nil {
			return notFound("contrato")
		}
		asignadas, err := asignacionRepo.ListByContrato(ctx, id)
		if err != nil {
			return err
		}
		inicios := make(map[string]time.Time, len(asignadas))
		registrarInicios(inicios, asignadas)
		if err := contratoRepo.Delete(ctx, id); err != nil {
			return err
		}
		liberados, err = liberarBanos(ctx, banoRepo, inicios)
		return err
	})
	if err != nil {
		return err
	}
	uc.log.Info().Str("contrato_id", id).Strs("liberados", liberados).Msg("contrato eliminado")
	return nil
}

// GetByID contrato con cliente, baños, facturas y remitos.
func (uc *ContratoUseCase) GetByID(ctx context.Context, id string) (*dto.ContratoDetalleResponse, error) {
	c, err := uc.contratoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, notFound("contrato")
	}
	cliente, err := uc.clienteRepo.GetByID(ctx, c.ClienteID)
	if err != nil {
		return nil, err
	}
	asigs, err := uc.asignacionRepo.ListByContrato(ctx, id)
	if err != nil {
		return nil, err
	}
	facturas, err := uc.facturaRepo.List(ctx, repository.FacturaFiltro{ContratoID: id})
	if err != nil {
		return nil, err
	}
	remitos, err := uc.remitoRepo.List(ctx, repository.RemitoFiltro{ContratoID: id})
	if err != nil {
		return nil, err
	}

	hoy := uc.now()
	dias := vencimiento.DiasRestantes(c.FechaFin, hoy)
	out := &dto.ContratoDetalleResponse{
		ContratoResponse: toContratoResponse(c),
		DiasRestantes:    dias,
		Estado:           vencimiento.EstadoContrato(dias),
		Banos:            make([]dto.AsignacionDTO, 0, len(asigs)),
		Facturas:         make([]dto.FacturaResponse, 0, len(facturas)),
		Remitos:          make([]dto.RemitoResponse, 0, len(remitos)),
	}
	if cliente != nil {
		out.Cliente = toClienteContacto(cliente)
	}
	for _, a := range asigs {
		out.Banos = append(out.Banos, dto.AsignacionDTO{
			ID:          a.ID,
			BanoID:      a.BanoID,
			FechaInicio: formatFecha(a.FechaInicio),
			FechaFin:    formatFecha(a.FechaFin),
			Estado:      a.Estado,
			Ubicacion:   a.Ubicacion,
		})
	}
	for i := range facturas {
		out.Facturas = append(out.Facturas, toFacturaResponse(&facturas[i].Factura, hoy))
	}
	for i := range remitos {
		out.Remitos = append(out.Remitos, toRemitoResponse(&remitos[i].Remito))
	}
	return out, nil
}

// List contratos con cliente, cantidad de baños y estado de vencimiento.
func (uc *ContratoUseCase) List(ctx context.Context, clienteID int64, query string) ([]dto.ContratoListItem, error) {
	list, err := uc.contratoRepo.List(ctx, repository.ContratoFiltro{ClienteID: clienteID, Query: strings.TrimSpace(query)})
	if err != nil {
		return nil, err
	}
	hoy := uc.now()
	out := make([]dto.ContratoListItem, 0, len(list))
	for i := range list {
		cc := &list[i]
		dias := vencimiento.DiasRestantes(cc.FechaFin, hoy)
		out = append(out, dto.ContratoListItem{
			ContratoResponse: toContratoResponse(&cc.Contrato),
			Cliente:          dto.ClienteRefDTO{ID: cc.ClienteID, Nombre: cc.ClienteNombre},
			CantidadBanos:    cc.CantidadBanos,
			DiasRestantes:    dias,
			Estado:           vencimiento.EstadoContrato(dias),
		})
	}
	return out, nil
}

// Resumen contratos activos, por vencer y valor total de los activos.
func (uc *ContratoUseCase) Resumen(ctx context.Context) (*dto.ContratosResumenDTO, error) {
	list, err := uc.contratoRepo.List(ctx, repository.ContratoFiltro{})
	if err != nil {
		return nil, err
	}
	hoy := uc.now()
	out := &dto.ContratosResumenDTO{ValorTotalActivo: decimal.Zero}
	for i := range list {
		cc := &list[i]
		dias := vencimiento.DiasRestantes(cc.FechaFin, hoy)
		if dias < 0 {
			continue
		}
		out.Activos++
		if vencimiento.PorVencer(dias) {
			out.PorVencer++
		}
		out.ValorTotalActivo = out.ValorTotalActivo.Add(
			vencimiento.ValorContrato(cc.CantidadBanos, cc.ValorDiario, cc.FechaInicio, cc.FechaFin))
	}
	return out, nil
}

func validarContrato(c *entity.Contrato) error {
	if c.FechaFin.Before(c.FechaInicio) {
		return invalid("fecha_fin no puede ser anterior a fecha_inicio")
	}
	if !c.ValorDiario.IsPositive() {
		return invalid("valor_diario debe ser mayor a cero")
	}
	if c.DireccionEntrega == "" {
		return invalid("direccion_entrega es obligatoria")
	}
	return nil
}

func aplicarCambiosContrato(c *entity.Contrato, in dto.UpdateContratoInput) error {
	if in.ClienteID != nil {
		if *in.ClienteID <= 0 {
			return invalid("cliente_id no es válido")
		}
		c.ClienteID = *in.ClienteID
	}
	if in.FechaInicio != nil {
		t, err := parseFecha("fecha_inicio", *in.FechaInicio)
		if err != nil {
			return err
		}
		c.FechaInicio = t
	}
	if in.FechaFin != nil {
		t, err := parseFecha("fecha_fin", *in.FechaFin)
		if err != nil {
			return err
		}
		c.FechaFin = t
	}
	if in.ValorDiario != nil {
		c.ValorDiario = *in.ValorDiario
	}
	if in.DireccionEntrega != nil {
		c.DireccionEntrega = strings.TrimSpace(*in.DireccionEntrega)
	}
	if in.Observaciones != nil {
		c.Observaciones = strings.TrimSpace(*in.Observaciones)
	}
	return validarContrato(c)
}

// verificarDisponibles exige que todos los baños existan y estén Disponible.
func verificarDisponibles(ctx context.Context, banoRepo repository.BanoRepository, ids []string) error {
	found, err := banoRepo.GetByIDs(ctx, ids)
	if err != nil {
		return err
	}
	byID := make(map[string]*entity.Bano, len(found))
	for _, b := range found {
		byID[b.ID] = b
	}
	for _, id := range ids {
		b, ok := byID[id]
		if !ok {
			return notFound("baño " + id)
		}
		if b.Estado != entity.BanoDisponible {
			return fmt.Errorf("%w: %s está %s", domain.ErrUnavailable, id, b.Estado)
		}
	}
	return nil
}

func asignaciones(c *entity.Contrato, banos []string) []*entity.BanoContrato {
	out := make([]*entity.BanoContrato, 0, len(banos))
	for _, b := range banos {
		out = append(out, &entity.BanoContrato{
			BanoID:      b,
			ContratoID:  c.ID,
			FechaInicio: c.FechaInicio,
			FechaFin:    c.FechaFin,
		})
	}
	return out
}

// normalizarIDs pasa a mayúsculas, descarta vacíos y repetidos conservando el orden.
func normalizarIDs(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = banoID(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// registrarInicios guarda por baño el inicio más reciente de las asignaciones dadas.
func registrarInicios(inicios map[string]time.Time, asignadas []repository.AsignacionConBano) {
	for _, a := range asignadas {
		if prev, ok := inicios[a.BanoID]; !ok || a.FechaInicio.After(prev) {
			inicios[a.BanoID] = a.FechaInicio
		}
	}
}

// liberarBanos se llama después de borrar asignaciones. Devuelve al depósito los baños
// cuya asignación vigente era una de las borradas: no les queda ninguna, o la más
// reciente que les queda empezó antes.
func liberarBanos(ctx context.Context, banoRepo repository.BanoRepository, inicios map[string]time.Time) ([]string, error) {
	liberar := make([]string, 0, len(inicios))
	for id, inicio := range inicios {
		historial, err := banoRepo.Historial(ctx, id)
		if err != nil {
			return nil, err
		}
		if len(historial) == 0 || historial[0].FechaInicio.Before(inicio) {
			liberar = append(liberar, id)
		}
	}
	slices.Sort(liberar)
	if err := banoRepo.SetEstado(ctx, liberar, entity.BanoDisponible, entity.UbicacionDeposito); err != nil {
		return nil, err
	}
	return liberar, nil
}

// banoID los IDs de baño se guardan en mayúsculas (b001 -> B001).
func banoID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}

func toSet(ids []string) map[string]bool {
	s := make(map[string]bool, len(ids))
	for _, id := range ids {
		s[id] = true
	}
	return s
}

