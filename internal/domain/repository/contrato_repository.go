package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Banos-api/internal/domain/entity"
)

// ContratoFiltro filtros del listado de contratos.
type ContratoFiltro struct {
	ClienteID int64
	// Query busca en el id del contrato y en el nombre del cliente.
	Query string
}

// ContratoConCliente contrato con el nombre del cliente y la cantidad de baños asignados.
type ContratoConCliente struct {
	entity.Contrato
	ClienteNombre string
	CantidadBanos int
}

// ContratoRepository puerto de persistencia para Contrato.
type ContratoRepository interface {
	Create(ctx context.Context, c *entity.Contrato) error
	GetByID(ctx context.Context, id string) (*entity.Contrato, error)
	List(ctx context.Context, f ContratoFiltro) ([]ContratoConCliente, error)
	ListByCliente(ctx context.Context, clienteID int64) ([]*entity.Contrato, error)
	// ListVencenEntre contratos con desde <= fecha_fin <= hasta.
	ListVencenEntre(ctx context.Context, desde, hasta time.Time) ([]*entity.Contrato, error)
	Update(ctx context.Context, c *entity.Contrato) error
	Delete(ctx context.Context, id string) error
}

// AsignacionConBano asignación de un contrato con estado y ubicación actuales del baño.
type AsignacionConBano struct {
	entity.BanoContrato
	Estado    string
	Ubicacion string
}

// AsignacionRepository puerto de persistencia para banos_contratos.
type AsignacionRepository interface {
	// CreateMany inserta las asignaciones; ignora las que ya existen para el mismo baño y contrato.
	CreateMany(ctx context.Context, asignaciones []*entity.BanoContrato) error
	ListByContrato(ctx context.Context, contratoID string) ([]AsignacionConBano, error)
	BanoIDsByContrato(ctx context.Context, contratoID string) ([]string, error)
	DeleteByContratoAndBanos(ctx context.Context, contratoID string, banoIDs []string) error
	// ActualizarFechas mueve al rango nuevo las asignaciones del contrato que tenían
	// exactamente el rango anterior (las devueltas antes de tiempo no se tocan).
	ActualizarFechas(ctx context.Context, contratoID string, antes, despues entity.Periodo) error
}
