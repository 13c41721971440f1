package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Banos-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// BanoFiltro filtros del listado de baños.
type BanoFiltro struct {
	Estado string
	Query  string
}

// BanoHistorial una asignación del baño con el contrato y cliente asociados.
type BanoHistorial struct {
	AsignacionID  int64
	ContratoID    string
	FechaInicio   time.Time
	FechaFin      time.Time
	ValorDiario   decimal.Decimal
	ClienteID     int64
	ClienteNombre string
}

// BanoAlquilado asignación vigente de un baño en estado Alquilado.
type BanoAlquilado struct {
	BanoID        string
	ContratoID    string
	FechaInicio   time.Time
	FechaFin      time.Time
	ValorDiario   decimal.Decimal
	ClienteID     int64
	ClienteNombre string
}

// BanoRepository puerto de persistencia para Bano.
type BanoRepository interface {
	Create(ctx context.Context, b *entity.Bano) error
	GetByID(ctx context.Context, id string) (*entity.Bano, error)
	List(ctx context.Context, f BanoFiltro) ([]*entity.Bano, error)
	Update(ctx context.Context, b *entity.Bano) error
	Delete(ctx context.Context, id string) error
	// GetByIDs devuelve los baños existentes de la lista (los ausentes se omiten).
	GetByIDs(ctx context.Context, ids []string) ([]*entity.Bano, error)
	// SetEstado cambia estado y ubicación de varios baños a la vez.
	SetEstado(ctx context.Context, ids []string, estado, ubicacion string) error
	Historial(ctx context.Context, banoID string) ([]BanoHistorial, error)
	// ListAlquilados devuelve la asignación más reciente de cada baño Alquilado.
	ListAlquilados(ctx context.Context) ([]BanoAlquilado, error)
}
