package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Contrato acuerdo de alquiler de uno o más baños entre fechas a un valor diario.
type Contrato struct {
	ID               string
	ClienteID        int64
	FechaInicio      time.Time
	FechaFin         time.Time
	ValorDiario      decimal.Decimal
	DireccionEntrega string
	Observaciones    string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// BanoContrato asignación de un baño a un contrato (tabla banos_contratos).
// Las fechas pueden diferir del contrato si el baño se retira antes.
type BanoContrato struct {
	ID          int64
	BanoID      string
	ContratoID  string
	FechaInicio time.Time
	FechaFin    time.Time
}

// Periodo rango de fechas (DATE) de un contrato o asignación.
type Periodo struct {
	Inicio time.Time
	Fin    time.Time
}

// Periodo fechas del contrato.
func (c *Contrato) Periodo() Periodo {
	return Periodo{Inicio: c.FechaInicio, Fin: c.FechaFin}
}

// Igual mismas fechas (compara instantes, no zonas).
func (p Periodo) Igual(o Periodo) bool {
	return p.Inicio.Equal(o.Inicio) && p.Fin.Equal(o.Fin)
}
