package entity

import "time"

// Estados de un baño químico.
const (
	BanoDisponible    = "Disponible"
	BanoAlquilado     = "Alquilado"
	BanoMantenimiento = "Mantenimiento"
)

// Ubicaciones habituales de un baño.
const (
	UbicacionDeposito = "Depósito Central"
	UbicacionNorte    = "Sucursal Norte"
	UbicacionSur      = "Sucursal Sur"
	UbicacionCliente  = "Cliente"
)

// Bano representa una unidad de baño químico del inventario (ID tipo "B001").
type Bano struct {
	ID            string
	Estado        string
	Ubicacion     string
	Observaciones string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// EstadoBanoValido indica si el estado pertenece al catálogo.
func EstadoBanoValido(estado string) bool {
	switch estado {
	case BanoDisponible, BanoAlquilado, BanoMantenimiento:
		return true
	}
	return false
}
