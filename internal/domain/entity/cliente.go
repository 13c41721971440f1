package entity

import "time"

// Cliente representa a quien alquila baños (empresa, municipio, productora).
type Cliente struct {
	ID        int64
	Nombre    string
	CUIT      string
	Telefono  string
	Direccion string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
