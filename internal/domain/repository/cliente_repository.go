package repository

import (
	"context"

	"github.com/jhoicas/Banos-api/internal/domain/entity"
)

// ClienteRepository puerto de persistencia para Cliente.
type ClienteRepository interface {
	Create(ctx context.Context, c *entity.Cliente) error
	// GetByID devuelve (nil, nil) si el cliente no existe.
	GetByID(ctx context.Context, id int64) (*entity.Cliente, error)
	// List ordena por nombre; query filtra por nombre, cuit o dirección (sin distinguir mayúsculas).
	List(ctx context.Context, query string) ([]*entity.Cliente, error)
	ListRecientes(ctx context.Context, limit int) ([]*entity.Cliente, error)
	Update(ctx context.Context, c *entity.Cliente) error
	// Delete devuelve domain.ErrNotFound si no había fila.
	Delete(ctx context.Context, id int64) error
}
