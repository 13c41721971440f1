package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Banos-api/internal/application/seed"
)

// SeedHandler carga datos de ejemplo. Solo se registra con SEED_ENABLED.
type SeedHandler struct {
	uc *seed.UseCase
}

// NewSeedHandler construye el handler.
func NewSeedHandler(uc *seed.UseCase) *SeedHandler {
	return &SeedHandler{uc: uc}
}

// Basico godoc
// @Summary      Vaciar la base y cargar el juego básico
// @Tags         seed
// @Produce      json
// @Success      200  {object}  dto.SeedResponse
// @Router       /api/seed [post]
func (h *SeedHandler) Basico(c *fiber.Ctx) error {
	out, err := h.uc.Basico(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Completo godoc
// @Summary      Vaciar la base y cargar el juego completo con fechas relativas a hoy
// @Tags         seed
// @Produce      json
// @Success      200  {object}  dto.SeedResponse
// @Router       /api/seed/datos-completos [post]
func (h *SeedHandler) Completo(c *fiber.Ctx) error {
	out, err := h.uc.Completo(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
