package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Banos-api/internal/application/dto"
	"github.com/jhoicas/Banos-api/internal/application/usecase"
)

// BanoHandler maneja baños e inventario.
type BanoHandler struct {
	uc *usecase.BanoUseCase
}

// NewBanoHandler construye el handler.
func NewBanoHandler(uc *usecase.BanoUseCase) *BanoHandler {
	return &BanoHandler{uc: uc}
}

// Create godoc
// @Summary      Alta de baño
// @Tags         banos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBanoRequest  true  "Baño"
// @Success      201   {object}  dto.BanoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/banos [post]
func (h *BanoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBanoRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Baño con historial de asignaciones
// @Tags         banos
// @Produce      json
// @Param        id   path  string  true  "ID del baño (ej. B001)"
// @Success      200  {object}  dto.BanoDetalleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/banos/{id} [get]
func (h *BanoHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return missingID(c)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar baños
// @Tags         banos
// @Produce      json
// @Param        estado  query  string  false  "Disponible | Alquilado | Mantenimiento"
// @Param        query   query  string  false  "Busca en el id"
// @Success      200     {array}   dto.BanoResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/banos [get]
func (h *BanoHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), c.Query("estado"), c.Query("query"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar baño (parcial)
// @Tags         banos
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID del baño"
// @Param        body  body  dto.UpdateBanoRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.BanoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/banos/{id} [put]
func (h *BanoHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return missingID(c)
	}
	var in dto.UpdateBanoRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar baño
// @Tags         banos
// @Param        id   path  string  true  "ID del baño"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/banos/{id} [delete]
func (h *BanoHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return missingID(c)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Inventario godoc
// @Summary      Vista de inventario: disponibles, alquilados por cliente y totales
// @Tags         banos
// @Produce      json
// @Success      200  {object}  dto.InventarioResponse
// @Router       /api/inventario [get]
func (h *BanoHandler) Inventario(c *fiber.Ctx) error {
	out, err := h.uc.Inventario(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
