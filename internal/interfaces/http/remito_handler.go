package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Banos-api/internal/application/dto"
	"github.com/jhoicas/Banos-api/internal/application/usecase"
	"github.com/jhoicas/Banos-api/internal/domain/repository"
)

// RemitoHandler maneja remitos de entrega y retiro.
type RemitoHandler struct {
	uc *usecase.RemitoUseCase
}

// NewRemitoHandler construye el handler.
func NewRemitoHandler(uc *usecase.RemitoUseCase) *RemitoHandler {
	return &RemitoHandler{uc: uc}
}

// Create godoc
// @Summary      Emitir remito
// @Tags         remitos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRemitoRequest  true  "Remito"
// @Success      201   {object}  dto.RemitoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/remitos [post]
func (h *RemitoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRemitoRequest
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
// @Summary      Remito con cliente y contrato
// @Tags         remitos
// @Produce      json
// @Param        id   path  string  true  "ID del remito"
// @Success      200  {object}  dto.RemitoDetalleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/remitos/{id} [get]
func (h *RemitoHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Listar remitos
// @Tags         remitos
// @Produce      json
// @Param        cliente_id   query  int     false  "Filtra por cliente"
// @Param        contrato_id  query  string  false  "Filtra por contrato"
// @Param        tipo         query  string  false  "Entrega | Retiro"
// @Param        query        query  string  false  "Busca en id y nombre del cliente"
// @Success      200          {array}   dto.RemitoListItem
// @Failure      400          {object}  dto.ErrorResponse
// @Router       /api/remitos [get]
func (h *RemitoHandler) List(c *fiber.Ctx) error {
	clienteID, ok := queryInt64(c, "cliente_id")
	if !ok {
		return validation(c, "cliente_id debe ser numérico")
	}
	out, err := h.uc.List(c.UserContext(), repository.RemitoFiltro{
		ClienteID:  clienteID,
		ContratoID: c.Query("contrato_id"),
		Tipo:       c.Query("tipo"),
		Query:      c.Query("query"),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar remito (parcial)
// @Tags         remitos
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID del remito"
// @Param        body  body  dto.UpdateRemitoRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.RemitoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/remitos/{id} [put]
func (h *RemitoHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return missingID(c)
	}
	var in dto.UpdateRemitoRequest
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
// @Summary      Eliminar remito
// @Tags         remitos
// @Param        id   path  string  true  "ID del remito"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/remitos/{id} [delete]
func (h *RemitoHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return missingID(c)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
