package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Banos-api/internal/application/dto"
	"github.com/jhoicas/Banos-api/internal/application/usecase"
	"github.com/jhoicas/Banos-api/internal/domain/repository"
)

// FacturaHandler maneja facturas.
type FacturaHandler struct {
	uc *usecase.FacturaUseCase
}

// NewFacturaHandler construye el handler.
func NewFacturaHandler(uc *usecase.FacturaUseCase) *FacturaHandler {
	return &FacturaHandler{uc: uc}
}

// Create godoc
// @Summary      Emitir factura
// @Tags         facturas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateFacturaRequest  true  "Factura"
// @Success      201   {object}  dto.FacturaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/facturas [post]
func (h *FacturaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateFacturaRequest
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
// @Summary      Factura con cliente y contrato
// @Tags         facturas
// @Produce      json
// @Param        id   path  string  true  "ID de la factura"
// @Success      200  {object}  dto.FacturaDetalleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/facturas/{id} [get]
func (h *FacturaHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Listar facturas
// @Tags         facturas
// @Produce      json
// @Param        cliente_id   query  int     false  "Filtra por cliente"
// @Param        contrato_id  query  string  false  "Filtra por contrato"
// @Param        estado       query  string  false  "Pendiente | Pagada | Anulada"
// @Param        query        query  string  false  "Busca en id y nombre del cliente"
// @Success      200          {array}   dto.FacturaListItem
// @Failure      400          {object}  dto.ErrorResponse
// @Router       /api/facturas [get]
func (h *FacturaHandler) List(c *fiber.Ctx) error {
	clienteID, ok := queryInt64(c, "cliente_id")
	if !ok {
		return validation(c, "cliente_id debe ser numérico")
	}
	out, err := h.uc.List(c.UserContext(), repository.FacturaFiltro{
		ClienteID:  clienteID,
		ContratoID: c.Query("contrato_id"),
		Estado:     c.Query("estado"),
		Query:      c.Query("query"),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// PorCliente godoc
// @Summary      Facturas y remitos agrupados por cliente
// @Tags         facturas
// @Produce      json
// @Success      200  {array}  dto.DocumentosClienteDTO
// @Router       /api/facturas/por-cliente [get]
func (h *FacturaHandler) PorCliente(c *fiber.Ctx) error {
	out, err := h.uc.PorCliente(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar factura (parcial)
// @Tags         facturas
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID de la factura"
// @Param        body  body  dto.UpdateFacturaRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.FacturaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/facturas/{id} [put]
func (h *FacturaHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return missingID(c)
	}
	var in dto.UpdateFacturaRequest
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
// @Summary      Eliminar factura
// @Tags         facturas
// @Param        id   path  string  true  "ID de la factura"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/facturas/{id} [delete]
func (h *FacturaHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return missingID(c)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
