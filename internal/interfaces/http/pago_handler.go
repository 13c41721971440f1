package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Banos-api/internal/application/dto"
	"github.com/jhoicas/Banos-api/internal/application/usecase"
	"github.com/jhoicas/Banos-api/internal/domain/repository"
)

// PagoHandler maneja pagos y cuentas corrientes.
type PagoHandler struct {
	uc      *usecase.PagoUseCase
	cuentas *usecase.CuentaUseCase
}

// NewPagoHandler construye el handler.
func NewPagoHandler(uc *usecase.PagoUseCase, cuentas *usecase.CuentaUseCase) *PagoHandler {
	return &PagoHandler{uc: uc, cuentas: cuentas}
}

// Create godoc
// @Summary      Registrar pago
// @Description  Con actualizar_factura=true la factura imputada pasa a Pagada en la misma transacción.
// @Tags         pagos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePagoRequest  true  "Pago"
// @Success      201   {object}  dto.PagoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/pagos [post]
func (h *PagoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePagoRequest
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
// @Summary      Pago con cliente, factura y remito
// @Tags         pagos
// @Produce      json
// @Param        id   path  int  true  "ID del pago"
// @Success      200  {object}  dto.PagoDetalleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pagos/{id} [get]
func (h *PagoHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramInt64(c)
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
// @Summary      Listar pagos
// @Tags         pagos
// @Produce      json
// @Param        cliente_id  query  int     false  "Filtra por cliente"
// @Param        factura_id  query  string  false  "Filtra por factura"
// @Param        query       query  string  false  "Busca en comprobante y nombre del cliente"
// @Success      200         {array}   dto.PagoListItem
// @Failure      400         {object}  dto.ErrorResponse
// @Router       /api/pagos [get]
func (h *PagoHandler) List(c *fiber.Ctx) error {
	clienteID, ok := queryInt64(c, "cliente_id")
	if !ok {
		return validation(c, "cliente_id debe ser numérico")
	}
	out, err := h.uc.List(c.UserContext(), repository.PagoFiltro{
		ClienteID: clienteID,
		FacturaID: c.Query("factura_id"),
		Query:     c.Query("query"),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar pago (parcial)
// @Tags         pagos
// @Accept       json
// @Produce      json
// @Param        id    path  int                    true  "ID del pago"
// @Param        body  body  dto.UpdatePagoRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.PagoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/pagos/{id} [put]
func (h *PagoHandler) Update(c *fiber.Ctx) error {
	id, ok := paramInt64(c)
	if !ok {
		return missingID(c)
	}
	var in dto.UpdatePagoRequest
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
// @Summary      Eliminar pago
// @Description  Si el pago estaba imputado a una factura, la factura vuelve a Pendiente.
// @Tags         pagos
// @Param        id   path  int  true  "ID del pago"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pagos/{id} [delete]
func (h *PagoHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramInt64(c)
	if !ok {
		return missingID(c)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Cuentas godoc
// @Summary      Cuentas corrientes por cliente
// @Tags         cuentas
// @Produce      json
// @Param        query  query  string  false  "Filtra por nombre del cliente"
// @Success      200    {object}  dto.CuentasResponse
// @Router       /api/cuentas [get]
func (h *PagoHandler) Cuentas(c *fiber.Ctx) error {
	out, err := h.cuentas.List(c.UserContext(), c.Query("query"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
