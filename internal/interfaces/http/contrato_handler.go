package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Banos-api/internal/application/dto"
	"github.com/jhoicas/Banos-api/internal/application/usecase"
)

// ContratoHandler maneja contratos y sus asignaciones de baños.
type ContratoHandler struct {
	uc *usecase.ContratoUseCase
}

// NewContratoHandler construye el handler.
func NewContratoHandler(uc *usecase.ContratoUseCase) *ContratoHandler {
	return &ContratoHandler{uc: uc}
}

// Create godoc
// @Summary      Crear contrato y asignar baños
// @Description  Los baños deben existir y estar Disponibles; quedan Alquilados en ubicación Cliente.
// @Tags         contratos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateContratoRequest  true  "Contrato y baños"
// @Success      201   {object}  dto.ContratoCreadoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/contratos [post]
func (h *ContratoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateContratoRequest
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
// @Summary      Contrato con cliente, baños, facturas y remitos
// @Tags         contratos
// @Produce      json
// @Param        id   path  string  true  "ID del contrato"
// @Success      200  {object}  dto.ContratoDetalleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/contratos/{id} [get]
func (h *ContratoHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Listar contratos
// @Tags         contratos
// @Produce      json
// @Param        cliente_id  query  int     false  "Filtra por cliente"
// @Param        query       query  string  false  "Busca en id y nombre del cliente"
// @Success      200         {array}   dto.ContratoListItem
// @Failure      400         {object}  dto.ErrorResponse
// @Router       /api/contratos [get]
func (h *ContratoHandler) List(c *fiber.Ctx) error {
	clienteID, ok := queryInt64(c, "cliente_id")
	if !ok {
		return validation(c, "cliente_id debe ser numérico")
	}
	out, err := h.uc.List(c.UserContext(), clienteID, c.Query("query"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Resumen godoc
// @Summary      Contratos activos, por vencer y valor total activo
// @Tags         contratos
// @Produce      json
// @Success      200  {object}  dto.ContratosResumenDTO
// @Router       /api/contratos/resumen [get]
func (h *ContratoHandler) Resumen(c *fiber.Ctx) error {
	out, err := h.uc.Resumen(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Modificar contrato, agregar o quitar baños
// @Tags         contratos
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID del contrato"
// @Param        body  body  dto.UpdateContratoRequest  true  "Cambios"
// @Success      200   {object}  dto.ContratoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/contratos/{id} [put]
func (h *ContratoHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return missingID(c)
	}
	var in dto.UpdateContratoRequest
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
// @Summary      Eliminar contrato y liberar sus baños
// @Tags         contratos
// @Param        id   path  string  true  "ID del contrato"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/contratos/{id} [delete]
func (h *ContratoHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return missingID(c)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
