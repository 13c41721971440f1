package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Banos-api/internal/application/alertas"
	"github.com/jhoicas/Banos-api/internal/application/dto"
	"github.com/jhoicas/Banos-api/internal/domain/repository"
)

// AlertaHandler maneja las alertas.
type AlertaHandler struct {
	uc *alertas.UseCase
}

// NewAlertaHandler construye el handler.
func NewAlertaHandler(uc *alertas.UseCase) *AlertaHandler {
	return &AlertaHandler{uc: uc}
}

// List godoc
// @Summary      Listar alertas
// @Description  resuelta por defecto es false; "todas" no filtra.
// @Tags         alertas
// @Produce      json
// @Param        tipo       query  string  false  "pago | contrato"
// @Param        prioridad  query  string  false  "alta | media | baja"
// @Param        resuelta   query  string  false  "true | false | todas"  default(false)
// @Success      200        {object}  dto.AlertasListResponse
// @Failure      400        {object}  dto.ErrorResponse
// @Router       /api/alertas [get]
func (h *AlertaHandler) List(c *fiber.Ctx) error {
	f := repository.AlertaFiltro{Tipo: c.Query("tipo"), Prioridad: c.Query("prioridad")}
	switch s := c.Query("resuelta", "false"); s {
	case "todas", "all":
	default:
		v, err := strconv.ParseBool(s)
		if err != nil {
			return validation(c, "resuelta debe ser true, false o todas")
		}
		f.Resuelta = &v
	}
	out, err := h.uc.List(c.UserContext(), f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Alta manual de alerta
// @Tags         alertas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAlertaRequest  true  "Alerta"
// @Success      201   {object}  dto.AlertaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/alertas [post]
func (h *AlertaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAlertaRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Resolver godoc
// @Summary      Marcar alerta como resuelta
// @Tags         alertas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ResolverAlertaRequest  true  "ID de la alerta"
// @Success      200   {object}  map[string]any
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/alertas/resolver [post]
func (h *AlertaHandler) Resolver(c *fiber.Ctx) error {
	var in dto.ResolverAlertaRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if in.ID <= 0 {
		return missingID(c)
	}
	if err := h.uc.Resolver(c.UserContext(), in.ID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"id": in.ID, "resuelta": true})
}

// Generar godoc
// @Summary      Generar alertas de contratos por vencer y facturas vencidas
// @Tags         alertas
// @Produce      json
// @Success      200  {object}  dto.AlertasGeneradasResponse
// @Router       /api/alertas/generar [post]
func (h *AlertaHandler) Generar(c *fiber.Ctx) error {
	out, err := h.uc.Generar(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
