package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/Banos-api/internal/application/analytics"
)

// DashboardHandler maneja los endpoints del dashboard.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetStats devuelve las tarjetas del dashboard.
// GET /api/dashboard/stats
//
// Respuesta: DashboardStatsDTO (banos, contratos, facturacion, pagos, alertas,
// cargo_adicional_estimado, periodo). Las fechas se calculan en el servidor.
//
// @Summary      Estadísticas del dashboard
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardStatsDTO
// @Router       /api/dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.uc.GetStats(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stats)
}
