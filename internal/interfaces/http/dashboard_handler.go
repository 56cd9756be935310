package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/stockbridge-api/internal/application/analytics"
)

// DashboardHandler resumen de la pantalla principal.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary godoc
// @Summary      Resumen del dashboard
// @Description  Stock total en tiendas, traslados pendientes, movido hoy, alertas de stock bajo y actividad reciente.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(summary)
}
