package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/bodega-api/internal/application/analytics"
	"github.com/tu-usuario/bodega-api/internal/application/dto"
)

// DashboardHandler maneja el dashboard de bodega.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetDashboard godoc
// @Summary      Dashboard de bodega
// @Description  Contadores del mes, alertas de stock bajo y listado de productos.
// @Tags         bodega
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SuccessResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/bodega [get]
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	data, err := h.uc.GetDashboard()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("INTERNAL", "error interno"))
	}
	return c.JSON(dto.OK(data))
}
