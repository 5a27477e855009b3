package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/bodega-api/internal/application/dto"
	"github.com/tu-usuario/bodega-api/internal/application/reports"
)

// ReportHandler genera reportes PDF descargables.
type ReportHandler struct {
	movements *reports.MovementsReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(movements *reports.MovementsReportUseCase) *ReportHandler {
	return &ReportHandler{movements: movements}
}

// GetMovementsPDF godoc
// @Summary      Reporte PDF de movimientos recientes
// @Tags         reportes
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}    file
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/reportes/movimientos/pdf [get]
func (h *ReportHandler) GetMovementsPDF(c *fiber.Ctx) error {
	pdfBytes, err := h.movements.Generate(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("INTERNAL", "error generando el reporte"))
	}
	filename := fmt.Sprintf("movimientos_%s.pdf", time.Now().Format("20060102"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(pdfBytes)
}
