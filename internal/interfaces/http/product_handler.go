package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/bodega-api/internal/application/dto"
	"github.com/tu-usuario/bodega-api/internal/application/inventory"
	"github.com/tu-usuario/bodega-api/internal/domain"
	"github.com/tu-usuario/bodega-api/internal/domain/stock"
)

// ProductHandler listados de productos.
type ProductHandler struct {
	queries *inventory.QueryUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(queries *inventory.QueryUseCase) *ProductHandler {
	return &ProductHandler{queries: queries}
}

// ListProducts godoc
// @Summary      Listar productos
// @Tags         productos
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "máximo de filas (default 20)"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/productos [get]
func (h *ProductHandler) ListProducts(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("INVALID_QUERY", "parámetros inválidos"))
	}
	page.DefaultPage()
	products, err := h.queries.ListProducts(page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("INTERNAL", "error interno"))
	}
	return c.JSON(dto.OK(products))
}

// GetMovements godoc
// @Summary      Historial de movimientos de un producto
// @Description  Entradas y salidas del producto, con filtro opcional por rango de fechas.
// @Tags         productos
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID del producto (UUID)"
// @Param        desde   query  string  false  "fecha mínima (YYYY-MM-DD)"
// @Param        hasta   query  string  false  "fecha máxima (YYYY-MM-DD)"
// @Param        limit   query  int     false  "máximo de filas (default 20)"
// @Param        offset  query  int     false  "desplazamiento"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/productos/{id}/movimientos [get]
func (h *ProductHandler) GetMovements(c *fiber.Ctx) error {
	productID := c.Params("id")

	var from, to *time.Time
	if raw := c.Query("desde"); raw != "" {
		d, err := time.Parse(stock.DateLayout, raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Err("INVALID_DATE", "desde: formato YYYY-MM-DD"))
		}
		from = &d
	}
	if raw := c.Query("hasta"); raw != "" {
		d, err := time.Parse(stock.DateLayout, raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Err("INVALID_DATE", "hasta: formato YYYY-MM-DD"))
		}
		to = &d
	}

	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("INVALID_QUERY", "parámetros inválidos"))
	}
	page.DefaultPage()

	data, err := h.queries.ProductMovements(productID, from, to, page.Limit, page.Offset)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Err("PRODUCT_NOT_FOUND", "producto no encontrado"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("INTERNAL", "error interno"))
	}
	return c.JSON(dto.OK(data))
}
