package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/bodega-api/internal/application/dto"
	"github.com/tu-usuario/bodega-api/internal/application/inventory"
)

// EntryHandler maneja la vista y el registro de entradas de inventario (rol bodega).
type EntryHandler struct {
	register *inventory.RegisterEntryUseCase
	queries  *inventory.QueryUseCase
}

// NewEntryHandler construye el handler.
func NewEntryHandler(register *inventory.RegisterEntryUseCase, queries *inventory.QueryUseCase) *EntryHandler {
	return &EntryHandler{register: register, queries: queries}
}

// GetEntriesPage godoc
// @Summary      Datos de la vista de entradas
// @Description  Productos y proveedores para el formulario más las últimas entradas registradas.
// @Tags         bodega
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SuccessResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/bodega/entradas [get]
func (h *EntryHandler) GetEntriesPage(c *fiber.Ctx) error {
	data, err := h.queries.EntriesPage()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("INTERNAL", "error interno"))
	}
	return c.JSON(dto.OK(data))
}

// RegisterEntry godoc
// @Summary      Registrar entrada de inventario
// @Description  Valida y aplica la entrada: suma el stock del producto y agrega el registro al ledger de entradas.
// @Tags         bodega
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterEntryRequest  true  "producto_id, cantidad, precio_unitario, fecha_entrada"
// @Success      201  {object}  dto.SuccessResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/bodega/entradas [post]
func (h *EntryHandler) RegisterEntry(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Err("UNAUTHORIZED", "token inválido"))
	}
	var in dto.RegisterEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return bodyParseError(c, err)
	}
	result, err := h.register.RegisterEntry(c.Context(), userID, in)
	if err != nil {
		return movementError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{
		Success: true,
		Data:    result,
		Message: "entrada registrada",
	})
}
