package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/bodega-api/internal/application/dto"
	"github.com/tu-usuario/bodega-api/internal/application/inventory"
)

// ExitHandler maneja la vista y el registro de salidas de inventario (rol recepcionista).
type ExitHandler struct {
	register *inventory.RegisterExitUseCase
	queries  *inventory.QueryUseCase
}

// NewExitHandler construye el handler.
func NewExitHandler(register *inventory.RegisterExitUseCase, queries *inventory.QueryUseCase) *ExitHandler {
	return &ExitHandler{register: register, queries: queries}
}

// GetExitsPage godoc
// @Summary      Datos de la vista de salidas
// @Description  Productos (con precio sugerido) y usuarios para el formulario más las últimas salidas registradas.
// @Tags         recepcionista
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SuccessResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/recepcionista [get]
func (h *ExitHandler) GetExitsPage(c *fiber.Ctx) error {
	data, err := h.queries.ExitsPage()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("INTERNAL", "error interno"))
	}
	return c.JSON(dto.OK(data))
}

// RegisterExit godoc
// @Summary      Registrar salida de inventario
// @Description  Valida la salida contra el stock disponible y la aplica: descuenta el stock
//
//	del producto y agrega el registro al ledger de salidas. Si el stock es
//	insuficiente responde 409 con la cantidad disponible.
//
// @Tags         recepcionista
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterExitRequest  true  "producto_id, cantidad, tipo_salida, fecha_salida"
// @Success      201  {object}  dto.SuccessResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/recepcionista [post]
func (h *ExitHandler) RegisterExit(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Err("UNAUTHORIZED", "token inválido"))
	}
	var in dto.RegisterExitRequest
	if err := c.BodyParser(&in); err != nil {
		return bodyParseError(c, err)
	}
	result, err := h.register.RegisterExit(c.Context(), userID, in)
	if err != nil {
		return movementError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{
		Success: true,
		Data:    result,
		Message: "salida registrada",
	})
}
