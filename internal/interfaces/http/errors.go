package http

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/bodega-api/internal/application/dto"
	"github.com/tu-usuario/bodega-api/internal/domain"
)

// bodyParseError mapea fallos de decodificación del cuerpo JSON. Un valor no
// entero en "cantidad" (por ejemplo 2.5) muere en el decoder antes de llegar a
// la validación de dominio, pero es el mismo defecto que cantidad <= 0, así
// que responde INVALID_QUANTITY en lugar del genérico INVALID_BODY.
func bodyParseError(c *fiber.Ctx, err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field == "cantidad" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("INVALID_QUANTITY", "la cantidad debe ser un entero positivo"))
	}
	return c.Status(fiber.StatusBadRequest).JSON(dto.Err("INVALID_BODY", "cuerpo inválido"))
}

// movementError mapea los errores del motor de movimientos a respuestas HTTP.
// Lo comparten los handlers de entradas y salidas: ambos fallan con el mismo
// vocabulario de errores de dominio.
func movementError(c *fiber.Ctx, err error) error {
	var insufficient *domain.InsufficientStockError
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.Err("PRODUCT_NOT_FOUND", "producto no encontrado"))
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.Err("NOT_FOUND", "recurso no encontrado"))
	case errors.As(err, &insufficient):
		return c.Status(fiber.StatusConflict).JSON(dto.Err("INSUFFICIENT_STOCK",
			fmt.Sprintf("stock insuficiente: disponible %d", insufficient.Available)))
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.Err("INSUFFICIENT_STOCK", "stock insuficiente"))
	case errors.Is(err, domain.ErrConcurrencyConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.Err("CONCURRENCY_CONFLICT",
			"el stock cambió durante el registro, reintente"))
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.Err("DUPLICATE", "movimiento ya registrado con este token"))
	case errors.Is(err, domain.ErrInvalidQuantity):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("INVALID_QUANTITY", "la cantidad debe ser un entero positivo"))
	case errors.Is(err, domain.ErrInvalidDate):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("INVALID_DATE", "fecha inválida, formato YYYY-MM-DD"))
	case errors.Is(err, domain.ErrInvalidExitType):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("INVALID_EXIT_TYPE",
			"tipo de salida inválido: venta, consumo_interno, ajuste o danado"))
	case errors.Is(err, domain.ErrInvalidAmount):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("INVALID_AMOUNT", "el precio no puede ser negativo"))
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("VALIDATION", "datos inválidos"))
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("INTERNAL", "error interno"))
	}
}
