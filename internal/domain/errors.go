package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrProductNotFound    = errors.New("producto no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrInvalidQuantity    = errors.New("la cantidad debe ser un entero mayor a 0")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrInvalidDate        = errors.New("fecha inválida")
	ErrInvalidExitType    = errors.New("tipo de salida no reconocido")
	ErrInvalidAmount      = errors.New("el precio no puede ser negativo")
	ErrConcurrencyConflict = errors.New("conflicto de concurrencia: el stock cambió durante el registro")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
)

// InsufficientStockError lleva el stock disponible al momento de la validación.
// errors.Is(err, ErrInsufficientStock) devuelve true para este tipo.
type InsufficientStockError struct {
	Available int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente: solo hay %d unidades disponibles", e.Available)
}

// Is hace que el error tipado se empareje con el centinela ErrInsufficientStock.
func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}
