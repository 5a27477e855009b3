package repository

import (
	"time"

	"github.com/tu-usuario/bodega-api/internal/domain/entity"
)

// ExitRecord es el modelo de lectura de una salida para el historial.
type ExitRecord struct {
	entity.StockExit
	ProductName  string
	ProductBrand string
}

// ExitRepository define el puerto de persistencia del ledger de salidas.
// Append-only, igual que las entradas.
type ExitRepository interface {
	Create(exit *entity.StockExit) error
	ListRecent(limit int) ([]*ExitRecord, error)
	ListByProduct(productID string, from, to *time.Time, limit, offset int) ([]*ExitRecord, error)
}
