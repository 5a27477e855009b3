package repository

import (
	"time"

	"github.com/tu-usuario/bodega-api/internal/domain/entity"
)

// EntryRecord es el modelo de lectura de una entrada para el historial
// (incluye nombre/marca del producto y nombre del proveedor vía JOIN).
type EntryRecord struct {
	entity.StockEntry
	ProductName  string
	ProductBrand string
	SupplierName string
}

// EntryRepository define el puerto de persistencia del ledger de entradas.
// El ledger es append-only: no hay Update ni Delete.
type EntryRepository interface {
	Create(entry *entity.StockEntry) error
	ListRecent(limit int) ([]*EntryRecord, error)
	ListByProduct(productID string, from, to *time.Time, limit, offset int) ([]*EntryRecord, error)
}
