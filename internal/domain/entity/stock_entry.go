package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockEntry es el registro inmutable de una entrada de inventario (ledger append-only).
// Se crea exactamente una vez por entrada aceptada y nunca se modifica ni elimina.
type StockEntry struct {
	ID           string
	ProductID    string
	SupplierID   string // opcional, vacío si no hay proveedor asociado
	Quantity     int64
	UnitCost     decimal.Decimal
	LotNumber    string
	EntryDate    time.Time
	ExpiryDate   *time.Time
	ReceivedBy   string
	Notes        string
	RecordedBy   string // usuario que registró la entrada
	CreatedAt    time.Time
}
