package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de salida de inventario.
const (
	ExitTypeVenta          = "venta"
	ExitTypeConsumoInterno = "consumo_interno"
	ExitTypeAjuste         = "ajuste"
	ExitTypeDanado         = "danado"
)

// ValidExitType verifica que el tipo sea uno de los cuatro reconocidos.
func ValidExitType(t string) bool {
	switch t {
	case ExitTypeVenta, ExitTypeConsumoInterno, ExitTypeAjuste, ExitTypeDanado:
		return true
	}
	return false
}

// StockExit es el registro inmutable de una salida de inventario (ledger append-only).
type StockExit struct {
	ID          string
	ProductID   string
	Quantity    int64
	Type        string // venta, consumo_interno, ajuste, danado
	Destination string
	UnitPrice   *decimal.Decimal // opcional; nil si el caller no lo indicó
	Responsible string           // usuario responsable, opcional
	Notes       string
	ExitDate    time.Time
	RecordedBy  string
	CreatedAt   time.Time
}
