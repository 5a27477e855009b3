package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de stock para presentación (no restringen operaciones).
const (
	StockStatusAgotado = "agotado"
	StockStatusBajo    = "bajo"
	StockStatusNormal  = "normal"
)

// Product representa un producto almacenado en bodega.
// StockActual nunca queda negativo: toda mutación pasa por el motor de movimientos.
type Product struct {
	ID          string
	Name        string
	Brand       string
	Description string
	Location    string // ubicación física en bodega
	StockActual int64
	StockMinimo int64           // umbral de alerta de stock bajo (solo presentación)
	SalePrice   decimal.Decimal // precio de venta sugerido para salidas
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// StockStatus clasifica el stock actual contra el mínimo: agotado, bajo o normal.
func (p *Product) StockStatus() string {
	switch {
	case p.StockActual == 0:
		return StockStatusAgotado
	case p.StockActual <= p.StockMinimo:
		return StockStatusBajo
	default:
		return StockStatusNormal
	}
}

// LowStock indica si el producto está en o por debajo del mínimo.
func (p *Product) LowStock() bool {
	return p.StockActual <= p.StockMinimo
}
