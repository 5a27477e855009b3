// Package stock implementa el motor de validación y aplicación de movimientos
// de inventario: funciones puras, sin efectos secundarios. La persistencia
// atómica es responsabilidad del caller (caso de uso + transacción SQL).
package stock

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/bodega-api/internal/domain"
	"github.com/tu-usuario/bodega-api/internal/domain/entity"
)

// DateLayout formato de fecha de entrada/salida en el API (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// EntryInput datos crudos de una entrada propuesta (fechas como string del wire).
type EntryInput struct {
	ProductID  string
	SupplierID string
	Quantity   int64
	UnitCost   decimal.Decimal
	LotNumber  string
	EntryDate  string // obligatorio, YYYY-MM-DD
	ExpiryDate string // opcional, YYYY-MM-DD
	ReceivedBy string
	Notes      string
	RecordedBy string
}

// ExitInput datos crudos de una salida propuesta.
type ExitInput struct {
	ProductID   string
	Quantity    int64
	Type        string // venta, consumo_interno, ajuste, danado
	Destination string
	UnitPrice   *decimal.Decimal // opcional; nil = no indicado por el caller
	Responsible string
	Notes       string
	ExitDate    string // obligatorio, YYYY-MM-DD
	RecordedBy  string
}

// ValidatedEntry entrada que pasó todas las validaciones, con fechas parseadas.
type ValidatedEntry struct {
	ProductID  string
	SupplierID string
	Quantity   int64
	UnitCost   decimal.Decimal
	LotNumber  string
	EntryDate  time.Time
	ExpiryDate *time.Time
	ReceivedBy string
	Notes      string
	RecordedBy string
}

// ValidatedExit salida que pasó todas las validaciones.
type ValidatedExit struct {
	ProductID   string
	Quantity    int64
	Type        string
	Destination string
	UnitPrice   *decimal.Decimal
	Responsible string
	Notes       string
	ExitDate    time.Time
	RecordedBy  string
}

// ValidateEntry valida una entrada contra el snapshot del producto.
// Reglas en orden, corta en la primera falla:
//  1. producto existente          -> ErrProductNotFound
//  2. cantidad entera positiva    -> ErrInvalidQuantity
//  3. fecha de entrada válida     -> ErrInvalidDate
//  4. costo unitario >= 0         -> ErrInvalidAmount
func ValidateEntry(in EntryInput, product *entity.Product) (*ValidatedEntry, error) {
	if product == nil || product.ID == "" || in.ProductID != product.ID {
		return nil, domain.ErrProductNotFound
	}
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	entryDate, err := parseDate(in.EntryDate)
	if err != nil {
		return nil, domain.ErrInvalidDate
	}
	var expiry *time.Time
	if in.ExpiryDate != "" {
		d, err := parseDate(in.ExpiryDate)
		if err != nil {
			return nil, domain.ErrInvalidDate
		}
		expiry = &d
	}
	if in.UnitCost.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidAmount
	}
	return &ValidatedEntry{
		ProductID:  in.ProductID,
		SupplierID: in.SupplierID,
		Quantity:   in.Quantity,
		UnitCost:   in.UnitCost,
		LotNumber:  in.LotNumber,
		EntryDate:  entryDate,
		ExpiryDate: expiry,
		ReceivedBy: in.ReceivedBy,
		Notes:      in.Notes,
		RecordedBy: in.RecordedBy,
	}, nil
}

// ValidateExit valida una salida contra el snapshot del producto.
// Reglas en orden, corta en la primera falla:
//  1. producto existente              -> ErrProductNotFound
//  2. cantidad entera positiva        -> ErrInvalidQuantity
//  3. cantidad <= stock disponible    -> InsufficientStockError{Available}
//  4. fecha de salida válida          -> ErrInvalidDate
//  5. tipo reconocido                 -> ErrInvalidExitType
//  6. precio unitario >= 0 (si viene) -> ErrInvalidAmount
func ValidateExit(in ExitInput, product *entity.Product) (*ValidatedExit, error) {
	if product == nil || product.ID == "" || in.ProductID != product.ID {
		return nil, domain.ErrProductNotFound
	}
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	if in.Quantity > product.StockActual {
		return nil, &domain.InsufficientStockError{Available: product.StockActual}
	}
	exitDate, err := parseDate(in.ExitDate)
	if err != nil {
		return nil, domain.ErrInvalidDate
	}
	if !entity.ValidExitType(in.Type) {
		return nil, domain.ErrInvalidExitType
	}
	if in.UnitPrice != nil && in.UnitPrice.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidAmount
	}
	return &ValidatedExit{
		ProductID:   in.ProductID,
		Quantity:    in.Quantity,
		Type:        in.Type,
		Destination: in.Destination,
		UnitPrice:   in.UnitPrice,
		Responsible: in.Responsible,
		Notes:       in.Notes,
		ExitDate:    exitDate,
		RecordedBy:  in.RecordedBy,
	}, nil
}

// ApplyEntry calcula el producto actualizado y el registro de ledger de una
// entrada validada. Función pura: id y now los asigna el caller (servidor).
func ApplyEntry(v *ValidatedEntry, product entity.Product, id string, now time.Time) (entity.Product, entity.StockEntry) {
	product.StockActual += v.Quantity
	product.UpdatedAt = now
	entry := entity.StockEntry{
		ID:         id,
		ProductID:  v.ProductID,
		SupplierID: v.SupplierID,
		Quantity:   v.Quantity,
		UnitCost:   v.UnitCost,
		LotNumber:  v.LotNumber,
		EntryDate:  v.EntryDate,
		ExpiryDate: v.ExpiryDate,
		ReceivedBy: v.ReceivedBy,
		Notes:      v.Notes,
		RecordedBy: v.RecordedBy,
		CreatedAt:  now,
	}
	return product, entry
}

// ApplyExit calcula el producto actualizado y el registro de ledger de una
// salida validada. Precondición (garantizada por ValidateExit): la cantidad no
// excede el stock, por lo que el resultado nunca es negativo.
func ApplyExit(v *ValidatedExit, product entity.Product, id string, now time.Time) (entity.Product, entity.StockExit) {
	product.StockActual -= v.Quantity
	product.UpdatedAt = now
	exit := entity.StockExit{
		ID:          id,
		ProductID:   v.ProductID,
		Quantity:    v.Quantity,
		Type:        v.Type,
		Destination: v.Destination,
		UnitPrice:   v.UnitPrice,
		Responsible: v.Responsible,
		Notes:       v.Notes,
		ExitDate:    v.ExitDate,
		RecordedBy:  v.RecordedBy,
		CreatedAt:   now,
	}
	return product, exit
}

// DefaultUnitPrice devuelve el precio unitario sugerido para una salida:
// el precio de venta actual del producto. Es solo una sugerencia para la capa
// de presentación; el validador acepta precios distintos indicados por el caller.
func DefaultUnitPrice(product *entity.Product) decimal.Decimal {
	if product == nil {
		return decimal.Zero
	}
	return product.SalePrice
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
