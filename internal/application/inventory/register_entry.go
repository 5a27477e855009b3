package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/bodega-api/internal/application/dto"
	"github.com/tu-usuario/bodega-api/internal/domain"
	"github.com/tu-usuario/bodega-api/internal/domain/repository"
	"github.com/tu-usuario/bodega-api/internal/domain/stock"
)

// Módulos de idempotencia: un mismo token puede usarse una vez por módulo.
const (
	idemModuleEntradas = "entradas"
	idemModuleSalidas  = "salidas"
)

// RegisterEntryUseCase registra entradas de inventario de forma transaccional:
// valida contra el snapshot del producto, y dentro de una transacción suma el
// stock y agrega el registro al ledger de entradas.
type RegisterEntryUseCase struct {
	txRunner     TxRunner
	productRepo  repository.ProductRepository
	supplierRepo repository.SupplierRepository
}

// NewRegisterEntryUseCase construye el caso de uso.
func NewRegisterEntryUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	supplierRepo repository.SupplierRepository,
) *RegisterEntryUseCase {
	return &RegisterEntryUseCase{
		txRunner:     txRunner,
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
	}
}

// RegisterEntry valida y aplica una entrada. Devuelve el producto actualizado
// y el registro de ledger creado; en fallo de validación no muta nada.
func (uc *RegisterEntryUseCase) RegisterEntry(ctx context.Context, userID string, in dto.RegisterEntryRequest) (*dto.MovementResultDTO, error) {
	product, err := uc.productRepo.GetByID(in.ProductoID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}

	var supplierName string
	if in.ProveedorID != "" {
		supplier, err := uc.supplierRepo.GetByID(in.ProveedorID)
		if err != nil {
			return nil, err
		}
		if supplier == nil {
			return nil, domain.ErrNotFound
		}
		supplierName = supplier.Name
	}

	validated, err := stock.ValidateEntry(stock.EntryInput{
		ProductID:  in.ProductoID,
		SupplierID: in.ProveedorID,
		Quantity:   in.Cantidad,
		UnitCost:   in.PrecioUnitario,
		LotNumber:  in.NumeroLote,
		EntryDate:  in.FechaEntrada,
		ExpiryDate: in.FechaCaducidad,
		ReceivedBy: in.RecibidoPor,
		Notes:      in.Observaciones,
		RecordedBy: userID,
	}, product)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	_, ledger := stock.ApplyEntry(validated, *product, uuid.New().String(), now)

	var result dto.MovementResultDTO
	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		entryRepo repository.EntryRepository,
		_ repository.ExitRepository,
		idemRepo repository.IdempotencyRepository,
	) error {
		if in.IdempotencyKey != "" {
			if err := idemRepo.CheckAndInsert(in.IdempotencyKey, idemModuleEntradas); err != nil {
				return err
			}
		}
		updated, err := productRepo.IncrementStock(validated.ProductID, validated.Quantity)
		if err != nil {
			return err
		}
		if updated == nil {
			return domain.ErrProductNotFound
		}
		if err := entryRepo.Create(&ledger); err != nil {
			return err
		}
		entryDTO := entryLedgerDTO(&ledger, updated, supplierName)
		result = dto.MovementResultDTO{
			Producto: toProductDTO(updated),
			Entrada:  &entryDTO,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
