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

// RegisterExitUseCase registra salidas de inventario de forma transaccional.
//
// La validación corre fuera de la transacción contra un snapshot; dentro de la
// transacción el decremento es condicionado (stock_actual >= cantidad), de modo
// que dos salidas concurrentes sobre el mismo producto nunca sobregiran el
// stock: la que pierde la carrera recibe ErrConcurrencyConflict y puede
// reintentarse revalidando contra estado fresco.
type RegisterExitUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
}

// NewRegisterExitUseCase construye el caso de uso.
func NewRegisterExitUseCase(txRunner TxRunner, productRepo repository.ProductRepository) *RegisterExitUseCase {
	return &RegisterExitUseCase{txRunner: txRunner, productRepo: productRepo}
}

// RegisterExit valida y aplica una salida. En fallo de validación o conflicto
// de concurrencia no se muta nada (rollback de la transacción completa).
func (uc *RegisterExitUseCase) RegisterExit(ctx context.Context, userID string, in dto.RegisterExitRequest) (*dto.MovementResultDTO, error) {
	product, err := uc.productRepo.GetByID(in.ProductoID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}

	validated, err := stock.ValidateExit(stock.ExitInput{
		ProductID:   in.ProductoID,
		Quantity:    in.Cantidad,
		Type:        in.TipoSalida,
		Destination: in.Destino,
		UnitPrice:   in.PrecioUnitario,
		Responsible: in.Responsable,
		Notes:       in.Observaciones,
		ExitDate:    in.FechaSalida,
		RecordedBy:  userID,
	}, product)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	_, ledger := stock.ApplyExit(validated, *product, uuid.New().String(), now)

	var result dto.MovementResultDTO
	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		_ repository.EntryRepository,
		exitRepo repository.ExitRepository,
		idemRepo repository.IdempotencyRepository,
	) error {
		if in.IdempotencyKey != "" {
			if err := idemRepo.CheckAndInsert(in.IdempotencyKey, idemModuleSalidas); err != nil {
				return err
			}
		}
		// Decremento condicionado: si el stock bajó de la cantidad pedida entre
		// validación y commit, ninguna fila se afecta y se aborta con conflicto.
		updated, err := productRepo.DecrementStock(validated.ProductID, validated.Quantity)
		if err != nil {
			return err
		}
		if updated == nil {
			return domain.ErrConcurrencyConflict
		}
		if err := exitRepo.Create(&ledger); err != nil {
			return err
		}
		exitDTO := exitLedgerDTO(&ledger, updated)
		result = dto.MovementResultDTO{
			Producto: toProductDTO(updated),
			Salida:   &exitDTO,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
