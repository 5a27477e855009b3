package inventory

import (
	"context"

	"github.com/tu-usuario/bodega-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la mutación de stock, el registro
// de ledger y el token de idempotencia sean todo-o-nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		entryRepo repository.EntryRepository,
		exitRepo repository.ExitRepository,
		idemRepo repository.IdempotencyRepository,
	) error) error
}
