package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/bodega-api/internal/domain"
	"github.com/tu-usuario/bodega-api/internal/domain/repository"
)

var _ repository.IdempotencyRepository = (*IdempotencyRepo)(nil)

// IdempotencyRepo registra tokens de deduplicación en PostgreSQL.
type IdempotencyRepo struct {
	q Querier
}

func NewIdempotencyRepository(q Querier) *IdempotencyRepo {
	return &IdempotencyRepo{q: q}
}

// CheckAndInsert inserta el token (key, module). La PK compuesta convierte un
// reintento en violación de unicidad, que se traduce a ErrDuplicate; al correr
// dentro de la misma tx que el movimiento, el token solo queda si el movimiento
// hizo commit.
func (r *IdempotencyRepo) CheckAndInsert(key, module string) error {
	query := `INSERT INTO idempotency_keys (key, module) VALUES ($1, $2)`
	_, err := r.q.Exec(context.Background(), query, key, module)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert idempotency key: %w", err)
	}
	return nil
}
