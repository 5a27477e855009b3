package repository

// IdempotencyRepository registra tokens de deduplicación de transacciones.
// CheckAndInsert inserta el token para el módulo dado ("entradas" | "salidas");
// devuelve domain.ErrDuplicate si ya fue procesado. Se invoca dentro de la misma
// transacción que la mutación de stock para que el registro sea todo-o-nada.
type IdempotencyRepository interface {
	CheckAndInsert(key, module string) error
}
