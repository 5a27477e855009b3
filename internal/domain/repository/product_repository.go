package repository

import "github.com/tu-usuario/bodega-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	List(limit, offset int) ([]*entity.Product, error)
	ListLowStock() ([]*entity.Product, error)
	// IncrementStock suma la cantidad al stock y devuelve el producto actualizado.
	IncrementStock(productID string, quantity int64) (*entity.Product, error)
	// DecrementStock resta la cantidad solo si el stock alcanza
	// (UPDATE ... WHERE stock_actual >= cantidad RETURNING ...). Devuelve nil
	// sin error si el guard no aplicó ninguna fila: el stock cambió entre
	// validación y commit.
	DecrementStock(productID string, quantity int64) (*entity.Product, error)
}
