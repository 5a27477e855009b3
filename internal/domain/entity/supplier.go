package entity

import "time"

// Supplier representa un proveedor del que se reciben entradas de inventario.
type Supplier struct {
	ID        string
	Name      string
	Contact   string
	Phone     string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
