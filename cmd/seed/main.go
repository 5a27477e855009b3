// seed puebla la base con datos iniciales para desarrollo: un usuario por rol,
// proveedores de ejemplo y un catálogo corto de productos.
//
// Uso: go run ./cmd/seed
// Lee la misma configuración que el API (DATABASE_URL o DB_*). Es idempotente:
// si el admin ya existe no inserta nada.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/bodega-api/internal/domain/entity"
	"github.com/tu-usuario/bodega-api/internal/infrastructure/postgres"
	"github.com/tu-usuario/bodega-api/pkg/config"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fail("cargar configuración: %v", err)
	}

	if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
		fail("migraciones: %v", err)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail("conexión a PostgreSQL: %v", err)
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	productRepo := postgres.NewProductRepository(pool)

	existing, err := userRepo.GetByEmail("admin@bodega.local")
	if err != nil {
		fail("consultar admin: %v", err)
	}
	if existing != nil {
		fmt.Println("seed ya aplicado, nada que hacer")
		return
	}

	now := time.Now()
	users := []struct {
		email, password, name, role string
	}{
		{"admin@bodega.local", "admin123", "Administrador", entity.RoleAdmin},
		{"bodega@bodega.local", "bodega123", "Encargado de Bodega", entity.RoleBodega},
		{"recepcion@bodega.local", "recepcion123", "Recepcionista", entity.RoleRecepcionista},
	}
	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			fail("hash password: %v", err)
		}
		err = userRepo.Create(&entity.User{
			ID:           uuid.New().String(),
			Email:        u.email,
			PasswordHash: string(hash),
			Name:         u.name,
			Role:         u.role,
			Status:       "active",
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil {
			fail("crear usuario %s: %v", u.email, err)
		}
		fmt.Printf("usuario creado: %s (%s)\n", u.email, u.role)
	}

	suppliers := []entity.Supplier{
		{ID: uuid.New().String(), Name: "Distribuidora Central", Contact: "Carlos Pérez", Phone: "300-555-0101", Email: "ventas@distcentral.co", CreatedAt: now, UpdatedAt: now},
		{ID: uuid.New().String(), Name: "Insumos del Norte", Contact: "María Gómez", Phone: "300-555-0102", Email: "pedidos@insumosnorte.co", CreatedAt: now, UpdatedAt: now},
	}
	for i := range suppliers {
		if err := supplierRepo.Create(&suppliers[i]); err != nil {
			fail("crear proveedor %s: %v", suppliers[i].Name, err)
		}
		fmt.Printf("proveedor creado: %s\n", suppliers[i].Name)
	}

	products := []entity.Product{
		{ID: uuid.New().String(), Name: "Shampoo Profesional 500ml", Brand: "Keune", Location: "Estante A1", StockActual: 24, StockMinimo: 5, SalePrice: decimal.NewFromInt(45000), CreatedAt: now, UpdatedAt: now},
		{ID: uuid.New().String(), Name: "Tinte Rubio Ceniza 7.1", Brand: "Wella", Location: "Estante B2", StockActual: 12, StockMinimo: 4, SalePrice: decimal.NewFromInt(38000), CreatedAt: now, UpdatedAt: now},
		{ID: uuid.New().String(), Name: "Guantes de Nitrilo (caja x100)", Brand: "Genérico", Location: "Estante C1", StockActual: 3, StockMinimo: 5, SalePrice: decimal.NewFromInt(25000), CreatedAt: now, UpdatedAt: now},
	}
	for i := range products {
		if err := productRepo.Create(&products[i]); err != nil {
			fail("crear producto %s: %v", products[i].Name, err)
		}
		fmt.Printf("producto creado: %s (stock %d)\n", products[i].Name, products[i].StockActual)
	}

	fmt.Println("seed completado")
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
