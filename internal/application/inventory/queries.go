package inventory

import (
	"time"

	"github.com/tu-usuario/bodega-api/internal/application/dto"
	"github.com/tu-usuario/bodega-api/internal/domain"
	"github.com/tu-usuario/bodega-api/internal/domain/repository"
)

const recentMovementsLimit = 50

// QueryUseCase arma los datos que consumen las vistas de entradas y salidas:
// referencia (productos, proveedores, usuarios) más el historial reciente.
type QueryUseCase struct {
	productRepo  repository.ProductRepository
	supplierRepo repository.SupplierRepository
	userRepo     repository.UserRepository
	entryRepo    repository.EntryRepository
	exitRepo     repository.ExitRepository
}

// NewQueryUseCase construye el caso de uso de consultas.
func NewQueryUseCase(
	productRepo repository.ProductRepository,
	supplierRepo repository.SupplierRepository,
	userRepo repository.UserRepository,
	entryRepo repository.EntryRepository,
	exitRepo repository.ExitRepository,
) *QueryUseCase {
	return &QueryUseCase{
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
		userRepo:     userRepo,
		entryRepo:    entryRepo,
		exitRepo:     exitRepo,
	}
}

// EntriesPage datos para la vista de registro de entradas.
func (uc *QueryUseCase) EntriesPage() (*dto.EntriesPageData, error) {
	products, err := uc.productRepo.List(500, 0)
	if err != nil {
		return nil, err
	}
	suppliers, err := uc.supplierRepo.List(500, 0)
	if err != nil {
		return nil, err
	}
	entries, err := uc.entryRepo.ListRecent(recentMovementsLimit)
	if err != nil {
		return nil, err
	}

	out := &dto.EntriesPageData{
		Productos:   make([]dto.ProductDTO, 0, len(products)),
		Proveedores: make([]dto.SupplierDTO, 0, len(suppliers)),
		Entradas:    make([]dto.EntryDTO, 0, len(entries)),
	}
	for _, p := range products {
		out.Productos = append(out.Productos, toProductDTO(p))
	}
	for _, s := range suppliers {
		out.Proveedores = append(out.Proveedores, dto.SupplierDTO{
			ID: s.ID, Nombre: s.Name, Contacto: s.Contact,
		})
	}
	for _, e := range entries {
		out.Entradas = append(out.Entradas, toEntryDTO(e))
	}
	return out, nil
}

// ExitsPage datos para la vista de registro de salidas. El precio de venta de
// cada producto viaja como precio unitario sugerido; el caller puede
// sobreescribirlo al registrar.
func (uc *QueryUseCase) ExitsPage() (*dto.ExitsPageData, error) {
	products, err := uc.productRepo.List(500, 0)
	if err != nil {
		return nil, err
	}
	users, err := uc.userRepo.List(500, 0)
	if err != nil {
		return nil, err
	}
	exits, err := uc.exitRepo.ListRecent(recentMovementsLimit)
	if err != nil {
		return nil, err
	}

	out := &dto.ExitsPageData{
		Productos: make([]dto.ProductDTO, 0, len(products)),
		Usuarios:  make([]dto.UserDTO, 0, len(users)),
		Salidas:   make([]dto.ExitDTO, 0, len(exits)),
	}
	for _, p := range products {
		out.Productos = append(out.Productos, toProductDTO(p))
	}
	for _, u := range users {
		out.Usuarios = append(out.Usuarios, dto.UserDTO{
			ID: u.ID, Nombre: u.Name, Email: u.Email, Rol: u.Role,
		})
	}
	for _, e := range exits {
		out.Salidas = append(out.Salidas, toExitDTO(e))
	}
	return out, nil
}

// ProductMovements historial de entradas y salidas de un producto, con filtro
// opcional por rango de fechas (nil = sin tope).
func (uc *QueryUseCase) ProductMovements(productID string, from, to *time.Time, limit, offset int) (*dto.ProductMovementsData, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	entries, err := uc.entryRepo.ListByProduct(productID, from, to, limit, offset)
	if err != nil {
		return nil, err
	}
	exits, err := uc.exitRepo.ListByProduct(productID, from, to, limit, offset)
	if err != nil {
		return nil, err
	}

	out := &dto.ProductMovementsData{
		Producto: toProductDTO(product),
		Entradas: make([]dto.EntryDTO, 0, len(entries)),
		Salidas:  make([]dto.ExitDTO, 0, len(exits)),
	}
	for _, e := range entries {
		out.Entradas = append(out.Entradas, toEntryDTO(e))
	}
	for _, e := range exits {
		out.Salidas = append(out.Salidas, toExitDTO(e))
	}
	return out, nil
}

// ListProducts listado paginado de productos.
func (uc *QueryUseCase) ListProducts(limit, offset int) ([]dto.ProductDTO, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	products, err := uc.productRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductDTO, 0, len(products))
	for _, p := range products {
		out = append(out, toProductDTO(p))
	}
	return out, nil
}
