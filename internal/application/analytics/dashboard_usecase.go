// Package analytics contiene el caso de uso del dashboard de recepción:
// contadores del mes, alertas de stock bajo y el listado de productos en bodega.
package analytics

import (
	"fmt"
	"time"

	"github.com/tu-usuario/bodega-api/internal/application/dto"
	"github.com/tu-usuario/bodega-api/internal/domain/repository"
	"github.com/tu-usuario/bodega-api/internal/domain/stock"
)

// DashboardUseCase genera el resumen del dashboard.
//
// Fuente de datos: DashboardRepository (consultas read-only) más el
// ProductRepository para alertas y listado.
type DashboardUseCase struct {
	dashRepo    repository.DashboardRepository
	productRepo repository.ProductRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(dashRepo repository.DashboardRepository, productRepo repository.ProductRepository) *DashboardUseCase {
	return &DashboardUseCase{dashRepo: dashRepo, productRepo: productRepo}
}

// GetDashboard arma el DashboardDataDTO.
//
// Cuatro consultas en paralelo:
//  1. ProductTotals          → totalProductos + stockBajo
//  2. CountEntries(mes)      → entradasMes
//  3. CountExits(mes)        → salidasMes
//  4. ListLowStock / List    → alertas + productos
func (uc *DashboardUseCase) GetDashboard() (*dto.DashboardDataDTO, error) {
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		Add(24*time.Hour - time.Nanosecond)

	type totalsResult struct {
		total, low int64
		err        error
	}
	type countResult struct {
		n   int64
		err error
	}
	type productsResult struct {
		alerts   []dto.AlertDTO
		products []dto.ProductDTO
		err      error
	}

	totalsCh := make(chan totalsResult, 1)
	entriesCh := make(chan countResult, 1)
	exitsCh := make(chan countResult, 1)
	productsCh := make(chan productsResult, 1)

	go func() {
		total, low, err := uc.dashRepo.ProductTotals()
		totalsCh <- totalsResult{total, low, err}
	}()
	go func() {
		n, err := uc.dashRepo.CountEntries(monthStart, monthEnd)
		entriesCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.dashRepo.CountExits(monthStart, monthEnd)
		exitsCh <- countResult{n, err}
	}()
	go func() {
		var res productsResult
		res.alerts, res.products, res.err = uc.loadProducts()
		productsCh <- res
	}()

	totals := <-totalsCh
	entries := <-entriesCh
	exits := <-exitsCh
	products := <-productsCh

	if totals.err != nil {
		return nil, fmt.Errorf("dashboard: totales de productos: %w", totals.err)
	}
	if entries.err != nil {
		return nil, fmt.Errorf("dashboard: entradas del mes: %w", entries.err)
	}
	if exits.err != nil {
		return nil, fmt.Errorf("dashboard: salidas del mes: %w", exits.err)
	}
	if products.err != nil {
		return nil, fmt.Errorf("dashboard: productos: %w", products.err)
	}

	return &dto.DashboardDataDTO{
		Estadisticas: dto.DashboardStatsDTO{
			TotalProductos: totals.total,
			StockBajo:      totals.low,
			EntradasMes:    entries.n,
			SalidasMes:     exits.n,
		},
		Alertas:   products.alerts,
		Productos: products.products,
	}, nil
}

func (uc *DashboardUseCase) loadProducts() ([]dto.AlertDTO, []dto.ProductDTO, error) {
	lowStock, err := uc.productRepo.ListLowStock()
	if err != nil {
		return nil, nil, err
	}
	all, err := uc.productRepo.List(500, 0)
	if err != nil {
		return nil, nil, err
	}

	alerts := make([]dto.AlertDTO, 0, len(lowStock))
	for _, p := range lowStock {
		alerts = append(alerts, dto.AlertDTO{
			ProductoID:  p.ID,
			Nombre:      p.Name,
			Marca:       p.Brand,
			StockActual: p.StockActual,
			StockMinimo: p.StockMinimo,
			Estado:      p.StockStatus(),
		})
	}
	products := make([]dto.ProductDTO, 0, len(all))
	for _, p := range all {
		products = append(products, dto.ProductDTO{
			ID:              p.ID,
			Nombre:          p.Name,
			Marca:           p.Brand,
			Descripcion:     p.Description,
			StockActual:     p.StockActual,
			StockMinimo:     p.StockMinimo,
			PrecioVenta:     stock.DefaultUnitPrice(p),
			UbicacionBodega: p.Location,
			Estado:          p.StockStatus(),
		})
	}
	return alerts, products, nil
}
