package inventory

import (
	"github.com/tu-usuario/bodega-api/internal/application/dto"
	"github.com/tu-usuario/bodega-api/internal/domain/entity"
	"github.com/tu-usuario/bodega-api/internal/domain/repository"
	"github.com/tu-usuario/bodega-api/internal/domain/stock"
)

func toProductDTO(p *entity.Product) dto.ProductDTO {
	return dto.ProductDTO{
		ID:              p.ID,
		Nombre:          p.Name,
		Marca:           p.Brand,
		Descripcion:     p.Description,
		StockActual:     p.StockActual,
		StockMinimo:     p.StockMinimo,
		PrecioVenta:     stock.DefaultUnitPrice(p),
		UbicacionBodega: p.Location,
		Estado:          p.StockStatus(),
	}
}

func toEntryDTO(r *repository.EntryRecord) dto.EntryDTO {
	out := dto.EntryDTO{
		ID:              r.ID,
		ProductoID:      r.ProductID,
		ProductoNombre:  r.ProductName,
		ProductoMarca:   r.ProductBrand,
		ProveedorNombre: r.SupplierName,
		Cantidad:        r.Quantity,
		PrecioUnitario:  r.UnitCost,
		NumeroLote:      r.LotNumber,
		FechaEntrada:    r.EntryDate.Format(stock.DateLayout),
		RecibidoPor:     r.ReceivedBy,
		Observaciones:   r.Notes,
	}
	if r.ExpiryDate != nil {
		out.FechaCaducidad = r.ExpiryDate.Format(stock.DateLayout)
	}
	return out
}

func toExitDTO(r *repository.ExitRecord) dto.ExitDTO {
	return dto.ExitDTO{
		ID:             r.ID,
		ProductoID:     r.ProductID,
		ProductoNombre: r.ProductName,
		ProductoMarca:  r.ProductBrand,
		TipoSalida:     r.Type,
		Cantidad:       r.Quantity,
		PrecioUnitario: r.UnitPrice,
		Destino:        r.Destination,
		Responsable:    r.Responsible,
		Observaciones:  r.Notes,
		FechaSalida:    r.ExitDate.Format(stock.DateLayout),
	}
}

func entryLedgerDTO(e *entity.StockEntry, product *entity.Product, supplierName string) dto.EntryDTO {
	rec := repository.EntryRecord{
		StockEntry:   *e,
		ProductName:  product.Name,
		ProductBrand: product.Brand,
		SupplierName: supplierName,
	}
	return toEntryDTO(&rec)
}

func exitLedgerDTO(e *entity.StockExit, product *entity.Product) dto.ExitDTO {
	rec := repository.ExitRecord{
		StockExit:    *e,
		ProductName:  product.Name,
		ProductBrand: product.Brand,
	}
	return toExitDTO(&rec)
}
