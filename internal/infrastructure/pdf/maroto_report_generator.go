// Package pdf implementa la generación del reporte de movimientos de
// inventario (entradas y salidas recientes) usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Reporte de Movimientos + fecha de generación        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ENTRADAS: Fecha | Producto | Proveedor | Cant | Costo       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SALIDAS:  Fecha | Producto | Tipo | Cant | Precio           │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tu-usuario/bodega-api/internal/application/reports"
	"github.com/tu-usuario/bodega-api/internal/domain/repository"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoReportGenerator implementa reports.PDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateMovementsPDF genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateMovementsPDF(_ context.Context, data reports.MovementsReportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Movimientos de Inventario", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(sectionTitleRow("ENTRADAS RECIENTES"))
	m.AddRows(entriesHeaderRow())
	for _, e := range data.Entries {
		m.AddRows(entryRow(e))
	}

	m.AddRows(line.NewRow(2))
	m.AddRows(sectionTitleRow("SALIDAS RECIENTES"))
	m.AddRows(exitsHeaderRow())
	for _, e := range data.Exits {
		m.AddRows(exitRow(e))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(data reports.MovementsReportData) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("Reporte de Movimientos de Inventario", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+data.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

func sectionTitleRow(title string) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(title, props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2}),
		),
	)
}

func entriesHeaderRow() core.Row {
	return row.New(6).Add(
		headerCell(2, "Fecha"),
		headerCell(4, "Producto"),
		headerCell(3, "Proveedor"),
		headerCell(1, "Cant."),
		headerCell(2, "Costo Unit."),
	)
}

func entryRow(e *repository.EntryRecord) core.Row {
	supplier := e.SupplierName
	if supplier == "" {
		supplier = "—"
	}
	return row.New(5).Add(
		bodyCell(2, e.EntryDate.Format("02/01/2006")),
		bodyCell(4, fmt.Sprintf("%s %s", e.ProductName, e.ProductBrand)),
		bodyCell(3, supplier),
		bodyCell(1, fmt.Sprintf("%d", e.Quantity)),
		bodyCell(2, "$"+e.UnitCost.StringFixed(2)),
	)
}

func exitsHeaderRow() core.Row {
	return row.New(6).Add(
		headerCell(2, "Fecha"),
		headerCell(4, "Producto"),
		headerCell(3, "Tipo"),
		headerCell(1, "Cant."),
		headerCell(2, "Precio Unit."),
	)
}

func exitRow(e *repository.ExitRecord) core.Row {
	price := "N/A"
	if e.UnitPrice != nil {
		price = "$" + e.UnitPrice.StringFixed(2)
	}
	return row.New(5).Add(
		bodyCell(2, e.ExitDate.Format("02/01/2006")),
		bodyCell(4, fmt.Sprintf("%s %s", e.ProductName, e.ProductBrand)),
		bodyCell(3, e.Type),
		bodyCell(1, fmt.Sprintf("%d", e.Quantity)),
		bodyCell(2, price),
	)
}

func headerCell(size int, label string) core.Col {
	return col.New(size).Add(
		text.New(label, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary}),
	)
}

func bodyCell(size int, value string) core.Col {
	return col.New(size).Add(
		text.New(value, props.Text{Size: 8}),
	)
}
