// Package reports contiene el caso de uso del reporte PDF de movimientos
// recientes (entradas y salidas) para descarga desde el dashboard.
package reports

import (
	"context"
	"time"

	"github.com/tu-usuario/bodega-api/internal/domain/repository"
)

const reportMovementsLimit = 100

// MovementsReportData datos que recibe el generador de PDF.
type MovementsReportData struct {
	GeneratedAt time.Time
	Entries     []*repository.EntryRecord
	Exits       []*repository.ExitRecord
}

// PDFGenerator puerto del generador de PDF (lo implementa infrastructure/pdf).
type PDFGenerator interface {
	GenerateMovementsPDF(ctx context.Context, data MovementsReportData) ([]byte, error)
}

// MovementsReportUseCase arma el reporte de movimientos recientes.
type MovementsReportUseCase struct {
	entryRepo repository.EntryRepository
	exitRepo  repository.ExitRepository
	generator PDFGenerator
}

// NewMovementsReportUseCase construye el caso de uso.
func NewMovementsReportUseCase(
	entryRepo repository.EntryRepository,
	exitRepo repository.ExitRepository,
	generator PDFGenerator,
) *MovementsReportUseCase {
	return &MovementsReportUseCase{entryRepo: entryRepo, exitRepo: exitRepo, generator: generator}
}

// Generate devuelve los bytes del PDF con los últimos movimientos.
func (uc *MovementsReportUseCase) Generate(ctx context.Context) ([]byte, error) {
	entries, err := uc.entryRepo.ListRecent(reportMovementsLimit)
	if err != nil {
		return nil, err
	}
	exits, err := uc.exitRepo.ListRecent(reportMovementsLimit)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateMovementsPDF(ctx, MovementsReportData{
		GeneratedAt: time.Now(),
		Entries:     entries,
		Exits:       exits,
	})
}
