package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/bodega-api/internal/domain/entity"
	"github.com/tu-usuario/bodega-api/internal/domain/repository"
)

var _ repository.ExitRepository = (*ExitRepo)(nil)

const exitRecordColumns = `
	s.id, s.producto_id, s.cantidad, s.tipo_salida, s.destino,
	s.precio_unitario, s.responsable, s.observaciones, s.fecha_salida,
	s.registrado_por, s.created_at,
	p.nombre, p.marca`

// ExitRepo persistencia del ledger de salidas sobre PostgreSQL.
type ExitRepo struct {
	q Querier
}

func NewExitRepository(q Querier) *ExitRepo {
	return &ExitRepo{q: q}
}

// Create inserta el registro de salida (append-only).
func (r *ExitRepo) Create(exit *entity.StockExit) error {
	query := `
		INSERT INTO salidas (id, producto_id, cantidad, tipo_salida, destino, precio_unitario, responsable, observaciones, fecha_salida, registrado_por, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		exit.ID, exit.ProductID, exit.Quantity, exit.Type, exit.Destination,
		exit.UnitPrice, nullUUID(exit.Responsible), exit.Notes, exit.ExitDate,
		nullUUID(exit.RecordedBy), exit.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert salida: %w", err)
	}
	return nil
}

// ListRecent devuelve las últimas salidas con datos de producto.
func (r *ExitRepo) ListRecent(limit int) ([]*repository.ExitRecord, error) {
	query := `
		SELECT ` + exitRecordColumns + `
		FROM salidas s
		JOIN productos p ON p.id = s.producto_id
		ORDER BY s.created_at DESC
		LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list salidas: %w", err)
	}
	defer rows.Close()
	return scanExitRecords(rows)
}

// ListByProduct filtra el historial de un producto por rango de fechas.
func (r *ExitRepo) ListByProduct(productID string, from, to *time.Time, limit, offset int) ([]*repository.ExitRecord, error) {
	query := `
		SELECT ` + exitRecordColumns + `
		FROM salidas s
		JOIN productos p ON p.id = s.producto_id
		WHERE s.producto_id = $1
		  AND ($2::date IS NULL OR s.fecha_salida >= $2)
		  AND ($3::date IS NULL OR s.fecha_salida <= $3)
		ORDER BY s.created_at DESC
		LIMIT $4 OFFSET $5`
	rows, err := r.q.Query(context.Background(), query, productID, from, to, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list salidas por producto: %w", err)
	}
	defer rows.Close()
	return scanExitRecords(rows)
}

func scanExitRecords(rows pgx.Rows) ([]*repository.ExitRecord, error) {
	var records []*repository.ExitRecord
	for rows.Next() {
		var rec repository.ExitRecord
		var responsible, recordedBy *string
		err := rows.Scan(
			&rec.ID, &rec.ProductID, &rec.Quantity, &rec.Type, &rec.Destination,
			&rec.UnitPrice, &responsible, &rec.Notes, &rec.ExitDate,
			&recordedBy, &rec.CreatedAt,
			&rec.ProductName, &rec.ProductBrand,
		)
		if err != nil {
			return nil, fmt.Errorf("scan salida: %w", err)
		}
		rec.Responsible = deref(responsible)
		rec.RecordedBy = deref(recordedBy)
		records = append(records, &rec)
	}
	return records, rows.Err()
}
