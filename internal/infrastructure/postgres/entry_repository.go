package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/bodega-api/internal/domain/entity"
	"github.com/tu-usuario/bodega-api/internal/domain/repository"
)

var _ repository.EntryRepository = (*EntryRepo)(nil)

const entryRecordColumns = `
	e.id, e.producto_id, e.proveedor_id, e.cantidad, e.precio_unitario,
	e.numero_lote, e.fecha_entrada, e.fecha_caducidad, e.recibido_por,
	e.observaciones, e.registrado_por, e.created_at,
	p.nombre, p.marca, COALESCE(pr.nombre, '')`

// EntryRepo persistencia del ledger de entradas sobre PostgreSQL.
type EntryRepo struct {
	q Querier
}

func NewEntryRepository(q Querier) *EntryRepo {
	return &EntryRepo{q: q}
}

// Create inserta el registro de entrada. El ledger es append-only: nunca hay
// UPDATE ni DELETE sobre esta tabla.
func (r *EntryRepo) Create(entry *entity.StockEntry) error {
	query := `
		INSERT INTO entradas (id, producto_id, proveedor_id, cantidad, precio_unitario, numero_lote, fecha_entrada, fecha_caducidad, recibido_por, observaciones, registrado_por, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.ProductID, nullUUID(entry.SupplierID), entry.Quantity, entry.UnitCost,
		entry.LotNumber, entry.EntryDate, entry.ExpiryDate, entry.ReceivedBy,
		entry.Notes, nullUUID(entry.RecordedBy), entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert entrada: %w", err)
	}
	return nil
}

// ListRecent devuelve las últimas entradas con datos de producto y proveedor.
func (r *EntryRepo) ListRecent(limit int) ([]*repository.EntryRecord, error) {
	query := `
		SELECT ` + entryRecordColumns + `
		FROM entradas e
		JOIN productos p ON p.id = e.producto_id
		LEFT JOIN proveedores pr ON pr.id = e.proveedor_id
		ORDER BY e.created_at DESC
		LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list entradas: %w", err)
	}
	defer rows.Close()
	return scanEntryRecords(rows)
}

// ListByProduct filtra el historial de un producto por rango de fechas (fechas nil = sin tope).
func (r *EntryRepo) ListByProduct(productID string, from, to *time.Time, limit, offset int) ([]*repository.EntryRecord, error) {
	query := `
		SELECT ` + entryRecordColumns + `
		FROM entradas e
		JOIN productos p ON p.id = e.producto_id
		LEFT JOIN proveedores pr ON pr.id = e.proveedor_id
		WHERE e.producto_id = $1
		  AND ($2::date IS NULL OR e.fecha_entrada >= $2)
		  AND ($3::date IS NULL OR e.fecha_entrada <= $3)
		ORDER BY e.created_at DESC
		LIMIT $4 OFFSET $5`
	rows, err := r.q.Query(context.Background(), query, productID, from, to, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list entradas por producto: %w", err)
	}
	defer rows.Close()
	return scanEntryRecords(rows)
}

func scanEntryRecords(rows pgx.Rows) ([]*repository.EntryRecord, error) {
	var records []*repository.EntryRecord
	for rows.Next() {
		var rec repository.EntryRecord
		var supplierID, recordedBy *string
		err := rows.Scan(
			&rec.ID, &rec.ProductID, &supplierID, &rec.Quantity, &rec.UnitCost,
			&rec.LotNumber, &rec.EntryDate, &rec.ExpiryDate, &rec.ReceivedBy,
			&rec.Notes, &recordedBy, &rec.CreatedAt,
			&rec.ProductName, &rec.ProductBrand, &rec.SupplierName,
		)
		if err != nil {
			return nil, fmt.Errorf("scan entrada: %w", err)
		}
		rec.SupplierID = deref(supplierID)
		rec.RecordedBy = deref(recordedBy)
		records = append(records, &rec)
	}
	return records, rows.Err()
}
