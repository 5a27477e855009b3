package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/bodega-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas agregadas de solo lectura para el dashboard.
type DashboardRepo struct {
	q Querier
}

func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

// ProductTotals cuenta productos totales y en stock bajo en una sola pasada.
func (r *DashboardRepo) ProductTotals() (total, lowStock int64, err error) {
	query := `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE stock_actual <= stock_minimo)
		FROM productos`
	err = r.q.QueryRow(context.Background(), query).Scan(&total, &lowStock)
	if err != nil {
		return 0, 0, fmt.Errorf("count productos: %w", err)
	}
	return total, lowStock, nil
}

func (r *DashboardRepo) CountEntries(from, to time.Time) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM entradas WHERE created_at >= $1 AND created_at < $2`
	if err := r.q.QueryRow(context.Background(), query, from, to).Scan(&count); err != nil {
		return 0, fmt.Errorf("count entradas: %w", err)
	}
	return count, nil
}

func (r *DashboardRepo) CountExits(from, to time.Time) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM salidas WHERE created_at >= $1 AND created_at < $2`
	if err := r.q.QueryRow(context.Background(), query, from, to).Scan(&count); err != nil {
		return 0, fmt.Errorf("count salidas: %w", err)
	}
	return count, nil
}
