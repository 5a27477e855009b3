package repository

import "time"

// DashboardRepository consultas de solo lectura para el dashboard de recepción.
type DashboardRepository interface {
	// ProductTotals devuelve el total de productos y cuántos están en o bajo su mínimo.
	ProductTotals() (total, lowStock int64, err error)
	CountEntries(from, to time.Time) (int64, error)
	CountExits(from, to time.Time) (int64, error)
}
