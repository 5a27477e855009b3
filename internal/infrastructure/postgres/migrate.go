package postgres

import (
	"fmt"

	"github.com/pressly/goose/v3"
	"github.com/tu-usuario/bodega-api/migrations"

	_ "github.com/jackc/pgx/v5/stdlib" // driver database/sql para goose
)

// Migrate aplica las migraciones SQL embebidas (goose) al arrancar.
func Migrate(dsn string) error {
	db, err := goose.OpenDBWithDriver("pgx", dsn)
	if err != nil {
		return fmt.Errorf("abrir DB para migraciones: %w", err)
	}
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("aplicar migraciones: %w", err)
	}
	return nil
}
