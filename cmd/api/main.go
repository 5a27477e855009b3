package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/bodega-api/internal/application/analytics"
	"github.com/tu-usuario/bodega-api/internal/application/auth"
	"github.com/tu-usuario/bodega-api/internal/application/inventory"
	"github.com/tu-usuario/bodega-api/internal/application/reports"
	infrapdf "github.com/tu-usuario/bodega-api/internal/infrastructure/pdf"
	"github.com/tu-usuario/bodega-api/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/bodega-api/internal/interfaces/http"
	"github.com/tu-usuario/bodega-api/pkg/config"
	"github.com/tu-usuario/bodega-api/pkg/logger"
)

// swaggerDocsFile spec OpenAPI servido por el middleware de Swagger.
const swaggerDocsFile = "./docs/swagger.json"

// swaggerMiddleware construye el middleware de Swagger UI solo si el archivo
// de docs existe: swagger.New hace panic con el archivo ausente, lo que
// impediría arrancar el servidor en despliegues que no copian docs/.
func swaggerMiddleware(title string) (fiber.Handler, bool) {
	if _, err := os.Stat(swaggerDocsFile); err != nil {
		return nil, false
	}
	return swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: swaggerDocsFile,
		Path:     "docs",
		Title:    title,
	}), true
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	entryRepo := postgres.NewEntryRepository(pool)
	exitRepo := postgres.NewExitRepository(pool)
	dashRepo := postgres.NewDashboardRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	registerEntryUC := inventory.NewRegisterEntryUseCase(txRunner, productRepo, supplierRepo)
	registerExitUC := inventory.NewRegisterExitUseCase(txRunner, productRepo)
	queriesUC := inventory.NewQueryUseCase(productRepo, supplierRepo, userRepo, entryRepo, exitRepo)
	dashboardUC := analytics.NewDashboardUseCase(dashRepo, productRepo)

	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	movementsReportUC := reports.NewMovementsReportUseCase(entryRepo, exitRepo, pdfGenerator)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if mw, ok := swaggerMiddleware("Bodega API"); ok {
		app.Use(mw)
	} else {
		log.Warn().Str("file", swaggerDocsFile).Msg("spec de Swagger no encontrado, UI de docs deshabilitada")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		RegisterEntry:   registerEntryUC,
		RegisterExit:    registerExitUC,
		Queries:         queriesUC,
		DashboardUC:     dashboardUC,
		MovementsReport: movementsReportUC,
		AuthUC:          authUC,
		JWTSecret:       cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
