package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/bodega-api/internal/application/analytics"
	"github.com/tu-usuario/bodega-api/internal/application/auth"
	"github.com/tu-usuario/bodega-api/internal/application/inventory"
	"github.com/tu-usuario/bodega-api/internal/application/reports"
	"github.com/tu-usuario/bodega-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	RegisterEntry   *inventory.RegisterEntryUseCase
	RegisterExit    *inventory.RegisterExitUseCase
	Queries         *inventory.QueryUseCase
	DashboardUC     *analytics.DashboardUseCase
	MovementsReport *reports.MovementsReportUseCase
	AuthUC          *auth.AuthUseCase
	JWTSecret       string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth: login público, alta de usuarios solo admin.
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register",
		AuthMiddleware(deps.JWTSecret),
		RequireRole(entity.RoleAdmin),
		authHandler.Register,
	)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Bodega: dashboard y registro de entradas (roles bodega y admin)
	bodega := protected.Group("/bodega", RequireRole(entity.RoleBodega, entity.RoleAdmin))
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	entryHandler := NewEntryHandler(deps.RegisterEntry, deps.Queries)
	bodega.Get("/", dashboardHandler.GetDashboard)
	bodega.Get("/entradas", entryHandler.GetEntriesPage)
	bodega.Post("/entradas", entryHandler.RegisterEntry)

	// Recepcionista: registro de salidas (roles recepcionista y admin)
	recepcion := protected.Group("/recepcionista", RequireRole(entity.RoleRecepcionista, entity.RoleAdmin))
	exitHandler := NewExitHandler(deps.RegisterExit, deps.Queries)
	recepcion.Get("/", exitHandler.GetExitsPage)
	recepcion.Post("/", exitHandler.RegisterExit)

	// Productos: cualquier usuario autenticado
	productHandler := NewProductHandler(deps.Queries)
	protected.Get("/productos", productHandler.ListProducts)
	protected.Get("/productos/:id/movimientos", productHandler.GetMovements)

	// Reportes PDF (roles bodega y admin)
	reportes := protected.Group("/reportes", RequireRole(entity.RoleBodega, entity.RoleAdmin))
	reportHandler := NewReportHandler(deps.MovementsReport)
	reportes.Get("/movimientos/pdf", reportHandler.GetMovementsPDF)
}
