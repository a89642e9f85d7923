package routes

import (
	"github.com/gofiber/fiber/v2"

	"painel-vendas-backend/controllers"
	"painel-vendas-backend/middlewares"
)

// Register wires all HTTP routes.
func Register(app *fiber.App) {
	api := app.Group("/api")

	// Public auth endpoints
	api.Post("/registration", controllers.Register)
	api.Post("/login", controllers.Login)
	api.Post("/logout", controllers.Logout)
	api.Get("/health", controllers.Health)

	// Protected endpoints (JWT auth)
	protected := api.Group("")
	protected.Use(middlewares.IsAuthenticatedHeader())

	// ERP credential setup
	protected.Post("/setup/database", controllers.SetupDatabase)

	// Client roster and its filter lists
	protected.Get("/dashboard", controllers.Dashboard)
	protected.Get("/dashboard/salespeople", controllers.Salespeople)
	protected.Get("/dashboard/groups", controllers.ClientGroups)

	// Per-client drill-down
	protected.Get("/clients/:id/analysis", controllers.ClientAnalysis)

	// Regional breakdown per salesperson
	protected.Get("/regional/:id", controllers.Regional)

	// Quota attainment / projection
	protected.Get("/projection", controllers.CompanyProjection)
	protected.Get("/projection/:id", controllers.Projection)
}
