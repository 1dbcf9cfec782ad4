package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-dashboard/internal/application/dashboard"
	"github.com/jhoicas/Inventario-dashboard/internal/application/inventory"
	"github.com/jhoicas/Inventario-dashboard/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC       *usecase.ProductUseCase
	MovementUC      *usecase.MovementUseCase
	SupplierUC      *usecase.SupplierUseCase
	CustomerUC      *usecase.CustomerUseCase
	UserUC          *usecase.UserUseCase
	AdjustStock     *inventory.AdjustStockUseCase
	Replenishment   *inventory.ReplenishmentUseCase
	DashboardView   *dashboard.ViewUseCase
	DashboardReport *dashboard.ReportUseCase
	JWTSecret       string
}

// Router registra las rutas de la API. Todo /api exige Bearer Token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(RoleAdmin)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardView, deps.DashboardReport)
	api.Get("/dashboard", dashboardHandler.Get)
	api.Get("/dashboard/report.pdf", dashboardHandler.ReportPDF)
	api.Get("/dashboard/report.xlsx", dashboardHandler.ReportXLSX)

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.Replenishment)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Delete("/", productHandler.DeleteBatch)
	products.Get("/replenishment", productHandler.Replenishment)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Ajustes de stock
	inventoryHandler := NewInventoryHandler(deps.AdjustStock)
	products.Post("/:id/adjust", inventoryHandler.Adjust)
	products.Post("/:id/quick-adjust", inventoryHandler.QuickAdjust)

	// Movements: editar o borrar historial es solo para admin
	movements := api.Group("/movements")
	movementHandler := NewMovementHandler(deps.MovementUC)
	movements.Get("/", movementHandler.List)
	movements.Post("/", movementHandler.Create)
	movements.Get("/:id", movementHandler.GetByID)
	movements.Put("/:id", adminOnly, movementHandler.Update)
	movements.Delete("/:id", adminOnly, movementHandler.Delete)

	// Suppliers
	suppliers := api.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Customers
	customers := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Get("/", customerHandler.List)
	customers.Post("/", customerHandler.Create)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Users
	users := api.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Get("/me", userHandler.Me)
	users.Get("/:id", userHandler.GetByID)
	users.Post("/", adminOnly, userHandler.Create)
	users.Put("/:id", adminOnly, userHandler.Update)
	users.Delete("/:id", adminOnly, userHandler.Delete)
}
