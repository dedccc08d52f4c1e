// Package http define los handlers Fiber y el ruteo de la API.
package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ceylonpepper/pepperworks-api/internal/application/auth"
	"github.com/ceylonpepper/pepperworks-api/internal/application/inventory"
	"github.com/ceylonpepper/pepperworks-api/internal/application/procurement"
	"github.com/ceylonpepper/pepperworks-api/internal/application/usecase"
	"github.com/ceylonpepper/pepperworks-api/internal/domain/entity"
	"github.com/ceylonpepper/pepperworks-api/internal/domain/repository"
	"github.com/ceylonpepper/pepperworks-api/internal/infrastructure/pdf"
)

// RouterDeps agrupa las dependencias que necesita el router.
type RouterDeps struct {
	Auth        *auth.UseCase
	Ledger      *inventory.LedgerUseCase
	Stock       *inventory.ProductStockUseCase
	Procurement *procurement.UseCase
	Farmers     *usecase.FarmerUseCase
	Employees   *usecase.EmployeeUseCase
	Customers   *usecase.CustomerUseCase

	Payments   repository.FarmerPaymentRepository
	FarmerRepo repository.FarmerRepository
	Receipts   *pdf.ReceiptGenerator

	JWTSecret string
}

// Router registra todas las rutas de la API.
//
// Público: auth de staff, registro/login de clientes y el catálogo de tienda.
// El resto requiere token; los módulos sensibles además exigen rol.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// ── Rutas públicas ──
	authHandler := NewAuthHandler(deps.Auth)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	customerHandler := NewCustomerHandler(deps.Customers)
	api.Post("/customers/register", customerHandler.Register)
	api.Post("/customers/login", customerHandler.Login)

	productHandler := NewProductHandler(deps.Stock)
	api.Get("/products/available", productHandler.ListAvailable)
	api.Get("/products/customer", productHandler.CustomerCatalog)
	api.Get("/products/categories", productHandler.Categories)

	// ── Rutas protegidas (token requerido) ──
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	staff := RequireRole(entity.RoleAdmin, entity.RoleInventoryManager, entity.RoleFinanceManager, entity.RoleDeliveryStaff)
	inventoryStaff := RequireRole(entity.RoleAdmin, entity.RoleInventoryManager)
	financeStaff := RequireRole(entity.RoleAdmin, entity.RoleFinanceManager)
	adminOnly := RequireRole(entity.RoleAdmin)

	protected.Get("/auth/me", staff, authHandler.Me)
	protected.Get("/auth/users", adminOnly, authHandler.ListUsers)

	// Libro de materia prima
	materials := protected.Group("/raw-materials", inventoryStaff)
	rawMaterialHandler := NewRawMaterialHandler(deps.Ledger)
	materials.Post("/", rawMaterialHandler.Create)
	materials.Get("/", rawMaterialHandler.List)
	materials.Get("/low-stock", rawMaterialHandler.ListLowStock)
	materials.Get("/:id", rawMaterialHandler.GetByID)
	materials.Put("/:id", rawMaterialHandler.Update)

	// Productos (escritura y listado administrativo)
	products := protected.Group("/products", inventoryStaff)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Historial de inventario
	historyHandler := NewHistoryHandler(deps.Stock)
	protected.Get("/inventory-history/recent", inventoryStaff, historyHandler.Recent)

	// Órdenes de compra
	orders := protected.Group("/rm-orders", inventoryStaff)
	orderHandler := NewOrderHandler(deps.Procurement)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/eligible-farmers", orderHandler.EligibleFarmers)
	orders.Get("/:rmOrderId", orderHandler.GetByID)
	orders.Patch("/:rmOrderId/deliver", orderHandler.Deliver)
	orders.Delete("/:rmOrderId", orderHandler.Delete)

	// Pagos a agricultores
	payments := protected.Group("/farmer-payments", financeStaff)
	paymentHandler := NewPaymentHandler(deps.Procurement, deps.Payments, deps.FarmerRepo, deps.Receipts)
	payments.Get("/", paymentHandler.List)
	payments.Get("/:paymentId", paymentHandler.GetByID)
	payments.Get("/:paymentId/receipt", paymentHandler.Receipt)

	// Reportes Excel
	reports := protected.Group("/reports", financeStaff)
	reportHandler := NewReportHandler(deps.Ledger, deps.Stock, deps.Procurement)
	reports.Get("/inventory-history.xlsx", reportHandler.InventoryHistory)
	reports.Get("/raw-materials.xlsx", reportHandler.RawMaterials)
	reports.Get("/payments.xlsx", reportHandler.Payments)

	// Agricultores
	farmers := protected.Group("/farmers", inventoryStaff)
	farmerHandler := NewFarmerHandler(deps.Farmers)
	farmers.Post("/", farmerHandler.Create)
	farmers.Get("/", farmerHandler.List)
	farmers.Get("/stats", farmerHandler.Stats)
	farmers.Get("/:id", farmerHandler.GetByID)
	farmers.Put("/:id", farmerHandler.Update)
	farmers.Delete("/:id", farmerHandler.Delete)

	// Empleados
	employees := protected.Group("/employees", adminOnly)
	employeeHandler := NewEmployeeHandler(deps.Employees)
	employees.Post("/", employeeHandler.Create)
	employees.Get("/", employeeHandler.List)
	employees.Get("/stats", employeeHandler.Stats)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Put("/:id", employeeHandler.Update)
	employees.Patch("/:id/toggle-status", employeeHandler.ToggleStatus)
	employees.Delete("/:id", employeeHandler.Delete)

	// Perfil del cliente autenticado
	customerSelf := RequireRole(usecase.RoleCustomer)
	protected.Get("/customers/profile", customerSelf, customerHandler.Profile)
	protected.Put("/customers/profile", customerSelf, customerHandler.UpdateProfile)

	// Clientes (administración)
	protected.Get("/customers", adminOnly, customerHandler.List)
	protected.Get("/customers/stats", adminOnly, customerHandler.Stats)
}
