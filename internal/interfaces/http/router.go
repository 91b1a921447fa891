package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/inventory-alerts-api/internal/application/inventory"
	"github.com/jhoicas/inventory-alerts-api/internal/application/usecase"
	"github.com/jhoicas/inventory-alerts-api/internal/infrastructure/metrics"
	"github.com/jhoicas/inventory-alerts-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CompanyUC   *usecase.CompanyUseCase
	WarehouseUC *usecase.WarehouseUseCase
	ProductUC   *usecase.ProductUseCase
	SupplierUC  *usecase.SupplierUseCase

	CreateProduct  *inventory.CreateProductUseCase
	AdjustStock    *inventory.AdjustStockUseCase
	Ledger         *inventory.LedgerUseCase
	Bundles        *inventory.BundleUseCase
	LowStockAlerts *inventory.LowStockAlertsUseCase

	Logger  *logger.Logger
	Metrics *metrics.Metrics
}

// Router registra las rutas de la API bajo /api/v1.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}
	api := app.Group("/api/v1")

	companyHandler := NewCompanyHandler(deps.CompanyUC, log)
	api.Post("/companies", companyHandler.Create)
	api.Get("/companies", companyHandler.List)

	// Todo lo que cuelga de una empresa pasa por CompanyScope.
	company := api.Group("/companies/:companyId", CompanyScope(deps.CompanyUC, log))
	company.Get("/", companyHandler.GetByID)

	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC, log)
	company.Post("/warehouses", warehouseHandler.Create)
	company.Get("/warehouses", warehouseHandler.List)
	company.Get("/warehouses/:warehouseId", warehouseHandler.GetByID)

	productHandler := NewProductHandler(deps.CreateProduct, deps.Bundles, deps.ProductUC, deps.Metrics, log)
	company.Post("/products", productHandler.Create)
	company.Get("/products", productHandler.List)
	company.Get("/products/:productId", productHandler.GetByID)
	company.Post("/products/:productId/bundle-components", productHandler.AddBundleComponent)

	supplierHandler := NewSupplierHandler(deps.SupplierUC, log)
	company.Post("/suppliers", supplierHandler.Create)
	company.Post("/suppliers/:supplierId/products", supplierHandler.LinkProduct)

	inventoryHandler := NewInventoryHandler(deps.AdjustStock, deps.Ledger, log)
	company.Post("/inventory/:inventoryId/adjustments", inventoryHandler.Adjust)
	company.Get("/inventory/:inventoryId/ledger", inventoryHandler.Ledger)

	alertHandler := NewAlertHandler(deps.LowStockAlerts, deps.Metrics, log)
	company.Get("/alerts/low-stock", alertHandler.LowStock)
}
