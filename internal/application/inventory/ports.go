package inventory

import (
	"context"

	"github.com/jhoicas/inventory-alerts-api/internal/domain/repository"
)

// Repositories conjunto de repositorios atados a una misma transacción.
type Repositories struct {
	Companies  repository.CompanyRepository
	Warehouses repository.WarehouseRepository
	Products   repository.ProductRepository
	Inventory  repository.InventoryRepository
	Logs       repository.InventoryLogRepository
	Suppliers  repository.SupplierRepository
	Bundles    repository.BundleRepository
}

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Run es de escritura: Commit si fn devuelve nil, Rollback en cualquier otro caso.
// ReadOnly abre una foto consistente de solo lectura: todas las lecturas de fn ven el mismo estado.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos Repositories) error) error
	ReadOnly(ctx context.Context, fn func(repos Repositories) error) error
}
