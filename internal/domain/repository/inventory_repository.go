package repository

import (
	"context"
	"time"

	"github.com/jhoicas/inventory-alerts-api/internal/domain/entity"
)

// InventoryRepository define el puerto para las filas de stock producto x bodega.
type InventoryRepository interface {
	Create(ctx context.Context, inv *entity.Inventory) error
	GetByID(ctx context.Context, id int64) (*entity.Inventory, error)
	// GetForUpdate bloquea la fila hasta el fin de la transacción (SELECT FOR UPDATE).
	GetForUpdate(ctx context.Context, id int64) (*entity.Inventory, error)
	UpdateQuantity(ctx context.Context, id int64, quantity int, at time.Time) error
	// ListByCompanyWithWarehouse devuelve el inventario de todos los productos de la empresa,
	// ordenado por producto y bodega.
	ListByCompanyWithWarehouse(ctx context.Context, companyID int64) ([]entity.InventoryWithWarehouse, error)
}
