package repository

import (
	"context"

	"github.com/jhoicas/inventory-alerts-api/internal/domain/entity"
)

// SupplierRepository define el puerto de persistencia para proveedores y su relación con productos.
type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) error
	GetByID(ctx context.Context, id int64) (*entity.Supplier, error)
	LinkProduct(ctx context.Context, link *entity.SupplierProduct) error
	// PrimaryByCompany devuelve, por product_id, el proveedor vinculado de menor id.
	PrimaryByCompany(ctx context.Context, companyID int64) (map[int64]*entity.Supplier, error)
}
