package repository

import (
	"context"

	"github.com/jhoicas/inventory-alerts-api/internal/domain/entity"
)

// BundleRepository define el puerto para las aristas de kits (ProductBundle).
type BundleRepository interface {
	Create(ctx context.Context, edge *entity.ProductBundle) error
	// ListByCompanyForUpdate devuelve las aristas de la empresa y serializa, hasta el fin de la
	// transacción, a otros escritores de kits de la misma empresa.
	ListByCompanyForUpdate(ctx context.Context, companyID int64) ([]*entity.ProductBundle, error)
}
