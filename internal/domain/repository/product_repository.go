package repository

import (
	"context"

	"github.com/jhoicas/inventory-alerts-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Create devuelve domain.ErrConflict si (company_id, sku) ya existe.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	GetByCompanyAndSKU(ctx context.Context, companyID int64, sku string) (*entity.Product, error)
	// ListByCompany ordena por id ascendente; limit <= 0 devuelve todos.
	ListByCompany(ctx context.Context, companyID int64, limit, offset int) ([]*entity.Product, error)
	MarkBundle(ctx context.Context, id int64) error
}
