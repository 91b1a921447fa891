package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventory-alerts-api/internal/domain"
	"github.com/jhoicas/inventory-alerts-api/internal/domain/entity"
	"github.com/jhoicas/inventory-alerts-api/internal/domain/repository"
)

var _ repository.BundleRepository = (*BundleRepo)(nil)

// BundleRepo aristas de kits sobre PostgreSQL.
type BundleRepo struct {
	q Querier
}

// NewBundleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBundleRepository(q Querier) *BundleRepo {
	return &BundleRepo{q: q}
}

// Create inserta la arista padre -> hijo.
func (r *BundleRepo) Create(ctx context.Context, edge *entity.ProductBundle) error {
	query := `
		INSERT INTO product_bundles (parent_product_id, child_product_id, quantity_required)
		VALUES ($1, $2, $3)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		edge.ParentProductID, edge.ChildProductID, edge.QuantityRequired,
	).Scan(&edge.ID)
	if err != nil {
		if isCheckViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert bundle edge: %w", err)
	}
	return nil
}

// ListByCompanyForUpdate toma un advisory lock de transacción por empresa y devuelve sus aristas.
// Dos altas concurrentes de la misma empresa se serializan, así ninguna valida ciclos
// sobre un conjunto de aristas ya desactualizado. Debe llamarse dentro de una tx.
func (r *BundleRepo) ListByCompanyForUpdate(ctx context.Context, companyID int64) ([]*entity.ProductBundle, error) {
	if _, err := r.q.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, companyID); err != nil {
		return nil, fmt.Errorf("lock bundles: %w", err)
	}
	query := `
		SELECT b.id, b.parent_product_id, b.child_product_id, b.quantity_required
		FROM product_bundles b
		JOIN products p ON p.id = b.parent_product_id
		WHERE p.company_id = $1
		ORDER BY b.id`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list bundle edges: %w", err)
	}
	defer rows.Close()

	var list []*entity.ProductBundle
	for rows.Next() {
		var e entity.ProductBundle
		if err := rows.Scan(&e.ID, &e.ParentProductID, &e.ChildProductID, &e.QuantityRequired); err != nil {
			return nil, fmt.Errorf("scan bundle edge: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
