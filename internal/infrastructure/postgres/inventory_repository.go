package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/inventory-alerts-api/internal/domain"
	"github.com/jhoicas/inventory-alerts-api/internal/domain/entity"
	"github.com/jhoicas/inventory-alerts-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación de InventoryRepository sobre PostgreSQL (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador de inventario. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Create inserta la fila producto x bodega. domain.ErrConflict si ya existe
// (uq_inventory_product_warehouse), domain.ErrInvalidInput si la cantidad es negativa.
func (r *InventoryRepo) Create(ctx context.Context, inv *entity.Inventory) error {
	query := `
		INSERT INTO inventory (product_id, warehouse_id, quantity, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, inv.ProductID, inv.WarehouseID, inv.Quantity, inv.UpdatedAt).Scan(&inv.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		if isCheckViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert inventory: %w", err)
	}
	return nil
}

// GetByID obtiene una fila de inventario.
func (r *InventoryRepo) GetByID(ctx context.Context, id int64) (*entity.Inventory, error) {
	return r.get(ctx, `
		SELECT id, product_id, warehouse_id, quantity, updated_at
		FROM inventory WHERE id = $1`, id)
}

// GetForUpdate obtiene la fila y la bloquea para update (SELECT FOR UPDATE).
func (r *InventoryRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Inventory, error) {
	return r.get(ctx, `
		SELECT id, product_id, warehouse_id, quantity, updated_at
		FROM inventory WHERE id = $1
		FOR UPDATE`, id)
}

func (r *InventoryRepo) get(ctx context.Context, query string, id int64) (*entity.Inventory, error) {
	var inv entity.Inventory
	err := r.q.QueryRow(ctx, query, id).Scan(
		&inv.ID, &inv.ProductID, &inv.WarehouseID, &inv.Quantity, &inv.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	return &inv, nil
}

// UpdateQuantity fija la cantidad. La restricción CHECK rechaza valores negativos.
func (r *InventoryRepo) UpdateQuantity(ctx context.Context, id int64, quantity int, at time.Time) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE inventory SET quantity = $2, updated_at = $3 WHERE id = $1`,
		id, quantity, at,
	)
	if err != nil {
		if isCheckViolation(err) {
			return domain.ErrInsufficientStock
		}
		return fmt.Errorf("update inventory: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByCompanyWithWarehouse devuelve el inventario de los productos de la empresa con el
// nombre de la bodega, ordenado por producto y bodega.
func (r *InventoryRepo) ListByCompanyWithWarehouse(ctx context.Context, companyID int64) ([]entity.InventoryWithWarehouse, error) {
	query := `
		SELECT i.id, i.product_id, i.warehouse_id, i.quantity, i.updated_at, w.name
		FROM inventory i
		JOIN products p ON p.id = i.product_id
		JOIN warehouses w ON w.id = i.warehouse_id
		WHERE p.company_id = $1
		ORDER BY i.product_id, i.warehouse_id`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()

	var list []entity.InventoryWithWarehouse
	for rows.Next() {
		var it entity.InventoryWithWarehouse
		if err := rows.Scan(
			&it.ID, &it.ProductID, &it.WarehouseID, &it.Quantity, &it.UpdatedAt, &it.WarehouseName,
		); err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}
