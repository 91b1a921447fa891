package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/inventory-alerts-api/internal/domain/entity"
	"github.com/jhoicas/inventory-alerts-api/internal/domain/repository"
)

var _ repository.InventoryLogRepository = (*InventoryLogRepo)(nil)

// InventoryLogRepo libro de auditoría sobre PostgreSQL. Un trigger de la migración
// rechaza UPDATE y DELETE sobre inventory_logs.
type InventoryLogRepo struct {
	q Querier
}

// NewInventoryLogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryLogRepository(q Querier) *InventoryLogRepo {
	return &InventoryLogRepo{q: q}
}

// Append inserta una fila del libro.
func (r *InventoryLogRepo) Append(ctx context.Context, entry *entity.InventoryLog) error {
	query := `
		INSERT INTO inventory_logs (inventory_id, change_amount, previous_qty, new_qty, reason, changed_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		entry.InventoryID, entry.ChangeAmount, entry.PreviousQty, entry.NewQty,
		entry.Reason, entry.ChangedBy, entry.CreatedAt,
	).Scan(&entry.ID)
	if err != nil {
		return fmt.Errorf("insert inventory log: %w", err)
	}
	return nil
}

// ListByInventory devuelve las filas del inventario en orden de creación.
func (r *InventoryLogRepo) ListByInventory(ctx context.Context, inventoryID int64) ([]*entity.InventoryLog, error) {
	query := `
		SELECT id, inventory_id, change_amount, previous_qty, new_qty, reason, changed_by, created_at
		FROM inventory_logs WHERE inventory_id = $1
		ORDER BY created_at, id`
	rows, err := r.q.Query(ctx, query, inventoryID)
	if err != nil {
		return nil, fmt.Errorf("list inventory logs: %w", err)
	}
	defer rows.Close()

	var list []*entity.InventoryLog
	for rows.Next() {
		var l entity.InventoryLog
		if err := rows.Scan(
			&l.ID, &l.InventoryID, &l.ChangeAmount, &l.PreviousQty, &l.NewQty,
			&l.Reason, &l.ChangedBy, &l.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan inventory log: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// OutboundSummaryByCompany agrega por inventario las salidas (change_amount < 0) con
// created_at en [since, until] de los productos de la empresa. Usa el índice (inventory_id, created_at).
func (r *InventoryLogRepo) OutboundSummaryByCompany(ctx context.Context, companyID int64, since, until time.Time) (map[int64]repository.SalesSummary, error) {
	query := `
		SELECT l.inventory_id, COUNT(*), COALESCE(SUM(l.change_amount), 0)
		FROM inventory_logs l
		JOIN inventory i ON i.id = l.inventory_id
		JOIN products p ON p.id = i.product_id
		WHERE p.company_id = $1
		  AND l.change_amount < 0
		  AND l.created_at >= $2
	  AND l.created_at <= $3
		GROUP BY l.inventory_id`
	rows, err := r.q.Query(ctx, query, companyID, since, until)
	if err != nil {
		return nil, fmt.Errorf("outbound summary: %w", err)
	}
	defer rows.Close()

	out := make(map[int64]repository.SalesSummary)
	for rows.Next() {
		var s repository.SalesSummary
		if err := rows.Scan(&s.InventoryID, &s.Count, &s.TotalChange); err != nil {
			return nil, fmt.Errorf("scan outbound summary: %w", err)
		}
		out[s.InventoryID] = s
	}
	return out, rows.Err()
}
