package repository

import (
	"context"
	"time"

	"github.com/jhoicas/inventory-alerts-api/internal/domain/entity"
)

// SalesSummary agrega las salidas (change_amount < 0) de un inventario en una ventana.
type SalesSummary struct {
	InventoryID int64
	Count       int // filas de salida
	TotalChange int // suma de change_amount (<= 0)
}

// InventoryLogRepository define el puerto del libro de auditoría (solo inserción).
type InventoryLogRepository interface {
	Append(ctx context.Context, entry *entity.InventoryLog) error
	// ListByInventory devuelve las filas en orden de creación.
	ListByInventory(ctx context.Context, inventoryID int64) ([]*entity.InventoryLog, error)
	// OutboundSummaryByCompany agrega las salidas con since <= created_at <= until por inventario.
	// Los inventarios sin salidas en la ventana no aparecen en el mapa.
	OutboundSummaryByCompany(ctx context.Context, companyID int64, since, until time.Time) (map[int64]SalesSummary, error)
}
