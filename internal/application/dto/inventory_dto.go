package dto

import "time"

// AdjustStockRequest body para POST .../inventory/{inventoryId}/adjustments.
// ChangeAmount negativo = salida (venta), positivo = entrada.
type AdjustStockRequest struct {
	ChangeAmount int    `json:"change_amount"`
	Reason       string `json:"reason"`
	ChangedBy    *int64 `json:"changed_by,omitempty"`
}

// InventoryResponse fila de inventario.
type InventoryResponse struct {
	ID          int64     `json:"id"`
	ProductID   int64     `json:"product_id"`
	WarehouseID int64     `json:"warehouse_id"`
	Quantity    int       `json:"quantity"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// InventoryLogResponse fila del libro de auditoría.
type InventoryLogResponse struct {
	ID           int64     `json:"id"`
	InventoryID  int64     `json:"inventory_id"`
	ChangeAmount int       `json:"change_amount"`
	PreviousQty  int       `json:"previous_qty"`
	NewQty       int       `json:"new_qty"`
	Reason       string    `json:"reason"`
	ChangedBy    *int64    `json:"changed_by,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// InventoryLedgerResponse inventario con su libro y el resultado de la verificación.
type InventoryLedgerResponse struct {
	Inventory  InventoryResponse      `json:"inventory"`
	Logs       []InventoryLogResponse `json:"logs"`
	Consistent bool                   `json:"consistent"`
	Issue      string                 `json:"issue,omitempty"`
}
