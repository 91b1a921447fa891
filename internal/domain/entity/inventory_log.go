package entity

import "time"

// Razones estándar de un cambio de inventario.
const (
	LogReasonInitialStock = "initial_stock" // alta del producto
	LogReasonSale         = "sale"
	LogReasonRestock      = "restock"
	LogReasonAdjustment   = "adjustment"
)

// InventoryLog es una fila del libro de auditoría de un inventario. Solo se inserta,
// nunca se actualiza ni se borra. NewQty = PreviousQty + ChangeAmount.
type InventoryLog struct {
	ID           int64
	InventoryID  int64
	ChangeAmount int // negativo = salida (venta)
	PreviousQty  int
	NewQty       int
	Reason       string
	ChangedBy    *int64
	CreatedAt    time.Time
}

// IsOutbound indica si la fila representa una salida de stock.
func (l InventoryLog) IsOutbound() bool { return l.ChangeAmount < 0 }
