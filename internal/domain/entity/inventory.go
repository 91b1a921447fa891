package entity

import (
	"math"
	"time"
)

// MaxQuantity es el mayor stock que admite la columna INTEGER.
const MaxQuantity = math.MaxInt32

// Inventory es el stock de un producto en una bodega. Hay una sola fila por
// (ProductID, WarehouseID) y Quantity nunca es negativa.
type Inventory struct {
	ID          int64
	ProductID   int64
	WarehouseID int64
	Quantity    int
	UpdatedAt   time.Time
}

// InventoryWithWarehouse une la fila de inventario con su bodega (lectura del motor de alertas).
type InventoryWithWarehouse struct {
	Inventory
	WarehouseName string
}
