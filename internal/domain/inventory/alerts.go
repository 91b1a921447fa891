package inventory

import (
	"github.com/jhoicas/inventory-alerts-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// LowStockSnapshot es la foto consistente que necesita el motor de alertas de una empresa.
// Debe leerse completa dentro de una misma transacción de lectura.
type LowStockSnapshot struct {
	Products  []*entity.Product               // ordenados por id
	Inventory []entity.InventoryWithWarehouse // ordenados por producto y bodega
	Sales     map[int64]Velocity              // por inventory_id, solo ventana vigente
	Suppliers map[int64]*entity.Supplier      // proveedor representativo por product_id
}

// LowStockAlert alerta de stock bajo para un producto en una bodega.
type LowStockAlert struct {
	ProductID         int64
	ProductName       string
	SKU               string
	WarehouseID       int64
	WarehouseName     string
	CurrentStock      int
	Threshold         int
	DaysUntilStockout *int
	RecentSalesCount  int
	AvgDailySales     decimal.Decimal
	Supplier          *entity.Supplier
}

// EvaluateLowStock recorre productos e inventarios de la foto y emite una alerta por cada
// inventario en o bajo el umbral que tuvo ventas en la ventana. Función pura.
func EvaluateLowStock(s LowStockSnapshot, policy ThresholdPolicy) []LowStockAlert {
	byProduct := make(map[int64][]entity.InventoryWithWarehouse, len(s.Products))
	for _, inv := range s.Inventory {
		byProduct[inv.ProductID] = append(byProduct[inv.ProductID], inv)
	}

	alerts := make([]LowStockAlert, 0)
	for _, p := range s.Products {
		threshold := policy.Resolve(p)
		for _, inv := range byProduct[p.ID] {
			if !IsLowStockCandidate(inv.Quantity, threshold) {
				continue
			}
			v := s.Sales[inv.ID]
			// Sin salidas recientes no es urgente.
			if v.SalesCount == 0 {
				continue
			}
			alerts = append(alerts, LowStockAlert{
				ProductID:         p.ID,
				ProductName:       p.Name,
				SKU:               p.SKU,
				WarehouseID:       inv.WarehouseID,
				WarehouseName:     inv.WarehouseName,
				CurrentStock:      inv.Quantity,
				Threshold:         threshold,
				DaysUntilStockout: v.DaysUntilStockout(inv.Quantity),
				RecentSalesCount:  v.SalesCount,
				AvgDailySales:     v.AvgDailySales(),
				Supplier:          s.Suppliers[p.ID],
			})
		}
	}
	return alerts
}
