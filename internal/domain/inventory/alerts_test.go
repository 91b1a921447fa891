package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-alerts-api/internal/domain/entity"
	"github.com/jhoicas/inventory-alerts-api/internal/domain/inventory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func product(id int64, sku string) *entity.Product {
	return &entity.Product{ID: id, CompanyID: 1, Name: "Producto " + sku, SKU: sku, Price: decimal.NewFromInt(10)}
}

func stockRow(invID, productID, warehouseID int64, qty int) entity.InventoryWithWarehouse {
	return entity.InventoryWithWarehouse{
		Inventory:     entity.Inventory{ID: invID, ProductID: productID, WarehouseID: warehouseID, Quantity: qty},
		WarehouseName: "Bodega",
	}
}

func defaultPolicy() inventory.ThresholdPolicy {
	return inventory.NewThresholdPolicy(0, nil, nil)
}

// ──────────────────────────────────────────────────────────────────────────────
// Velocidad y días hasta quiebre
// ──────────────────────────────────────────────────────────────────────────────

// Ejemplo de referencia: ventas -2, -3, -4 en la ventana, stock 5, umbral 20 -> 16 días.
func TestEvaluateLowStock_EjemploDiasHastaQuiebre(t *testing.T) {
	snap := inventory.LowStockSnapshot{
		Products:  []*entity.Product{product(1, "A-1")},
		Inventory: []entity.InventoryWithWarehouse{stockRow(10, 1, 100, 5)},
		Sales:     map[int64]inventory.Velocity{10: {SalesCount: 3, TotalSold: -9}},
	}

	alerts := inventory.EvaluateLowStock(snap, defaultPolicy())

	require.Len(t, alerts, 1)
	a := alerts[0]
	assert.Equal(t, 20, a.Threshold)
	assert.Equal(t, 5, a.CurrentStock)
	require.NotNil(t, a.DaysUntilStockout)
	assert.Equal(t, 16, *a.DaysUntilStockout)
	assert.True(t, a.AvgDailySales.Equal(decimal.RequireFromString("0.3")), "avg=%s", a.AvgDailySales)
	assert.Equal(t, 3, a.RecentSalesCount)
	assert.Nil(t, a.Supplier)
}

func TestVelocity_DaysUntilStockout_SinVentasEsNil(t *testing.T) {
	v := inventory.Velocity{}
	assert.Nil(t, v.DaysUntilStockout(5))
	assert.True(t, v.AvgDailySales().IsZero())
}

// El cálculo entero evita que floor(9 / 0.3) caiga a 29 por redondeo binario.
func TestVelocity_DaysUntilStockout_Exacto(t *testing.T) {
	v := inventory.Velocity{SalesCount: 1, TotalSold: -9}
	d := v.DaysUntilStockout(9)
	require.NotNil(t, d)
	assert.Equal(t, 30, *d)

	zero := v.DaysUntilStockout(0)
	require.NotNil(t, zero)
	assert.Equal(t, 0, *zero)
}

// ──────────────────────────────────────────────────────────────────────────────
// Umbral
// ──────────────────────────────────────────────────────────────────────────────

func TestEvaluateLowStock_CantidadIgualAlUmbralEsCandidata(t *testing.T) {
	snap := inventory.LowStockSnapshot{
		Products: []*entity.Product{product(1, "A-1"), product(2, "B-2")},
		Inventory: []entity.InventoryWithWarehouse{
			stockRow(10, 1, 100, 20), // == umbral
			stockRow(20, 2, 100, 21), // umbral + 1
		},
		Sales: map[int64]inventory.Velocity{
			10: {SalesCount: 1, TotalSold: -1},
			20: {SalesCount: 1, TotalSold: -1},
		},
	}

	alerts := inventory.EvaluateLowStock(snap, defaultPolicy())

	require.Len(t, alerts, 1)
	assert.Equal(t, int64(1), alerts[0].ProductID)
}

func TestEvaluateLowStock_SobreUmbralExcluidoAunConVentas(t *testing.T) {
	snap := inventory.LowStockSnapshot{
		Products:  []*entity.Product{product(1, "A-1")},
		Inventory: []entity.InventoryWithWarehouse{stockRow(10, 1, 100, 25)},
		Sales:     map[int64]inventory.Velocity{10: {SalesCount: 50, TotalSold: -500}},
	}
	assert.Empty(t, inventory.EvaluateLowStock(snap, defaultPolicy()))
}

func TestEvaluateLowStock_SinVentasRecientesNoAlerta(t *testing.T) {
	snap := inventory.LowStockSnapshot{
		Products:  []*entity.Product{product(1, "A-1")},
		Inventory: []entity.InventoryWithWarehouse{stockRow(10, 1, 100, 5)},
	}
	alerts := inventory.EvaluateLowStock(snap, defaultPolicy())
	assert.NotNil(t, alerts)
	assert.Empty(t, alerts)
}

func TestThresholdPolicy_OverridePorCategoria(t *testing.T) {
	policy := inventory.NewThresholdPolicy(20, map[string]int{"electronics": 10}, func(p *entity.Product) string {
		if p.SKU == "TV-1" {
			return "electronics"
		}
		return ""
	})

	assert.Equal(t, 10, policy.Resolve(product(1, "TV-1")))
	assert.Equal(t, 20, policy.Resolve(product(2, "PAN-1")))
	assert.Equal(t, 20, inventory.ThresholdPolicy{}.Resolve(product(3, "X")), "la política vacía usa el valor por defecto")
}

// Con override de categoría el umbral efectivo cambia la decisión.
func TestEvaluateLowStock_UsaUmbralDeCategoria(t *testing.T) {
	policy := inventory.NewThresholdPolicy(20, map[string]int{"electronics": 10}, func(*entity.Product) string {
		return "electronics"
	})
	snap := inventory.LowStockSnapshot{
		Products:  []*entity.Product{product(1, "TV-1")},
		Inventory: []entity.InventoryWithWarehouse{stockRow(10, 1, 100, 15)},
		Sales:     map[int64]inventory.Velocity{10: {SalesCount: 1, TotalSold: -3}},
	}
	assert.Empty(t, inventory.EvaluateLowStock(snap, policy))
}

// ──────────────────────────────────────────────────────────────────────────────
// Proveedor y agregación
// ──────────────────────────────────────────────────────────────────────────────

func TestEvaluateLowStock_VariasBodegasYProveedor(t *testing.T) {
	sup := &entity.Supplier{ID: 7, Name: "Proveedor", ContactEmail: "ventas@proveedor.test"}
	snap := inventory.LowStockSnapshot{
		Products: []*entity.Product{product(1, "A-1")},
		Inventory: []entity.InventoryWithWarehouse{
			stockRow(10, 1, 100, 3),
			stockRow(11, 1, 200, 4),
		},
		Sales: map[int64]inventory.Velocity{
			10: {SalesCount: 2, TotalSold: -6},
			11: {SalesCount: 1, TotalSold: -30},
		},
		Suppliers: map[int64]*entity.Supplier{1: sup},
	}

	alerts := inventory.EvaluateLowStock(snap, defaultPolicy())

	require.Len(t, alerts, 2)
	assert.Equal(t, int64(100), alerts[0].WarehouseID)
	assert.Equal(t, int64(200), alerts[1].WarehouseID)
	assert.Equal(t, 15, *alerts[0].DaysUntilStockout) // 3*30/6
	assert.Equal(t, 4, *alerts[1].DaysUntilStockout)  // 4*30/30
	assert.Same(t, sup, alerts[0].Supplier)
	assert.Same(t, sup, alerts[1].Supplier)
}
