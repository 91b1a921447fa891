package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-alerts-api/internal/application/dto"
	appinv "github.com/jhoicas/inventory-alerts-api/internal/application/inventory"
	"github.com/jhoicas/inventory-alerts-api/internal/domain/entity"
	"github.com/jhoicas/inventory-alerts-api/internal/infrastructure/memory"
)

var baseTime = time.Date(2026, 3, 31, 12, 0, 0, 0, time.UTC)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

type fixture struct {
	store       *memory.Store
	companyID   int64
	warehouseID int64
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.New()
	ctx := context.Background()
	repos := store.Repositories()

	company := &entity.Company{Name: "Acme", CreatedAt: baseTime}
	require.NoError(t, repos.Companies.Create(ctx, company))
	warehouse := &entity.Warehouse{CompanyID: company.ID, Name: "Central", CreatedAt: baseTime}
	require.NoError(t, repos.Warehouses.Create(ctx, warehouse))

	return &fixture{store: store, companyID: company.ID, warehouseID: warehouse.ID}
}

func (f *fixture) addWarehouse(t *testing.T, name string) int64 {
	t.Helper()
	w := &entity.Warehouse{CompanyID: f.companyID, Name: name, CreatedAt: baseTime}
	require.NoError(t, f.store.Repositories().Warehouses.Create(context.Background(), w))
	return w.ID
}

func (f *fixture) createProduct(t *testing.T, at time.Time, sku string, warehouseID int64, qty int) int64 {
	t.Helper()
	uc := appinv.NewCreateProductUseCase(f.store).WithClock(fixedClock(at))
	id, err := uc.CreateProduct(context.Background(), f.companyID, dto.CreateProductRequest{
		Name:            "Producto " + sku,
		SKU:             sku,
		Price:           decimal.RequireFromString("9.99"),
		WarehouseID:     warehouseID,
		InitialQuantity: &qty,
	})
	require.NoError(t, err)
	return id
}

// inventoryID devuelve la fila de inventario del producto en la bodega.
func (f *fixture) inventoryID(t *testing.T, productID, warehouseID int64) int64 {
	t.Helper()
	rows, err := f.store.Repositories().Inventory.ListByCompanyWithWarehouse(context.Background(), f.companyID)
	require.NoError(t, err)
	for _, r := range rows {
		if r.ProductID == productID && r.WarehouseID == warehouseID {
			return r.ID
		}
	}
	t.Fatalf("sin inventario para producto %d en bodega %d", productID, warehouseID)
	return 0
}

func (f *fixture) adjust(t *testing.T, at time.Time, inventoryID int64, change int) {
	t.Helper()
	uc := appinv.NewAdjustStockUseCase(f.store).WithClock(fixedClock(at))
	_, err := uc.AdjustStock(context.Background(), f.companyID, inventoryID, dto.AdjustStockRequest{ChangeAmount: change})
	require.NoError(t, err)
}

func intPtr(n int) *int { return &n }
