package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/inventory-alerts-api/internal/application/dto"
	"github.com/jhoicas/inventory-alerts-api/internal/domain"
	"github.com/jhoicas/inventory-alerts-api/internal/domain/inventory"
)

// ErrNoProducts la empresa no tiene productos (distinto de "sin alertas").
var ErrNoProducts = fmt.Errorf("%w: la empresa no tiene productos", domain.ErrNotFound)

// LowStockAlertsUseCase calcula las alertas de stock bajo de una empresa.
// Solo lectura: no persiste nada y puede ejecutarse en paralelo consigo mismo y con altas.
type LowStockAlertsUseCase struct {
	txRunner TxRunner
	policy   inventory.ThresholdPolicy
	now      func() time.Time
}

// NewLowStockAlertsUseCase construye el caso de uso con la política de umbrales.
func NewLowStockAlertsUseCase(txRunner TxRunner, policy inventory.ThresholdPolicy) *LowStockAlertsUseCase {
	return &LowStockAlertsUseCase{txRunner: txRunner, policy: policy, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *LowStockAlertsUseCase) WithClock(now func() time.Time) *LowStockAlertsUseCase {
	uc.now = now
	return uc
}

// LowStockAlerts lee productos, inventario, ventas de los últimos 30 días y proveedores en una
// misma foto de solo lectura, y evalúa las alertas sobre esa foto.
func (uc *LowStockAlertsUseCase) LowStockAlerts(ctx context.Context, companyID int64) (*dto.LowStockAlertsResponse, error) {
	now := uc.now()
	since := inventory.SalesWindowStart(now)

	var snap inventory.LowStockSnapshot
	err := uc.txRunner.ReadOnly(ctx, func(repos Repositories) error {
		products, err := repos.Products.ListByCompany(ctx, companyID, 0, 0)
		if err != nil {
			return err
		}
		if len(products) == 0 {
			return ErrNoProducts
		}
		rows, err := repos.Inventory.ListByCompanyWithWarehouse(ctx, companyID)
		if err != nil {
			return err
		}
		summaries, err := repos.Logs.OutboundSummaryByCompany(ctx, companyID, since, now)
		if err != nil {
			return err
		}
		suppliers, err := repos.Suppliers.PrimaryByCompany(ctx, companyID)
		if err != nil {
			return err
		}

		sales := make(map[int64]inventory.Velocity, len(summaries))
		for id, s := range summaries {
			sales[id] = inventory.Velocity{SalesCount: s.Count, TotalSold: s.TotalChange}
		}
		snap = inventory.LowStockSnapshot{
			Products:  products,
			Inventory: rows,
			Sales:     sales,
			Suppliers: suppliers,
		}
		return nil
	})
	if err != nil {
		return nil, toDomainError(err)
	}

	alerts := inventory.EvaluateLowStock(snap, uc.policy)
	out := &dto.LowStockAlertsResponse{
		Alerts:      make([]dto.LowStockAlertDTO, 0, len(alerts)),
		TotalAlerts: len(alerts),
	}
	for _, a := range alerts {
		item := dto.LowStockAlertDTO{
			ProductID:         a.ProductID,
			ProductName:       a.ProductName,
			SKU:               a.SKU,
			WarehouseID:       a.WarehouseID,
			WarehouseName:     a.WarehouseName,
			CurrentStock:      a.CurrentStock,
			Threshold:         a.Threshold,
			DaysUntilStockout: a.DaysUntilStockout,
			RecentSalesCount:  a.RecentSalesCount,
			AvgDailySales:     a.AvgDailySales,
		}
		if a.Supplier != nil {
			item.Supplier = &dto.AlertSupplierDTO{
				ID:           a.Supplier.ID,
				Name:         a.Supplier.Name,
				ContactEmail: a.Supplier.ContactEmail,
			}
		}
		out.Alerts = append(out.Alerts, item)
	}
	return out, nil
}
