package dto

import "github.com/shopspring/decimal"

// AlertSupplierDTO proveedor sugerido para reponer.
type AlertSupplierDTO struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	ContactEmail string `json:"contact_email"`
}

// LowStockAlertDTO alerta de stock bajo para un producto en una bodega.
type LowStockAlertDTO struct {
	ProductID         int64             `json:"product_id"`
	ProductName       string            `json:"product_name"`
	SKU               string            `json:"sku"`
	WarehouseID       int64             `json:"warehouse_id"`
	WarehouseName     string            `json:"warehouse_name"`
	CurrentStock      int               `json:"current_stock"`
	Threshold         int               `json:"threshold"`
	DaysUntilStockout *int              `json:"days_until_stockout"` // null = velocidad indeterminada
	RecentSalesCount  int               `json:"recent_sales_count"`  // salidas en los últimos 30 días
	AvgDailySales     decimal.Decimal   `json:"avg_daily_sales"`
	Supplier          *AlertSupplierDTO `json:"supplier"`
}

// LowStockAlertsResponse respuesta de GET .../alerts/low-stock.
type LowStockAlertsResponse struct {
	Alerts      []LowStockAlertDTO `json:"alerts"`
	TotalAlerts int                `json:"total_alerts"`
}
