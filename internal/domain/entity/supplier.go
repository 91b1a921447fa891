package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Supplier proveedor de una empresa.
type Supplier struct {
	ID           int64
	CompanyID    int64
	Name         string
	ContactEmail string
	Phone        string
	Address      string
	CreatedAt    time.Time
}

// SupplierProduct arista proveedor-producto (muchos a muchos, sin unicidad).
type SupplierProduct struct {
	ID           int64
	SupplierID   int64
	ProductID    int64
	CostPrice    *decimal.Decimal
	LeadTimeDays *int
}
