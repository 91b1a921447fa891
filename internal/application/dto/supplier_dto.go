package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSupplierRequest entrada para crear un proveedor.
type CreateSupplierRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=200"`
	ContactEmail string `json:"contact_email" validate:"omitempty,email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID           int64     `json:"id"`
	CompanyID    int64     `json:"company_id"`
	Name         string    `json:"name"`
	ContactEmail string    `json:"contact_email"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	CreatedAt    time.Time `json:"created_at"`
}

// LinkSupplierProductRequest vincula un proveedor con un producto.
type LinkSupplierProductRequest struct {
	ProductID    int64            `json:"product_id"`
	CostPrice    *decimal.Decimal `json:"cost_price,omitempty"`
	LeadTimeDays *int             `json:"lead_time_days,omitempty"`
}

// SupplierProductResponse arista proveedor-producto creada.
type SupplierProductResponse struct {
	ID           int64            `json:"id"`
	SupplierID   int64            `json:"supplier_id"`
	ProductID    int64            `json:"product_id"`
	CostPrice    *decimal.Decimal `json:"cost_price,omitempty"`
	LeadTimeDays *int             `json:"lead_time_days,omitempty"`
}
