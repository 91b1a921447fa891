package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/v1/companies/{companyId}/products.
// InitialQuantity ausente equivale a 0.
type CreateProductRequest struct {
	Name            string          `json:"name" validate:"required,min=1,max=200"`
	SKU             string          `json:"sku" validate:"required,min=1,max=100"`
	Price           decimal.Decimal `json:"price"`
	WarehouseID     int64           `json:"warehouse_id" validate:"required"`
	InitialQuantity *int            `json:"initial_quantity,omitempty"`
}

// CreateProductResponse salida del alta de producto.
type CreateProductResponse struct {
	Message   string `json:"message"`
	ProductID int64  `json:"product_id"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID        int64           `json:"id"`
	CompanyID int64           `json:"company_id"`
	Name      string          `json:"name"`
	SKU       string          `json:"sku"`
	Price     decimal.Decimal `json:"price"`
	IsBundle  bool            `json:"is_bundle"`
	CreatedAt time.Time       `json:"created_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// AddBundleComponentRequest body para agregar un componente a un kit.
type AddBundleComponentRequest struct {
	ChildProductID   int64 `json:"child_product_id"`
	QuantityRequired int   `json:"quantity_required"`
}

// BundleComponentResponse arista de kit creada.
type BundleComponentResponse struct {
	ID               int64 `json:"id"`
	ParentProductID  int64 `json:"parent_product_id"`
	ChildProductID   int64 `json:"child_product_id"`
	QuantityRequired int   `json:"quantity_required"`
}
