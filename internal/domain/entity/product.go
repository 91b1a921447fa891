package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaxMoney es el mayor valor que admite una columna NUMERIC(10,2).
var MaxMoney = decimal.RequireFromString("99999999.99")

// Product representa un SKU del catálogo de una empresa.
// El stock no vive aquí: se maneja por bodega en Inventory.
type Product struct {
	ID        int64
	CompanyID int64
	Name      string
	SKU       string          // único por empresa
	Price     decimal.Decimal // precio de venta, DECIMAL(10,2), >= 0
	IsBundle  bool
	CreatedAt time.Time
}
