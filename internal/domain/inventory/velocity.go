package inventory

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesWindowDays ventana de la media móvil de ventas.
const SalesWindowDays = 30

// SalesWindowStart devuelve el inicio de la ventana de ventas que termina en now.
func SalesWindowStart(now time.Time) time.Time {
	return now.Add(-SalesWindowDays * 24 * time.Hour)
}

// Velocity resume las salidas de un inventario dentro de la ventana.
type Velocity struct {
	SalesCount int // filas con change_amount < 0
	TotalSold  int // suma de esos change_amount (<= 0)
}

func (v Velocity) unitsSold() int64 {
	if v.TotalSold < 0 {
		return int64(-v.TotalSold)
	}
	return int64(v.TotalSold)
}

// AvgDailySales = |TotalSold| / SalesWindowDays, redondeado a 4 decimales.
func (v Velocity) AvgDailySales() decimal.Decimal {
	return decimal.NewFromInt(v.unitsSold()).
		Div(decimal.NewFromInt(SalesWindowDays)).
		Round(4)
}

// DaysUntilStockout = floor(quantity / AvgDailySales), nil si la velocidad es 0.
// Se calcula en enteros como floor(quantity * SalesWindowDays / |TotalSold|) para no
// arrastrar error de coma flotante.
func (v Velocity) DaysUntilStockout(quantity int) *int {
	sold := v.unitsSold()
	if sold == 0 {
		return nil
	}
	if quantity < 0 {
		quantity = 0
	}
	days := int(int64(quantity) * SalesWindowDays / sold)
	return &days
}
