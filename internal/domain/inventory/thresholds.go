package inventory

import "github.com/jhoicas/inventory-alerts-api/internal/domain/entity"

// DefaultLowStockThreshold umbral de alerta cuando el producto no tiene override por categoría.
const DefaultLowStockThreshold = 20

// DefaultCategoryThresholds overrides de ejemplo por categoría de producto.
var DefaultCategoryThresholds = map[string]int{
	"electronics": 10,
}

// CategoryResolver clasifica un producto. Devuelve "" si no tiene categoría.
type CategoryResolver func(p *entity.Product) string

// NoCategory es el resolver por defecto: el modelo actual no guarda categoría en Product,
// así que siempre aplica el umbral por defecto.
func NoCategory(*entity.Product) string { return "" }

// ThresholdPolicy resuelve el umbral de stock bajo de cada producto.
type ThresholdPolicy struct {
	Default    int
	ByCategory map[string]int
	CategoryOf CategoryResolver
}

// NewThresholdPolicy construye la política. def <= 0 usa DefaultLowStockThreshold;
// byCategory nil usa DefaultCategoryThresholds.
func NewThresholdPolicy(def int, byCategory map[string]int, categoryOf CategoryResolver) ThresholdPolicy {
	if def <= 0 {
		def = DefaultLowStockThreshold
	}
	if byCategory == nil {
		byCategory = DefaultCategoryThresholds
	}
	if categoryOf == nil {
		categoryOf = NoCategory
	}
	return ThresholdPolicy{Default: def, ByCategory: byCategory, CategoryOf: categoryOf}
}

// Resolve devuelve el umbral del producto: override de su categoría o el valor por defecto.
func (p ThresholdPolicy) Resolve(product *entity.Product) int {
	def := p.Default
	if def <= 0 {
		def = DefaultLowStockThreshold
	}
	if p.CategoryOf == nil || product == nil {
		return def
	}
	category := p.CategoryOf(product)
	if category == "" {
		return def
	}
	if t, ok := p.ByCategory[category]; ok {
		return t
	}
	return def
}

// IsLowStockCandidate: una cantidad igual al umbral sí es candidata.
func IsLowStockCandidate(quantity, threshold int) bool {
	return quantity <= threshold
}
