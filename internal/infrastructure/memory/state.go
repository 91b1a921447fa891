package memory

import (
	"maps"

	"github.com/jhoicas/inventory-alerts-api/internal/domain/entity"
)

// state es el contenido completo del store. Los mapas guardan valores, no punteros,
// para que clone() produzca una copia independiente.
type state struct {
	companies        map[int64]entity.Company
	warehouses       map[int64]entity.Warehouse
	products         map[int64]entity.Product
	inventory        map[int64]entity.Inventory
	logs             []entity.InventoryLog
	suppliers        map[int64]entity.Supplier
	supplierProducts []entity.SupplierProduct
	bundles          []entity.ProductBundle

	// índices únicos
	companyByName     map[string]int64
	warehouseByName   map[companyKey]int64
	productBySKU      map[companyKey]int64
	inventoryByProdWh map[[2]int64]int64

	seq sequences
}

type companyKey struct {
	companyID int64
	key       string
}

type sequences struct {
	company, warehouse, product, inventory, log, supplier, supplierProduct, bundle int64
}

func newState() *state {
	return &state{
		companies:         make(map[int64]entity.Company),
		warehouses:        make(map[int64]entity.Warehouse),
		products:          make(map[int64]entity.Product),
		inventory:         make(map[int64]entity.Inventory),
		suppliers:         make(map[int64]entity.Supplier),
		companyByName:     make(map[string]int64),
		warehouseByName:   make(map[companyKey]int64),
		productBySKU:      make(map[companyKey]int64),
		inventoryByProdWh: make(map[[2]int64]int64),
	}
}

func (s *state) clone() *state {
	return &state{
		companies:         maps.Clone(s.companies),
		warehouses:        maps.Clone(s.warehouses),
		products:          maps.Clone(s.products),
		inventory:         maps.Clone(s.inventory),
		logs:              append([]entity.InventoryLog(nil), s.logs...),
		suppliers:         maps.Clone(s.suppliers),
		supplierProducts:  append([]entity.SupplierProduct(nil), s.supplierProducts...),
		bundles:           append([]entity.ProductBundle(nil), s.bundles...),
		companyByName:     maps.Clone(s.companyByName),
		warehouseByName:   maps.Clone(s.warehouseByName),
		productBySKU:      maps.Clone(s.productBySKU),
		inventoryByProdWh: maps.Clone(s.inventoryByProdWh),
		seq:               s.seq,
	}
}

// page aplica limit/offset sobre una lista ya ordenada. limit <= 0 = todos.
func page[T any](items []T, limit, offset int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
