package memory

import (
	"context"
	"slices"

	"github.com/jhoicas/inventory-alerts-api/internal/domain"
	"github.com/jhoicas/inventory-alerts-api/internal/domain/entity"
	"github.com/jhoicas/inventory-alerts-api/internal/domain/repository"
)

var (
	_ repository.CompanyRepository   = (*CompanyRepo)(nil)
	_ repository.WarehouseRepository = (*WarehouseRepo)(nil)
	_ repository.ProductRepository   = (*ProductRepo)(nil)
	_ repository.SupplierRepository  = (*SupplierRepo)(nil)
)

// ── Companies ─────────────────────────────────────────────────────────────────

// CompanyRepo empresas en memoria.
type CompanyRepo struct{ x *session }

func (r *CompanyRepo) Create(_ context.Context, c *entity.Company) error {
	return r.x.write("companies.create", func(st *state) error {
		if _, ok := st.companyByName[c.Name]; ok {
			return domain.ErrConflict
		}
		st.seq.company++
		c.ID = st.seq.company
		st.companies[c.ID] = *c
		st.companyByName[c.Name] = c.ID
		return nil
	})
}

func (r *CompanyRepo) GetByID(_ context.Context, id int64) (*entity.Company, error) {
	var out *entity.Company
	err := r.x.read("companies.get", func(st *state) error {
		if c, ok := st.companies[id]; ok {
			out = &c
		}
		return nil
	})
	return out, err
}

func (r *CompanyRepo) List(_ context.Context, limit, offset int) ([]*entity.Company, error) {
	var out []*entity.Company
	err := r.x.read("companies.list", func(st *state) error {
		ids := sortedKeys(st.companies)
		for _, id := range page(ids, limit, offset) {
			c := st.companies[id]
			out = append(out, &c)
		}
		return nil
	})
	return out, err
}

// ── Warehouses ────────────────────────────────────────────────────────────────

// WarehouseRepo bodegas en memoria.
type WarehouseRepo struct{ x *session }

func (r *WarehouseRepo) Create(_ context.Context, w *entity.Warehouse) error {
	return r.x.write("warehouses.create", func(st *state) error {
		if _, ok := st.companies[w.CompanyID]; !ok {
			return domain.ErrNotFound
		}
		key := companyKey{w.CompanyID, w.Name}
		if _, ok := st.warehouseByName[key]; ok {
			return domain.ErrConflict
		}
		st.seq.warehouse++
		w.ID = st.seq.warehouse
		st.warehouses[w.ID] = *w
		st.warehouseByName[key] = w.ID
		return nil
	})
}

func (r *WarehouseRepo) GetByID(_ context.Context, id int64) (*entity.Warehouse, error) {
	var out *entity.Warehouse
	err := r.x.read("warehouses.get", func(st *state) error {
		if w, ok := st.warehouses[id]; ok {
			out = &w
		}
		return nil
	})
	return out, err
}

func (r *WarehouseRepo) ListByCompany(_ context.Context, companyID int64, limit, offset int) ([]*entity.Warehouse, error) {
	var out []*entity.Warehouse
	err := r.x.read("warehouses.list", func(st *state) error {
		var ids []int64
		for id, w := range st.warehouses {
			if w.CompanyID == companyID {
				ids = append(ids, id)
			}
		}
		slices.Sort(ids)
		for _, id := range page(ids, limit, offset) {
			w := st.warehouses[id]
			out = append(out, &w)
		}
		return nil
	})
	return out, err
}

// ── Products ──────────────────────────────────────────────────────────────────

// ProductRepo productos en memoria.
type ProductRepo struct{ x *session }

func (r *ProductRepo) Create(_ context.Context, p *entity.Product) error {
	return r.x.write("products.create", func(st *state) error {
		if _, ok := st.companies[p.CompanyID]; !ok {
			return domain.ErrNotFound
		}
		if p.Price.IsNegative() {
			return domain.ErrInvalidInput
		}
		key := companyKey{p.CompanyID, p.SKU}
		if _, ok := st.productBySKU[key]; ok {
			return domain.ErrConflict
		}
		st.seq.product++
		p.ID = st.seq.product
		st.products[p.ID] = *p
		st.productBySKU[key] = p.ID
		return nil
	})
}

func (r *ProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	var out *entity.Product
	err := r.x.read("products.get", func(st *state) error {
		if p, ok := st.products[id]; ok {
			out = &p
		}
		return nil
	})
	return out, err
}

func (r *ProductRepo) GetByCompanyAndSKU(_ context.Context, companyID int64, sku string) (*entity.Product, error) {
	var out *entity.Product
	err := r.x.read("products.get_by_sku", func(st *state) error {
		if id, ok := st.productBySKU[companyKey{companyID, sku}]; ok {
			p := st.products[id]
			out = &p
		}
		return nil
	})
	return out, err
}

func (r *ProductRepo) ListByCompany(_ context.Context, companyID int64, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	err := r.x.read("products.list", func(st *state) error {
		var ids []int64
		for id, p := range st.products {
			if p.CompanyID == companyID {
				ids = append(ids, id)
			}
		}
		slices.Sort(ids)
		for _, id := range page(ids, limit, offset) {
			p := st.products[id]
			out = append(out, &p)
		}
		return nil
	})
	return out, err
}

func (r *ProductRepo) MarkBundle(_ context.Context, id int64) error {
	return r.x.write("products.mark_bundle", func(st *state) error {
		p, ok := st.products[id]
		if !ok {
			return domain.ErrNotFound
		}
		p.IsBundle = true
		st.products[id] = p
		return nil
	})
}

// ── Suppliers ─────────────────────────────────────────────────────────────────

// SupplierRepo proveedores y aristas proveedor-producto en memoria.
type SupplierRepo struct{ x *session }

func (r *SupplierRepo) Create(_ context.Context, s *entity.Supplier) error {
	return r.x.write("suppliers.create", func(st *state) error {
		if _, ok := st.companies[s.CompanyID]; !ok {
			return domain.ErrNotFound
		}
		st.seq.supplier++
		s.ID = st.seq.supplier
		st.suppliers[s.ID] = *s
		return nil
	})
}

func (r *SupplierRepo) GetByID(_ context.Context, id int64) (*entity.Supplier, error) {
	var out *entity.Supplier
	err := r.x.read("suppliers.get", func(st *state) error {
		if s, ok := st.suppliers[id]; ok {
			out = &s
		}
		return nil
	})
	return out, err
}

func (r *SupplierRepo) LinkProduct(_ context.Context, link *entity.SupplierProduct) error {
	return r.x.write("suppliers.link_product", func(st *state) error {
		if _, ok := st.suppliers[link.SupplierID]; !ok {
			return domain.ErrNotFound
		}
		if _, ok := st.products[link.ProductID]; !ok {
			return domain.ErrNotFound
		}
		st.seq.supplierProduct++
		link.ID = st.seq.supplierProduct
		st.supplierProducts = append(st.supplierProducts, *link)
		return nil
	})
}

func (r *SupplierRepo) PrimaryByCompany(_ context.Context, companyID int64) (map[int64]*entity.Supplier, error) {
	out := make(map[int64]*entity.Supplier)
	err := r.x.read("suppliers.primary", func(st *state) error {
		for _, link := range st.supplierProducts {
			p, ok := st.products[link.ProductID]
			if !ok || p.CompanyID != companyID {
				continue
			}
			if cur, ok := out[link.ProductID]; ok && cur.ID <= link.SupplierID {
				continue
			}
			s := st.suppliers[link.SupplierID]
			out[link.ProductID] = &s
		}
		return nil
	})
	return out, err
}

func sortedKeys[V any](m map[int64]V) []int64 {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
