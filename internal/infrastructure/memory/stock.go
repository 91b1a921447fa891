package memory

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/jhoicas/inventory-alerts-api/internal/domain"
	"github.com/jhoicas/inventory-alerts-api/internal/domain/entity"
	"github.com/jhoicas/inventory-alerts-api/internal/domain/repository"
)

var (
	_ repository.InventoryRepository    = (*InventoryRepo)(nil)
	_ repository.InventoryLogRepository = (*InventoryLogRepo)(nil)
	_ repository.BundleRepository       = (*BundleRepo)(nil)
)

// ── Inventory ─────────────────────────────────────────────────────────────────

// InventoryRepo filas producto x bodega en memoria.
type InventoryRepo struct{ x *session }

func (r *InventoryRepo) Create(_ context.Context, inv *entity.Inventory) error {
	return r.x.write("inventory.create", func(st *state) error {
		if _, ok := st.products[inv.ProductID]; !ok {
			return domain.ErrNotFound
		}
		if _, ok := st.warehouses[inv.WarehouseID]; !ok {
			return domain.ErrNotFound
		}
		if inv.Quantity < 0 {
			return domain.ErrInvalidInput
		}
		key := [2]int64{inv.ProductID, inv.WarehouseID}
		if _, ok := st.inventoryByProdWh[key]; ok {
			return domain.ErrConflict
		}
		st.seq.inventory++
		inv.ID = st.seq.inventory
		st.inventory[inv.ID] = *inv
		st.inventoryByProdWh[key] = inv.ID
		return nil
	})
}

func (r *InventoryRepo) GetByID(_ context.Context, id int64) (*entity.Inventory, error) {
	return r.get("inventory.get", id)
}

// GetForUpdate dentro de Run el lock exclusivo ya está tomado; equivale a GetByID.
func (r *InventoryRepo) GetForUpdate(_ context.Context, id int64) (*entity.Inventory, error) {
	return r.get("inventory.get_for_update", id)
}

func (r *InventoryRepo) get(op string, id int64) (*entity.Inventory, error) {
	var out *entity.Inventory
	err := r.x.read(op, func(st *state) error {
		if inv, ok := st.inventory[id]; ok {
			out = &inv
		}
		return nil
	})
	return out, err
}

func (r *InventoryRepo) UpdateQuantity(_ context.Context, id int64, quantity int, at time.Time) error {
	return r.x.write("inventory.update_quantity", func(st *state) error {
		inv, ok := st.inventory[id]
		if !ok {
			return domain.ErrNotFound
		}
		if quantity < 0 {
			return domain.ErrInsufficientStock
		}
		inv.Quantity = quantity
		inv.UpdatedAt = at
		st.inventory[id] = inv
		return nil
	})
}

func (r *InventoryRepo) ListByCompanyWithWarehouse(_ context.Context, companyID int64) ([]entity.InventoryWithWarehouse, error) {
	var out []entity.InventoryWithWarehouse
	err := r.x.read("inventory.list", func(st *state) error {
		for _, inv := range st.inventory {
			p, ok := st.products[inv.ProductID]
			if !ok || p.CompanyID != companyID {
				continue
			}
			out = append(out, entity.InventoryWithWarehouse{
				Inventory:     inv,
				WarehouseName: st.warehouses[inv.WarehouseID].Name,
			})
		}
		slices.SortFunc(out, func(a, b entity.InventoryWithWarehouse) int {
			if c := cmp.Compare(a.ProductID, b.ProductID); c != 0 {
				return c
			}
			return cmp.Compare(a.WarehouseID, b.WarehouseID)
		})
		return nil
	})
	return out, err
}

// ── Inventory logs ────────────────────────────────────────────────────────────

// InventoryLogRepo libro de auditoría en memoria: solo expone inserción y lectura.
type InventoryLogRepo struct{ x *session }

func (r *InventoryLogRepo) Append(_ context.Context, entry *entity.InventoryLog) error {
	return r.x.write("logs.append", func(st *state) error {
		if _, ok := st.inventory[entry.InventoryID]; !ok {
			return domain.ErrNotFound
		}
		if entry.NewQty != entry.PreviousQty+entry.ChangeAmount {
			return domain.ErrInvalidInput
		}
		st.seq.log++
		entry.ID = st.seq.log
		st.logs = append(st.logs, *entry)
		return nil
	})
}

func (r *InventoryLogRepo) ListByInventory(_ context.Context, inventoryID int64) ([]*entity.InventoryLog, error) {
	var out []*entity.InventoryLog
	err := r.x.read("logs.list", func(st *state) error {
		for _, l := range st.logs {
			l := l
			if l.InventoryID == inventoryID {
				out = append(out, &l)
			}
		}
		slices.SortStableFunc(out, func(a, b *entity.InventoryLog) int {
			if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
				return c
			}
			return cmp.Compare(a.ID, b.ID)
		})
		return nil
	})
	return out, err
}

func (r *InventoryLogRepo) OutboundSummaryByCompany(_ context.Context, companyID int64, since, until time.Time) (map[int64]repository.SalesSummary, error) {
	out := make(map[int64]repository.SalesSummary)
	err := r.x.read("logs.outbound_summary", func(st *state) error {
		for _, l := range st.logs {
			if !l.IsOutbound() || l.CreatedAt.Before(since) || l.CreatedAt.After(until) {
				continue
			}
			inv, ok := st.inventory[l.InventoryID]
			if !ok || st.products[inv.ProductID].CompanyID != companyID {
				continue
			}
			s := out[l.InventoryID]
			s.InventoryID = l.InventoryID
			s.Count++
			s.TotalChange += l.ChangeAmount
			out[l.InventoryID] = s
		}
		return nil
	})
	return out, err
}

// ── Bundles ───────────────────────────────────────────────────────────────────

// BundleRepo aristas de kits en memoria.
type BundleRepo struct{ x *session }

func (r *BundleRepo) Create(_ context.Context, edge *entity.ProductBundle) error {
	return r.x.write("bundles.create", func(st *state) error {
		if edge.QuantityRequired <= 0 || edge.ParentProductID == edge.ChildProductID {
			return domain.ErrInvalidInput
		}
		st.seq.bundle++
		edge.ID = st.seq.bundle
		st.bundles = append(st.bundles, *edge)
		return nil
	})
}

// ListByCompanyForUpdate dentro de Run el lock exclusivo ya serializa a los escritores.
func (r *BundleRepo) ListByCompanyForUpdate(_ context.Context, companyID int64) ([]*entity.ProductBundle, error) {
	var out []*entity.ProductBundle
	err := r.x.read("bundles.list", func(st *state) error {
		for _, e := range st.bundles {
			e := e
			if st.products[e.ParentProductID].CompanyID == companyID {
				out = append(out, &e)
			}
		}
		return nil
	})
	return out, err
}
