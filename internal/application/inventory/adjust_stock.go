package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/inventory-alerts-api/internal/application/dto"
	"github.com/jhoicas/inventory-alerts-api/internal/domain"
	"github.com/jhoicas/inventory-alerts-api/internal/domain/entity"
	"github.com/jhoicas/inventory-alerts-api/internal/domain/inventory"
)

// AdjustStockUseCase registra un cambio de cantidad (venta, reposición, ajuste) y su fila de
// auditoría en la misma transacción, con bloqueo de fila (SELECT FOR UPDATE).
type AdjustStockUseCase struct {
	txRunner TxRunner
	now      func() time.Time
}

// NewAdjustStockUseCase construye el caso de uso.
func NewAdjustStockUseCase(txRunner TxRunner) *AdjustStockUseCase {
	return &AdjustStockUseCase{txRunner: txRunner, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *AdjustStockUseCase) WithClock(now func() time.Time) *AdjustStockUseCase {
	uc.now = now
	return uc
}

// AdjustStock aplica ChangeAmount al inventario y agrega la fila al libro. Devuelve el inventario
// actualizado. domain.ErrInsufficientStock si la cantidad quedaría negativa.
func (uc *AdjustStockUseCase) AdjustStock(ctx context.Context, companyID, inventoryID int64, in dto.AdjustStockRequest) (*dto.InventoryResponse, error) {
	if in.ChangeAmount == 0 {
		return nil, domain.ErrInvalidInput
	}
	reason := strings.TrimSpace(in.Reason)
	if reason == "" {
		reason = defaultReason(in.ChangeAmount)
	}

	var out *dto.InventoryResponse
	err := uc.txRunner.Run(ctx, func(repos Repositories) error {
		inv, err := repos.Inventory.GetForUpdate(ctx, inventoryID)
		if err != nil {
			return err
		}
		if inv == nil {
			return domain.ErrNotFound
		}
		product, err := repos.Products.GetByID(ctx, inv.ProductID)
		if err != nil {
			return err
		}
		if product == nil || product.CompanyID != companyID {
			return domain.ErrNotFound
		}

		now := uc.now()
		entry, err := inventory.NewLogEntry(inv.ID, inv.Quantity, in.ChangeAmount, reason, in.ChangedBy, now)
		if err != nil {
			return err
		}
		if err := repos.Inventory.UpdateQuantity(ctx, inv.ID, entry.NewQty, now); err != nil {
			return err
		}
		if err := repos.Logs.Append(ctx, entry); err != nil {
			return err
		}

		inv.Quantity = entry.NewQty
		inv.UpdatedAt = now
		out = toInventoryResponse(inv)
		return nil
	})
	if err != nil {
		return nil, toDomainError(err)
	}
	return out, nil
}

func defaultReason(change int) string {
	if change < 0 {
		return entity.LogReasonSale
	}
	return entity.LogReasonRestock
}

func toInventoryResponse(inv *entity.Inventory) *dto.InventoryResponse {
	return &dto.InventoryResponse{
		ID:          inv.ID,
		ProductID:   inv.ProductID,
		WarehouseID: inv.WarehouseID,
		Quantity:    inv.Quantity,
		UpdatedAt:   inv.UpdatedAt,
	}
}
