package inventory

import (
	"context"

	"github.com/jhoicas/inventory-alerts-api/internal/application/dto"
	"github.com/jhoicas/inventory-alerts-api/internal/domain"
	"github.com/jhoicas/inventory-alerts-api/internal/domain/inventory"
)

// LedgerUseCase expone el libro de auditoría de un inventario y verifica que reproduzca su stock.
type LedgerUseCase struct {
	txRunner TxRunner
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(txRunner TxRunner) *LedgerUseCase {
	return &LedgerUseCase{txRunner: txRunner}
}

// InventoryLedger lee inventario y libro en la misma foto y devuelve ambos con el resultado del replay.
// Una inconsistencia no es un error: se informa en Consistent/Issue.
func (uc *LedgerUseCase) InventoryLedger(ctx context.Context, companyID, inventoryID int64) (*dto.InventoryLedgerResponse, error) {
	var out *dto.InventoryLedgerResponse
	err := uc.txRunner.ReadOnly(ctx, func(repos Repositories) error {
		inv, err := repos.Inventory.GetByID(ctx, inventoryID)
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
		logs, err := repos.Logs.ListByInventory(ctx, inv.ID)
		if err != nil {
			return err
		}

		out = &dto.InventoryLedgerResponse{
			Inventory:  *toInventoryResponse(inv),
			Logs:       make([]dto.InventoryLogResponse, 0, len(logs)),
			Consistent: true,
		}
		for _, l := range logs {
			out.Logs = append(out.Logs, dto.InventoryLogResponse{
				ID:           l.ID,
				InventoryID:  l.InventoryID,
				ChangeAmount: l.ChangeAmount,
				PreviousQty:  l.PreviousQty,
				NewQty:       l.NewQty,
				Reason:       l.Reason,
				ChangedBy:    l.ChangedBy,
				CreatedAt:    l.CreatedAt,
			})
		}
		if verr := inventory.VerifyLedger(inv, logs); verr != nil {
			out.Consistent = false
			out.Issue = verr.Error()
		}
		return nil
	})
	if err != nil {
		return nil, toDomainError(err)
	}
	return out, nil
}
