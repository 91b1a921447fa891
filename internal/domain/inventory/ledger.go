package inventory

import (
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/inventory-alerts-api/internal/domain"
	"github.com/jhoicas/inventory-alerts-api/internal/domain/entity"
)

// ErrLedgerMismatch el libro de auditoría no reproduce el stock registrado.
var ErrLedgerMismatch = errors.New("libro de inventario inconsistente")

// NewLogEntry construye la fila de auditoría para un cambio de cantidad.
// Devuelve domain.ErrInsufficientStock si el resultado quedaría negativo y
// domain.ErrInvalidInput si el cambio o el resultado exceden entity.MaxQuantity.
func NewLogEntry(inventoryID int64, previousQty, change int, reason string, changedBy *int64, at time.Time) (*entity.InventoryLog, error) {
	// Acotar antes de sumar: con ambos operandos en el rango de INTEGER la suma no desborda.
	if change > entity.MaxQuantity || change < -entity.MaxQuantity ||
		previousQty < 0 || previousQty > entity.MaxQuantity {
		return nil, domain.ErrInvalidInput
	}
	newQty := previousQty + change
	if newQty < 0 {
		return nil, domain.ErrInsufficientStock
	}
	if newQty > entity.MaxQuantity {
		return nil, domain.ErrInvalidInput
	}
	return &entity.InventoryLog{
		InventoryID:  inventoryID,
		ChangeAmount: change,
		PreviousQty:  previousQty,
		NewQty:       newQty,
		Reason:       reason,
		ChangedBy:    changedBy,
		CreatedAt:    at,
	}, nil
}

// ReplayLedger aplica las filas en orden de creación partiendo de 0 y verifica que cada
// previous_qty encadene con el new_qty anterior y que new_qty = previous_qty + change_amount.
// Devuelve la cantidad final.
func ReplayLedger(logs []*entity.InventoryLog) (int, error) {
	qty := 0
	for i, l := range logs {
		if l.PreviousQty != qty {
			return qty, fmt.Errorf("%w: fila %d (id %d) previous_qty=%d, esperado %d",
				ErrLedgerMismatch, i, l.ID, l.PreviousQty, qty)
		}
		qty = l.PreviousQty + l.ChangeAmount
		if l.NewQty != qty {
			return qty, fmt.Errorf("%w: fila %d (id %d) new_qty=%d, esperado %d",
				ErrLedgerMismatch, i, l.ID, l.NewQty, qty)
		}
	}
	return qty, nil
}

// VerifyLedger comprueba el libro completo contra la cantidad actual del inventario.
func VerifyLedger(inv *entity.Inventory, logs []*entity.InventoryLog) error {
	final, err := ReplayLedger(logs)
	if err != nil {
		return err
	}
	if final != inv.Quantity {
		return fmt.Errorf("%w: replay=%d, inventario=%d", ErrLedgerMismatch, final, inv.Quantity)
	}
	return nil
}
