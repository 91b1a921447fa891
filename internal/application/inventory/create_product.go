package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/inventory-alerts-api/internal/application/dto"
	"github.com/jhoicas/inventory-alerts-api/internal/domain"
	"github.com/jhoicas/inventory-alerts-api/internal/domain/entity"
	"github.com/jhoicas/inventory-alerts-api/internal/domain/inventory"
	"github.com/jhoicas/inventory-alerts-api/pkg/textnorm"
)

// CreateProductUseCase da de alta un producto junto con su inventario inicial en una bodega.
// Producto, inventario y la fila inicial del libro se escriben en una sola transacción:
// un lector nunca ve un producto sin su inventario.
type CreateProductUseCase struct {
	txRunner TxRunner
	now      func() time.Time
}

// NewCreateProductUseCase construye el caso de uso.
func NewCreateProductUseCase(txRunner TxRunner) *CreateProductUseCase {
	return &CreateProductUseCase{txRunner: txRunner, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *CreateProductUseCase) WithClock(now func() time.Time) *CreateProductUseCase {
	uc.now = now
	return uc
}

// CreateProduct valida en orden bodega, SKU, precio y cantidad inicial, y luego inserta
// Product + Inventory + InventoryLog(initial_stock). Errores:
//   - domain.ErrNotFound: la bodega no existe o no es de la empresa
//   - domain.ErrConflict: el SKU ya existe en la empresa (también si otro alta concurrente gana)
//   - domain.ErrInvalidInput: nombre/SKU vacío, precio fuera de NUMERIC(10,2) o cantidad inicial fuera de rango
//   - domain.ErrInternal: fallo de almacenamiento; la transacción se revierte completa
func (uc *CreateProductUseCase) CreateProduct(ctx context.Context, companyID int64, in dto.CreateProductRequest) (int64, error) {
	name := textnorm.Name(in.Name)
	sku := textnorm.SKU(in.SKU)
	if name == "" || sku == "" {
		return 0, domain.ErrInvalidInput
	}
	qty := 0
	if in.InitialQuantity != nil {
		qty = *in.InitialQuantity
	}

	var productID int64
	err := uc.txRunner.Run(ctx, func(repos Repositories) error {
		wh, err := repos.Warehouses.GetByID(ctx, in.WarehouseID)
		if err != nil {
			return err
		}
		if wh == nil || wh.CompanyID != companyID {
			return domain.ErrNotFound
		}

		existing, err := repos.Products.GetByCompanyAndSKU(ctx, companyID, sku)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrConflict
		}

		price := in.Price.Round(2)
		if price.IsNegative() || price.GreaterThan(entity.MaxMoney) {
			return domain.ErrInvalidInput
		}
		if qty < 0 || qty > entity.MaxQuantity {
			return domain.ErrInvalidInput
		}

		now := uc.now()
		product := &entity.Product{
			CompanyID: companyID,
			Name:      name,
			SKU:       sku,
			Price:     price,
			CreatedAt: now,
		}
		// La unicidad (company_id, sku) la decide el almacenamiento: si un alta concurrente
		// ganó la carrera, Create devuelve domain.ErrConflict.
		if err := repos.Products.Create(ctx, product); err != nil {
			return err
		}

		inv := &entity.Inventory{
			ProductID:   product.ID,
			WarehouseID: wh.ID,
			Quantity:    qty,
			UpdatedAt:   now,
		}
		if err := repos.Inventory.Create(ctx, inv); err != nil {
			return err
		}

		entry, err := inventory.NewLogEntry(inv.ID, 0, qty, entity.LogReasonInitialStock, nil, now)
		if err != nil {
			return err
		}
		if err := repos.Logs.Append(ctx, entry); err != nil {
			return err
		}

		productID = product.ID
		return nil
	})
	if err != nil {
		return 0, toDomainError(err)
	}
	return productID, nil
}
