package inventory

import (
	"context"

	"github.com/jhoicas/inventory-alerts-api/internal/application/dto"
	"github.com/jhoicas/inventory-alerts-api/internal/domain"
	"github.com/jhoicas/inventory-alerts-api/internal/domain/entity"
	"github.com/jhoicas/inventory-alerts-api/internal/domain/inventory"
)

// BundleUseCase administra las aristas de kits. Solo escribe la relación: no calcula stock derivado.
type BundleUseCase struct {
	txRunner TxRunner
}

// NewBundleUseCase construye el caso de uso.
func NewBundleUseCase(txRunner TxRunner) *BundleUseCase {
	return &BundleUseCase{txRunner: txRunner}
}

// AddBundleComponent agrega parent -> child. Rechaza con domain.ErrBundleCycle la arista que
// cerraría un ciclo sobre las aristas existentes de la empresa, y marca al padre como kit.
func (uc *BundleUseCase) AddBundleComponent(ctx context.Context, companyID, parentID int64, in dto.AddBundleComponentRequest) (*dto.BundleComponentResponse, error) {
	if in.QuantityRequired <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if parentID == in.ChildProductID {
		return nil, domain.ErrInvalidInput
	}

	var out *dto.BundleComponentResponse
	err := uc.txRunner.Run(ctx, func(repos Repositories) error {
		for _, id := range []int64{parentID, in.ChildProductID} {
			p, err := repos.Products.GetByID(ctx, id)
			if err != nil {
				return err
			}
			if p == nil || p.CompanyID != companyID {
				return domain.ErrNotFound
			}
		}

		edges, err := repos.Bundles.ListByCompanyForUpdate(ctx, companyID)
		if err != nil {
			return err
		}
		if inventory.WouldCreateCycle(edges, parentID, in.ChildProductID) {
			return domain.ErrBundleCycle
		}

		edge := &entity.ProductBundle{
			ParentProductID:  parentID,
			ChildProductID:   in.ChildProductID,
			QuantityRequired: in.QuantityRequired,
		}
		if err := repos.Bundles.Create(ctx, edge); err != nil {
			return err
		}
		if err := repos.Products.MarkBundle(ctx, parentID); err != nil {
			return err
		}
		out = &dto.BundleComponentResponse{
			ID:               edge.ID,
			ParentProductID:  edge.ParentProductID,
			ChildProductID:   edge.ChildProductID,
			QuantityRequired: edge.QuantityRequired,
		}
		return nil
	})
	if err != nil {
		return nil, toDomainError(err)
	}
	return out, nil
}
