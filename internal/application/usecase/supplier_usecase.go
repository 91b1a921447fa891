package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/inventory-alerts-api/internal/application/dto"
	"github.com/jhoicas/inventory-alerts-api/internal/domain"
	"github.com/jhoicas/inventory-alerts-api/internal/domain/entity"
	"github.com/jhoicas/inventory-alerts-api/internal/domain/repository"
	"github.com/jhoicas/inventory-alerts-api/pkg/textnorm"
)

// SupplierUseCase alta de proveedores y su vínculo con productos.
type SupplierUseCase struct {
	repo        repository.SupplierRepository
	companyRepo repository.CompanyRepository
	productRepo repository.ProductRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(
	repo repository.SupplierRepository,
	companyRepo repository.CompanyRepository,
	productRepo repository.ProductRepository,
) *SupplierUseCase {
	return &SupplierUseCase{repo: repo, companyRepo: companyRepo, productRepo: productRepo}
}

// Create crea un proveedor de la empresa.
func (uc *SupplierUseCase) Create(ctx context.Context, companyID int64, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	name := textnorm.Name(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	company, err := uc.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	supplier := &entity.Supplier{
		CompanyID:    companyID,
		Name:         name,
		ContactEmail: in.ContactEmail,
		Phone:        in.Phone,
		Address:      in.Address,
		CreatedAt:    time.Now(),
	}
	if err := uc.repo.Create(ctx, supplier); err != nil {
		return nil, err
	}
	return &dto.SupplierResponse{
		ID:           supplier.ID,
		CompanyID:    supplier.CompanyID,
		Name:         supplier.Name,
		ContactEmail: supplier.ContactEmail,
		Phone:        supplier.Phone,
		Address:      supplier.Address,
		CreatedAt:    supplier.CreatedAt,
	}, nil
}

// LinkProduct vincula proveedor y producto; ambos deben ser de la empresa.
// La relación no exige unicidad: vincular dos veces crea dos aristas.
func (uc *SupplierUseCase) LinkProduct(ctx context.Context, companyID, supplierID int64, in dto.LinkSupplierProductRequest) (*dto.SupplierProductResponse, error) {
	if in.CostPrice != nil && (in.CostPrice.IsNegative() || in.CostPrice.Round(2).GreaterThan(entity.MaxMoney)) {
		return nil, domain.ErrInvalidInput
	}
	if in.LeadTimeDays != nil && *in.LeadTimeDays < 0 {
		return nil, domain.ErrInvalidInput
	}
	supplier, err := uc.repo.GetByID(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil || supplier.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	product, err := uc.productRepo.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil || product.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	link := &entity.SupplierProduct{
		SupplierID:   supplierID,
		ProductID:    in.ProductID,
		CostPrice:    in.CostPrice,
		LeadTimeDays: in.LeadTimeDays,
	}
	if err := uc.repo.LinkProduct(ctx, link); err != nil {
		return nil, err
	}
	return &dto.SupplierProductResponse{
		ID:           link.ID,
		SupplierID:   link.SupplierID,
		ProductID:    link.ProductID,
		CostPrice:    link.CostPrice,
		LeadTimeDays: link.LeadTimeDays,
	}, nil
}
