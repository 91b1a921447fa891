package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventory-alerts-api/internal/domain"
	"github.com/jhoicas/inventory-alerts-api/internal/domain/entity"
	"github.com/jhoicas/inventory-alerts-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo proveedores y aristas proveedor-producto sobre PostgreSQL.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// Create persiste un proveedor y asigna su ID.
func (r *SupplierRepo) Create(ctx context.Context, s *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (company_id, name, contact_email, phone, address, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		s.CompanyID, s.Name, s.ContactEmail, s.Phone, s.Address, s.CreatedAt,
	).Scan(&s.ID)
	if err != nil {
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID.
func (r *SupplierRepo) GetByID(ctx context.Context, id int64) (*entity.Supplier, error) {
	query := `
		SELECT id, company_id, name, contact_email, phone, address, created_at
		FROM suppliers WHERE id = $1`
	var s entity.Supplier
	err := r.q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.CompanyID, &s.Name, &s.ContactEmail, &s.Phone, &s.Address, &s.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &s, nil
}

// LinkProduct inserta la arista proveedor-producto.
func (r *SupplierRepo) LinkProduct(ctx context.Context, link *entity.SupplierProduct) error {
	query := `
		INSERT INTO supplier_products (supplier_id, product_id, cost_price, lead_time_days)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		link.SupplierID, link.ProductID, link.CostPrice, link.LeadTimeDays,
	).Scan(&link.ID)
	if err != nil {
		if isCheckViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("link supplier product: %w", err)
	}
	return nil
}

// PrimaryByCompany devuelve, por producto de la empresa, el proveedor vinculado de menor id.
func (r *SupplierRepo) PrimaryByCompany(ctx context.Context, companyID int64) (map[int64]*entity.Supplier, error) {
	query := `
		SELECT DISTINCT ON (sp.product_id)
		       sp.product_id, s.id, s.company_id, s.name, s.contact_email, s.phone, s.address, s.created_at
		FROM supplier_products sp
		JOIN suppliers s ON s.id = sp.supplier_id
		JOIN products p ON p.id = sp.product_id
		WHERE p.company_id = $1
		ORDER BY sp.product_id, s.id`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("primary suppliers: %w", err)
	}
	defer rows.Close()

	out := make(map[int64]*entity.Supplier)
	for rows.Next() {
		var productID int64
		var s entity.Supplier
		if err := rows.Scan(
			&productID, &s.ID, &s.CompanyID, &s.Name, &s.ContactEmail, &s.Phone, &s.Address, &s.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		out[productID] = &s
	}
	return out, rows.Err()
}
