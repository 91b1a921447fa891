package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/inventory-alerts-api/internal/application/inventory"
)

// Ensure TxRunner implements inventory.TxRunner.
var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción de escritura (aislamiento por defecto), ejecuta fn con repos
// atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(repos inventory.Repositories) error) error {
	return r.run(ctx, pgx.TxOptions{}, fn)
}

// ReadOnly ejecuta fn en una transacción REPEATABLE READ READ ONLY: todas las lecturas ven
// la misma foto de la base.
func (r *TxRunner) ReadOnly(ctx context.Context, fn func(repos inventory.Repositories) error) error {
	return r.run(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}, fn)
}

func (r *TxRunner) run(ctx context.Context, opts pgx.TxOptions, fn func(repos inventory.Repositories) error) error {
	tx, err := r.pool.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewRepositories(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// NewRepositories ata todos los repositorios al mismo Querier (pool o tx).
func NewRepositories(q Querier) inventory.Repositories {
	return inventory.Repositories{
		Companies:  NewCompanyRepository(q),
		Warehouses: NewWarehouseRepository(q),
		Products:   NewProductRepository(q),
		Inventory:  NewInventoryRepository(q),
		Logs:       NewInventoryLogRepository(q),
		Suppliers:  NewSupplierRepository(q),
		Bundles:    NewBundleRepository(q),
	}
}
