package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ceylonpepper/pepperworks-api/internal/application/inventory"
	"github.com/ceylonpepper/pepperworks-api/internal/application/procurement"
)

// Ensure TxRunner implements inventory.TxRunner and procurement.TxRunner.
var _ inventory.TxRunner = (*TxRunner)(nil)
var _ procurement.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunInventory inicia una transacción con los repos del motor de inventario
// y hace Commit o Rollback según el resultado de fn.
func (r *TxRunner) RunInventory(ctx context.Context, fn func(repos inventory.TxRepos) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	repos := inventory.TxRepos{
		Materials: NewRawMaterialRepository(tx),
		Products:  NewProductRepository(tx),
		History:   NewInventoryHistoryRepository(tx),
		Sequences: NewCounterRepository(tx),
	}
	if err := fn(repos); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunProcurement inicia una transacción con los repos del flujo de compras.
func (r *TxRunner) RunProcurement(ctx context.Context, fn func(repos procurement.TxRepos) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	repos := procurement.TxRepos{
		Orders:    NewRawMaterialOrderRepository(tx),
		Materials: NewRawMaterialRepository(tx),
		Sequences: NewCounterRepository(tx),
	}
	if err := fn(repos); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
