package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/ceylonpepper/pepperworks-api/internal/domain/entity"
	"github.com/ceylonpepper/pepperworks-api/internal/domain/repository"
)

var _ repository.InventoryHistoryRepository = (*InventoryHistoryRepo)(nil)

// InventoryHistoryRepo implementación append-only del historial de inventario.
type InventoryHistoryRepo struct {
	q Querier
}

// NewInventoryHistoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryHistoryRepository(q Querier) *InventoryHistoryRepo {
	return &InventoryHistoryRepo{q: q}
}

// Create inserta una entrada de historial.
func (r *InventoryHistoryRepo) Create(e *entity.InventoryHistoryEntry) error {
	query := `
		INSERT INTO inventory_history (id, product_ref, product_id, product_name, change_type,
			change_amount, previous_stock, new_stock, safety_stock, reorder_level, stock_status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, now())`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.ProductRef, e.ProductID, e.ProductName, e.ChangeType,
		e.ChangeAmount, e.PreviousStock, e.NewStock, e.SafetyStock, e.ReorderLevel, e.StockStatus,
	)
	if err != nil {
		return fmt.Errorf("insert inventory history: %w", err)
	}
	return nil
}

// ListSince devuelve las entradas desde la fecha dada, más recientes primero.
func (r *InventoryHistoryRepo) ListSince(since time.Time) ([]*entity.InventoryHistoryEntry, error) {
	query := `
		SELECT id, product_ref, product_id, product_name, change_type,
			change_amount, previous_stock, new_stock, safety_stock, reorder_level, stock_status, created_at
		FROM inventory_history
		WHERE created_at >= $1
		ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, since)
	if err != nil {
		return nil, fmt.Errorf("list inventory history: %w", err)
	}
	defer rows.Close()

	out := make([]*entity.InventoryHistoryEntry, 0)
	for rows.Next() {
		var e entity.InventoryHistoryEntry
		if err := rows.Scan(
			&e.ID, &e.ProductRef, &e.ProductID, &e.ProductName, &e.ChangeType,
			&e.ChangeAmount, &e.PreviousStock, &e.NewStock, &e.SafetyStock, &e.ReorderLevel,
			&e.StockStatus, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan inventory history: %w", err)
		}
		out = append(out, &e)
	}
	return out, rows.Err()
}
