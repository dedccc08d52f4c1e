package repository

import (
	"time"

	"github.com/ceylonpepper/pepperworks-api/internal/domain/entity"
)

// InventoryHistoryRepository define el puerto del historial de inventario.
// Append-only: no hay Update ni Delete.
type InventoryHistoryRepository interface {
	Create(e *entity.InventoryHistoryEntry) error
	// ListSince lista entradas desde la fecha dada, más recientes primero.
	ListSince(since time.Time) ([]*entity.InventoryHistoryEntry, error)
}
