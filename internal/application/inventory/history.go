package inventory

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/ceylonpepper/pepperworks-api/internal/domain/entity"
	"github.com/ceylonpepper/pepperworks-api/internal/domain/repository"
)

// inferChangeType deduce el tipo de cambio a partir del delta de stock.
// Un forced no vacío gana siempre (lo usan alta y borrado).
func inferChangeType(previous, current int, forced string) string {
	if forced != "" {
		return forced
	}
	switch {
	case current > previous:
		return entity.ChangeTypeAdded
	case current < previous:
		return entity.ChangeTypeRemoved
	default:
		return entity.ChangeTypeUpdated
	}
}

// recordChange escribe la entrada de historial de una mutación de producto.
// Se llama dentro de la misma transacción que la mutación; p trae ya el
// estado posterior. previousStock es la foto previa.
func recordChange(history repository.InventoryHistoryRepository, p *entity.Product, previousStock int, forced string) error {
	delta := p.CurrentStock - previousStock
	if delta < 0 {
		delta = -delta
	}
	entry := &entity.InventoryHistoryEntry{
		ID:            uuid.NewString(),
		ProductRef:    p.ID,
		ProductID:     p.ProductID,
		ProductName:   p.Name,
		ChangeType:    inferChangeType(previousStock, p.CurrentStock, forced),
		ChangeAmount:  delta,
		PreviousStock: previousStock,
		NewStock:      p.CurrentStock,
		SafetyStock:   p.SafetyStock,
		ReorderLevel:  p.ReorderLevel,
		StockStatus:   p.StockStatus,
	}
	if err := history.Create(entry); err != nil {
		return fmt.Errorf("registrar historial de %s: %w", p.ProductID, err)
	}
	return nil
}
