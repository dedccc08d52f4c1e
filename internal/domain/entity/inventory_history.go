package entity

import "time"

// Tipos de cambio del historial de inventario.
const (
	ChangeTypeAdded   = "Added"
	ChangeTypeRemoved = "Removed"
	ChangeTypeSold    = "Sold" // reservado para el flujo de ventas
	ChangeTypeUpdated = "Updated"
)

// InventoryHistoryEntry es una entrada append-only del historial de stock de
// productos. Captura la foto antes/después de cada mutación; se escribe en la
// misma transacción que la mutación y nunca se modifica.
// ProductID y ProductName se copian para que la auditoría sobreviva al borrado
// del producto.
type InventoryHistoryEntry struct {
	ID            string // surrogate (UUID)
	ProductRef    string // UUID del producto en el momento del cambio
	ProductID     string // humano: PID-001
	ProductName   string
	ChangeType    string // Added | Removed | Sold | Updated
	ChangeAmount  int    // |NewStock - PreviousStock|
	PreviousStock int
	NewStock      int
	SafetyStock   int    // al momento del cambio
	ReorderLevel  int    // al momento del cambio
	StockStatus   string // al momento del cambio
	CreatedAt     time.Time
}
