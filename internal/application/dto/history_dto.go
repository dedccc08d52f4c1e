package dto

import "time"

// HistoryEntryResponse entrada del historial de inventario.
type HistoryEntryResponse struct {
	ID            string    `json:"id"`
	ProductRef    string    `json:"inventoryId"`
	ProductID     string    `json:"productId"`
	ProductName   string    `json:"productName"`
	ChangeType    string    `json:"changeType"`
	ChangeAmount  int       `json:"changeAmount"`
	PreviousStock int       `json:"previousStock"`
	NewStock      int       `json:"newStock"`
	SafetyStock   int       `json:"safetyStock"`
	ReorderLevel  int       `json:"reorderLevel"`
	StockStatus   string    `json:"stockStatus"`
	CreatedAt     time.Time `json:"createdAt"`
}
