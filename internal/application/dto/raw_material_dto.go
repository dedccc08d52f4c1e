package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateRawMaterialRequest alta de una fila del libro de materia prima.
// El tipo se valida contra los tipos de pimienta del dominio (tienen espacios,
// así que no entran en un oneof de validator).
type CreateRawMaterialRequest struct {
	Type           string          `json:"type" validate:"required"`
	QuantityKg     decimal.Decimal `json:"quantityKg"`
	ReorderLevelKg decimal.Decimal `json:"reorderLevelKg"`
}

// UpdateRawMaterialRequest actualización parcial; los campos nil no cambian.
// LowStockStatus nunca es input: se deriva de la cantidad nueva.
type UpdateRawMaterialRequest struct {
	QuantityKg     *decimal.Decimal `json:"quantityKg"`
	ReorderLevelKg *decimal.Decimal `json:"reorderLevelKg"`
}

// RawMaterialResponse representación pública de una fila del libro.
type RawMaterialResponse struct {
	ID             string          `json:"id"`
	RawMaterialID  string          `json:"rawMaterialId"`
	Type           string          `json:"type"`
	QuantityKg     decimal.Decimal `json:"quantityKg"`
	ReorderLevelKg decimal.Decimal `json:"reorderLevelKg"`
	LowStockStatus string          `json:"lowStockStatus"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}
