package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de pimienta que maneja la planta. Son también los tipos válidos
// en recetas de producto y en órdenes de compra a agricultores.
const (
	PepperTypeGreen = "Green Pepper"
	PepperTypeBlack = "Black Pepper"
)

// Estados de stock derivados (nunca se aceptan como input).
const (
	StockStatusInStock = "InStock"
	StockStatusLow     = "LowStock"
)

// RawMaterial es una fila del libro de materia prima: cantidad actual y
// umbral de reorden por tipo de pimienta. LowStockStatus se recalcula en
// cada mutación; ver stock.DeriveStatus.
type RawMaterial struct {
	ID             string          // surrogate (UUID)
	RawMaterialID  string          // humano: RM-001
	Type           string          // PepperTypeGreen | PepperTypeBlack
	QuantityKg     decimal.Decimal // >= 0
	ReorderLevelKg decimal.Decimal // >= 0
	LowStockStatus string          // derivado
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsValidPepperType valida un tipo de pimienta.
func IsValidPepperType(t string) bool {
	return t == PepperTypeGreen || t == PepperTypeBlack
}
