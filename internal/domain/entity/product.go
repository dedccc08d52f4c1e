package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados comerciales de un producto.
const (
	ProductStatusActive   = "Active"
	ProductStatusInactive = "Inactive"
)

// RecipeLine es una línea de la receta del producto: cuánta materia prima
// consume una unidad producida, más el porcentaje de merma del proceso.
// La receta pertenece al producto (semántica de valor, sin identidad propia).
type RecipeLine struct {
	Type            string          `json:"type"`
	QtyPerUnitKg    decimal.Decimal `json:"qtyPerUnitKg"`
	WastePercentage decimal.Decimal `json:"wastePercentage"`
}

// Product es un producto terminado (pimienta procesada y empacada).
// CurrentStock solo sube por la vía del motor de deducción de receta;
// StockStatus es derivado y se recalcula antes de cada persistencia.
type Product struct {
	ID           string // surrogate (UUID)
	ProductID    string // humano: PID-001
	Name         string
	Description  string
	Category     string
	Size         string
	Unit         string
	Price        decimal.Decimal
	CurrentStock int
	SafetyStock  int
	ReorderLevel int
	StockStatus  string // derivado
	Status       string // Active | Inactive
	ImageURL     string
	ExpiryDate   *time.Time
	Recipe       []RecipeLine
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
