// Package stock contiene las derivaciones puras del motor de inventario:
// estado de stock, disponibilidad de venta y el cálculo de consumo de receta.
// Toda ruta de mutación debe pasar por estas funciones; el estado derivado
// nunca se acepta como input.
package stock

import (
	"github.com/shopspring/decimal"

	"github.com/ceylonpepper/pepperworks-api/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// DeriveStatus deriva el estado del libro de materia prima:
// quantity <= reorderLevel => LowStock.
func DeriveStatus(quantityKg, reorderLevelKg decimal.Decimal) string {
	if quantityKg.LessThanOrEqual(reorderLevelKg) {
		return entity.StockStatusLow
	}
	return entity.StockStatusInStock
}

// DeriveUnitStatus es la misma derivación para stock de producto en unidades.
func DeriveUnitStatus(currentStock, reorderLevel int) string {
	if currentStock <= reorderLevel {
		return entity.StockStatusLow
	}
	return entity.StockStatusInStock
}

// Availability calcula las unidades disponibles para venta:
// max(currentStock - safetyStock, 0).
func Availability(currentStock, safetyStock int) int {
	if avail := currentStock - safetyStock; avail > 0 {
		return avail
	}
	return 0
}

// Requirement es el consumo calculado de una línea de receta para una corrida
// de producción.
type Requirement struct {
	Type       string
	RequiredKg decimal.Decimal // units * qtyPerUnitKg
	WasteKg    decimal.Decimal // RequiredKg * wastePercentage / 100
	TotalKg    decimal.Decimal // RequiredKg + WasteKg
}

// RecipeRequirements calcula, línea por línea y en el orden de la receta,
// la materia prima a descontar (incluida la merma) para producir units.
func RecipeRequirements(recipe []entity.RecipeLine, units int) []Requirement {
	reqs := make([]Requirement, 0, len(recipe))
	unitsDec := decimal.NewFromInt(int64(units))
	for _, line := range recipe {
		required := unitsDec.Mul(line.QtyPerUnitKg)
		waste := required.Mul(line.WastePercentage).Div(hundred)
		reqs = append(reqs, Requirement{
			Type:       line.Type,
			RequiredKg: required,
			WasteKg:    waste,
			TotalKg:    required.Add(waste),
		})
	}
	return reqs
}
