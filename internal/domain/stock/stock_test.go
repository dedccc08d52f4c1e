package stock_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ceylonpepper/pepperworks-api/internal/domain/entity"
	"github.com/ceylonpepper/pepperworks-api/internal/domain/stock"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

// El estado es función pura de cantidad vs umbral: en el límite exacto
// (cantidad == umbral) ya es LowStock.
func TestDeriveStatus_Limites(t *testing.T) {
	cases := []struct {
		name     string
		qty      string
		reorder  string
		expected string
	}{
		{"muy por encima del umbral", "100", "20", entity.StockStatusInStock},
		{"justo por encima", "20.01", "20", entity.StockStatusInStock},
		{"exactamente en el umbral", "20", "20", entity.StockStatusLow},
		{"por debajo", "19.99", "20", entity.StockStatusLow},
		{"cero con umbral cero", "0", "0", entity.StockStatusLow},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, stock.DeriveStatus(d(tc.qty), d(tc.reorder)))
		})
	}
}

func TestDeriveUnitStatus_Limites(t *testing.T) {
	assert.Equal(t, entity.StockStatusInStock, stock.DeriveUnitStatus(21, 20))
	assert.Equal(t, entity.StockStatusLow, stock.DeriveUnitStatus(20, 20))
	assert.Equal(t, entity.StockStatusLow, stock.DeriveUnitStatus(0, 20))
}

// Disponibilidad: currentStock - safetyStock con piso en cero.
func TestAvailability_PisoEnCero(t *testing.T) {
	assert.Equal(t, 7, stock.Availability(10, 3))
	assert.Equal(t, 0, stock.Availability(3, 3))
	assert.Equal(t, 0, stock.Availability(2, 5), "safety stock mayor que el actual no puede dar negativo")
	assert.Equal(t, 10, stock.Availability(10, 0))
}

// Vector exacto del cálculo de receta: 10 unidades con 2 kg/unidad y 10% de
// merma deben consumir 20 kg requeridos + 2 kg de merma = 22 kg totales.
func TestRecipeRequirements_VectorExacto(t *testing.T) {
	recipe := []entity.RecipeLine{
		{Type: entity.PepperTypeGreen, QtyPerUnitKg: d("2"), WastePercentage: d("10")},
	}

	reqs := stock.RecipeRequirements(recipe, 10)
	require.Len(t, reqs, 1)

	assert.Equal(t, entity.PepperTypeGreen, reqs[0].Type)
	assert.True(t, reqs[0].RequiredKg.Equal(d("20")), "required = 10*2, fue %s", reqs[0].RequiredKg)
	assert.True(t, reqs[0].WasteKg.Equal(d("2")), "waste = 20*10/100, fue %s", reqs[0].WasteKg)
	assert.True(t, reqs[0].TotalKg.Equal(d("22")), "total = 20+2, fue %s", reqs[0].TotalKg)
}

// Las líneas se calculan en el orden de la receta y con decimales exactos.
func TestRecipeRequirements_VariasLineasEnOrden(t *testing.T) {
	recipe := []entity.RecipeLine{
		{Type: entity.PepperTypeGreen, QtyPerUnitKg: d("0.5"), WastePercentage: d("5")},
		{Type: entity.PepperTypeBlack, QtyPerUnitKg: d("1.25"), WastePercentage: d("0")},
	}

	reqs := stock.RecipeRequirements(recipe, 4)
	require.Len(t, reqs, 2)

	assert.Equal(t, entity.PepperTypeGreen, reqs[0].Type)
	assert.True(t, reqs[0].TotalKg.Equal(d("2.1")), "2 + 5%% = 2.1, fue %s", reqs[0].TotalKg)

	assert.Equal(t, entity.PepperTypeBlack, reqs[1].Type)
	assert.True(t, reqs[1].TotalKg.Equal(d("5")), "sin merma queda igual, fue %s", reqs[1].TotalKg)
}

func TestRecipeRequirements_RecetaVacia(t *testing.T) {
	assert.Empty(t, stock.RecipeRequirements(nil, 10))
}
