package inventory

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ceylonpepper/pepperworks-api/internal/application/dto"
	"github.com/ceylonpepper/pepperworks-api/internal/domain"
	"github.com/ceylonpepper/pepperworks-api/internal/domain/entity"
)

func kg(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func greenRecipe() []dto.RecipeLineDTO {
	return []dto.RecipeLineDTO{{
		Type:            entity.PepperTypeGreen,
		QtyPerUnitKg:    kg(2),
		WastePercentage: kg(10),
	}}
}

func TestCreateProductDeductsRecipeWithWaste(t *testing.T) {
	materials, _, history, _, stockUC := newFixture()
	materials.seed(entity.PepperTypeGreen, kg(100), kg(10))

	// 10 unidades x 2 kg + 10% de merma = 22 kg.
	resp, err := stockUC.Create(context.Background(), dto.CreateProductRequest{
		ProductName:  "Pimienta Verde Molida 100g",
		Category:     "Molida",
		Unit:         "frasco",
		CurrentStock: 10,
		ReorderLevel: 3,
		Recipe:       greenRecipe(),
	})
	require.NoError(t, err)
	assert.Equal(t, "PID-001", resp.ProductID)
	assert.Equal(t, 10, resp.CurrentStock)
	assert.Equal(t, entity.StockStatusInStock, resp.StockStatus)

	m, err := materials.GetByType(entity.PepperTypeGreen)
	require.NoError(t, err)
	assert.True(t, m.QuantityKg.Equal(kg(78)), "quedaron %s kg", m.QuantityKg)

	require.Len(t, history.entries, 1)
	entry := history.entries[0]
	assert.Equal(t, entity.ChangeTypeAdded, entry.ChangeType)
	assert.Equal(t, 0, entry.PreviousStock)
	assert.Equal(t, 10, entry.NewStock)
	assert.Equal(t, 10, entry.ChangeAmount)
}

func TestCreateProductInsufficientStockIsAllOrNothing(t *testing.T) {
	materials, products, history, _, stockUC := newFixture()
	materials.seed(entity.PepperTypeGreen, kg(100), kg(10))
	materials.seed(entity.PepperTypeBlack, kg(5), kg(10))

	// La línea de negra necesita 10 kg y hay 5: no debe descontarse nada,
	// tampoco de la verde que sí alcanzaba.
	_, err := stockUC.Create(context.Background(), dto.CreateProductRequest{
		ProductName:  "Mezcla Dos Pimientas",
		Category:     "Mezclas",
		Unit:         "frasco",
		CurrentStock: 10,
		Recipe: []dto.RecipeLineDTO{
			{Type: entity.PepperTypeGreen, QtyPerUnitKg: kg(2)},
			{Type: entity.PepperTypeBlack, QtyPerUnitKg: kg(1)},
		},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInsufficientStock))

	green, _ := materials.GetByType(entity.PepperTypeGreen)
	black, _ := materials.GetByType(entity.PepperTypeBlack)
	assert.True(t, green.QuantityKg.Equal(kg(100)))
	assert.True(t, black.QuantityKg.Equal(kg(5)))
	assert.Empty(t, products.byID)
	assert.Empty(t, history.entries)
}

func TestCreateProductUnknownMaterial(t *testing.T) {
	_, _, _, _, stockUC := newFixture()

	_, err := stockUC.Create(context.Background(), dto.CreateProductRequest{
		ProductName:  "Pimienta Verde Entera",
		Category:     "Entera",
		Unit:         "bolsa",
		CurrentStock: 1,
		Recipe:       greenRecipe(),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrMaterialNotFound))
}

func TestUpdateIncreaseDeductsDeltaOnly(t *testing.T) {
	materials, _, history, _, stockUC := newFixture()
	materials.seed(entity.PepperTypeGreen, kg(100), kg(10))

	created, err := stockUC.Create(context.Background(), dto.CreateProductRequest{
		ProductName:  "Pimienta Verde Molida 100g",
		Category:     "Molida",
		Unit:         "frasco",
		CurrentStock: 10,
		Recipe:       greenRecipe(),
	})
	require.NoError(t, err)

	// 10 -> 15: solo las 5 unidades nuevas consumen receta (11 kg).
	newStock := 15
	updated, err := stockUC.Update(context.Background(), created.ID, dto.UpdateProductRequest{
		CurrentStock: &newStock,
	})
	require.NoError(t, err)
	assert.Equal(t, 15, updated.CurrentStock)

	m, _ := materials.GetByType(entity.PepperTypeGreen)
	assert.True(t, m.QuantityKg.Equal(kg(67)), "quedaron %s kg", m.QuantityKg)

	require.Len(t, history.entries, 2)
	entry := history.entries[1]
	assert.Equal(t, entity.ChangeTypeAdded, entry.ChangeType)
	assert.Equal(t, 10, entry.PreviousStock)
	assert.Equal(t, 15, entry.NewStock)
	assert.Equal(t, 5, entry.ChangeAmount)
}

func TestUpdateDecreaseDoesNotDeduct(t *testing.T) {
	materials, _, history, _, stockUC := newFixture()
	materials.seed(entity.PepperTypeGreen, kg(100), kg(10))

	created, err := stockUC.Create(context.Background(), dto.CreateProductRequest{
		ProductName:  "Pimienta Verde Molida 100g",
		Category:     "Molida",
		Unit:         "frasco",
		CurrentStock: 10,
		Recipe:       greenRecipe(),
	})
	require.NoError(t, err)

	newStock := 4
	_, err = stockUC.Update(context.Background(), created.ID, dto.UpdateProductRequest{
		CurrentStock: &newStock,
	})
	require.NoError(t, err)

	// Corrección a la baja: el libro no se toca.
	m, _ := materials.GetByType(entity.PepperTypeGreen)
	assert.True(t, m.QuantityKg.Equal(kg(78)))

	entry := history.entries[len(history.entries)-1]
	assert.Equal(t, entity.ChangeTypeRemoved, entry.ChangeType)
	assert.Equal(t, 6, entry.ChangeAmount)
}

func TestUpdateWithoutStockChangeRecordsUpdated(t *testing.T) {
	materials, _, history, _, stockUC := newFixture()
	materials.seed(entity.PepperTypeGreen, kg(100), kg(10))

	created, err := stockUC.Create(context.Background(), dto.CreateProductRequest{
		ProductName:  "Pimienta Verde Molida 100g",
		Category:     "Molida",
		Unit:         "frasco",
		CurrentStock: 10,
		Recipe:       greenRecipe(),
	})
	require.NoError(t, err)

	price := decimal.NewFromInt(1500)
	_, err = stockUC.Update(context.Background(), created.ID, dto.UpdateProductRequest{Price: &price})
	require.NoError(t, err)

	entry := history.entries[len(history.entries)-1]
	assert.Equal(t, entity.ChangeTypeUpdated, entry.ChangeType)
	assert.Equal(t, 0, entry.ChangeAmount)
	assert.Equal(t, 10, entry.PreviousStock)
	assert.Equal(t, 10, entry.NewStock)
}

func TestDeleteLeavesRemovedHistoryEntry(t *testing.T) {
	materials, products, history, _, stockUC := newFixture()
	materials.seed(entity.PepperTypeGreen, kg(100), kg(10))

	created, err := stockUC.Create(context.Background(), dto.CreateProductRequest{
		ProductName:  "Pimienta Verde Molida 100g",
		Category:     "Molida",
		Unit:         "frasco",
		CurrentStock: 10,
		Recipe:       greenRecipe(),
	})
	require.NoError(t, err)

	require.NoError(t, stockUC.Delete(context.Background(), created.ID))

	// Alta + borrado = exactamente dos entradas; la segunda conserva el ID
	// humano y el nombre del producto borrado.
	require.Len(t, history.entries, 2)
	entry := history.entries[1]
	assert.Equal(t, entity.ChangeTypeRemoved, entry.ChangeType)
	assert.Equal(t, "PID-001", entry.ProductID)
	assert.Equal(t, "Pimienta Verde Molida 100g", entry.ProductName)
	assert.Equal(t, 10, entry.PreviousStock)
	assert.Equal(t, 0, entry.NewStock)
	assert.Empty(t, products.byID)
}

func TestListAvailableFiltersAndPaginates(t *testing.T) {
	materials, _, _, _, stockUC := newFixture()
	materials.seed(entity.PepperTypeGreen, kg(1000), kg(10))

	for _, name := range []string{"Verde Molida", "Verde Entera", "Verde Premium"} {
		_, err := stockUC.Create(context.Background(), dto.CreateProductRequest{
			ProductName:  name,
			Category:     "Molida",
			Unit:         "frasco",
			CurrentStock: 10,
			SafetyStock:  2,
			Recipe:       greenRecipe(),
		})
		require.NoError(t, err)
	}
	// Sin disponibilidad: stock igual al stock de seguridad.
	_, err := stockUC.Create(context.Background(), dto.CreateProductRequest{
		ProductName:  "Verde Agotada",
		Category:     "Molida",
		Unit:         "frasco",
		CurrentStock: 2,
		SafetyStock:  2,
		Recipe:       greenRecipe(),
	})
	require.NoError(t, err)

	page, err := stockUC.ListAvailable(context.Background(), dto.AvailableQuery{
		PageRequest: dto.PageRequest{Page: 1, Limit: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, page.Total)
	assert.Equal(t, 2, page.TotalPages)
	assert.Len(t, page.Products, 2)
	for _, p := range page.Products {
		assert.Greater(t, p.AvailableStock, 0)
	}
}

func TestListAvailableSearchIgnoraTildes(t *testing.T) {
	materials, _, _, _, stockUC := newFixture()
	materials.seed(entity.PepperTypeGreen, kg(1000), kg(10))

	_, err := stockUC.Create(context.Background(), dto.CreateProductRequest{
		ProductName:  "Pimienta Orgánica 50g",
		Category:     "Molida",
		Unit:         "frasco",
		CurrentStock: 10,
		SafetyStock:  2,
		Recipe:       greenRecipe(),
	})
	require.NoError(t, err)

	// El nombre almacenado lleva tilde; la búsqueda debe encontrarlo tanto
	// con el término acentuado como sin acentuar.
	for _, term := range []string{"Orgánica", "organica", "ORGANICA"} {
		page, err := stockUC.ListAvailable(context.Background(), dto.AvailableQuery{
			Search:      term,
			PageRequest: dto.PageRequest{Page: 1, Limit: 10},
		})
		require.NoError(t, err)
		require.Equal(t, 1, page.Total, "término %q", term)
		assert.Equal(t, "Pimienta Orgánica 50g", page.Products[0].ProductName)
	}
}

func TestLedgerCreateAndStatusDerivation(t *testing.T) {
	_, _, _, ledger, _ := newFixture()

	resp, err := ledger.Create(context.Background(), dto.CreateRawMaterialRequest{
		Type:           entity.PepperTypeGreen,
		QuantityKg:     kg(100),
		ReorderLevelKg: kg(10),
	})
	require.NoError(t, err)
	assert.Equal(t, "RM-001", resp.RawMaterialID)
	assert.Equal(t, entity.StockStatusInStock, resp.LowStockStatus)

	// Cantidad igual al umbral ya es LowStock.
	threshold := kg(10)
	updated, err := ledger.Update(context.Background(), resp.ID, dto.UpdateRawMaterialRequest{
		QuantityKg: &threshold,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StockStatusLow, updated.LowStockStatus)
}

func TestLedgerRejectsDuplicateType(t *testing.T) {
	_, _, _, ledger, _ := newFixture()

	_, err := ledger.Create(context.Background(), dto.CreateRawMaterialRequest{
		Type:       entity.PepperTypeGreen,
		QuantityKg: kg(50),
	})
	require.NoError(t, err)

	_, err = ledger.Create(context.Background(), dto.CreateRawMaterialRequest{
		Type:       entity.PepperTypeGreen,
		QuantityKg: kg(20),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDuplicate))
}

func TestLedgerRejectsUnknownType(t *testing.T) {
	_, _, _, ledger, _ := newFixture()

	_, err := ledger.Create(context.Background(), dto.CreateRawMaterialRequest{
		Type: "White Pepper",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestCreditLedgerMaterializesMissingRow(t *testing.T) {
	materials := newFakeMaterialRepo()
	sequences := newFakeSeqRepo()

	require.NoError(t, CreditLedger(materials, sequences, entity.PepperTypeBlack, kg(60)))

	m, err := materials.GetByType(entity.PepperTypeBlack)
	require.NoError(t, err)
	assert.Equal(t, "RM-001", m.RawMaterialID)
	assert.True(t, m.QuantityKg.Equal(kg(60)))
	assert.True(t, m.ReorderLevelKg.Equal(kg(10)))
	assert.Equal(t, entity.StockStatusInStock, m.LowStockStatus)

	// Segundo crédito sobre la fila existente: suma, no duplica.
	require.NoError(t, CreditLedger(materials, sequences, entity.PepperTypeBlack, kg(15)))
	m, _ = materials.GetByType(entity.PepperTypeBlack)
	assert.True(t, m.QuantityKg.Equal(kg(75)))
}
