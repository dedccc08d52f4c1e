package inventory

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ceylonpepper/pepperworks-api/internal/application/sequence"
	"github.com/ceylonpepper/pepperworks-api/internal/domain"
	"github.com/ceylonpepper/pepperworks-api/internal/domain/entity"
	"github.com/ceylonpepper/pepperworks-api/internal/domain/repository"
	"github.com/ceylonpepper/pepperworks-api/internal/domain/stock"
)

// Umbral de reorden por defecto cuando una entrega materializa una fila del
// libro que todavía no existe.
var defaultReorderLevelKg = decimal.NewFromInt(10)

// deductRecipe descuenta del libro de materia prima el consumo completo de
// producir units según la receta. Todo o nada, en dos pasadas dentro de la
// transacción en curso:
//
//  1. bloquea cada fila (FOR UPDATE, en el orden de la receta) y verifica
//     que alcance para el total con merma;
//  2. solo si todas alcanzan, aplica los débitos condicionales.
//
// Si cualquier línea no alcanza, devuelve ErrInsufficientStock y no se
// descuenta nada.
func deductRecipe(materials repository.RawMaterialRepository, recipe []entity.RecipeLine, units int) error {
	if units <= 0 || len(recipe) == 0 {
		return nil
	}
	reqs := stock.RecipeRequirements(recipe, units)

	// Primera pasada: bloquear y verificar.
	for _, req := range reqs {
		m, err := materials.GetByTypeForUpdate(req.Type)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return fmt.Errorf("%w: %s", domain.ErrMaterialNotFound, req.Type)
			}
			return fmt.Errorf("bloquear %s: %w", req.Type, err)
		}
		if m.QuantityKg.LessThan(req.TotalKg) {
			return fmt.Errorf("%w: %s requiere %s kg, hay %s kg",
				domain.ErrInsufficientStock, req.Type, req.TotalKg, m.QuantityKg)
		}
	}

	// Segunda pasada: debitar. El débito sigue siendo condicional; con las
	// filas bloqueadas un false aquí es una condición de carrera imposible,
	// pero si ocurre se aborta la transacción completa.
	for _, req := range reqs {
		ok, err := materials.Debit(req.Type, req.TotalKg)
		if err != nil {
			return fmt.Errorf("debitar %s: %w", req.Type, err)
		}
		if !ok {
			return fmt.Errorf("%w: %s", domain.ErrInsufficientStock, req.Type)
		}
	}
	return nil
}

// creditLedger acredita kg al libro de materia prima dentro de la transacción
// en curso. Si la fila del tipo no existe todavía, la crea con el umbral de
// reorden por defecto; el estado derivado se recalcula en ambos caminos.
func creditLedger(materials repository.RawMaterialRepository, sequences repository.SequenceRepository, pepperType string, amountKg decimal.Decimal) error {
	_, err := materials.GetByTypeForUpdate(pepperType)
	switch {
	case err == nil:
		if err := materials.Credit(pepperType, amountKg); err != nil {
			return fmt.Errorf("acreditar %s: %w", pepperType, err)
		}
		return nil
	case errors.Is(err, domain.ErrNotFound):
		rmID, err := sequence.NextRawMaterialID(sequences)
		if err != nil {
			return err
		}
		m := &entity.RawMaterial{
			ID:             uuid.NewString(),
			RawMaterialID:  rmID,
			Type:           pepperType,
			QuantityKg:     amountKg,
			ReorderLevelKg: defaultReorderLevelKg,
			LowStockStatus: stock.DeriveStatus(amountKg, defaultReorderLevelKg),
		}
		if err := materials.Create(m); err != nil {
			return fmt.Errorf("crear fila del libro %s: %w", pepperType, err)
		}
		return nil
	default:
		return fmt.Errorf("bloquear %s: %w", pepperType, err)
	}
}

// CreditLedger es la entrada pública para el flujo de entregas de compras.
func CreditLedger(materials repository.RawMaterialRepository, sequences repository.SequenceRepository, pepperType string, amountKg decimal.Decimal) error {
	return creditLedger(materials, sequences, pepperType, amountKg)
}
