package inventory

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ceylonpepper/pepperworks-api/internal/application/dto"
	"github.com/ceylonpepper/pepperworks-api/internal/application/sequence"
	"github.com/ceylonpepper/pepperworks-api/internal/domain"
	"github.com/ceylonpepper/pepperworks-api/internal/domain/entity"
	"github.com/ceylonpepper/pepperworks-api/internal/domain/repository"
	"github.com/ceylonpepper/pepperworks-api/internal/domain/stock"
)

// LedgerUseCase expone las operaciones del libro de materia prima.
// Las lecturas van directo al repositorio; las mutaciones pasan por el
// TxRunner para generar el ID humano y derivar el estado en la misma
// transacción.
type LedgerUseCase struct {
	materials repository.RawMaterialRepository
	tx        TxRunner
}

// NewLedgerUseCase crea el caso de uso del libro de materia prima.
func NewLedgerUseCase(materials repository.RawMaterialRepository, tx TxRunner) *LedgerUseCase {
	return &LedgerUseCase{materials: materials, tx: tx}
}

// Create da de alta una fila del libro para un tipo de pimienta. El tipo es
// único: un alta repetida devuelve ErrDuplicate.
func (uc *LedgerUseCase) Create(ctx context.Context, req dto.CreateRawMaterialRequest) (*dto.RawMaterialResponse, error) {
	if !entity.IsValidPepperType(req.Type) {
		return nil, fmt.Errorf("%w: tipo de pimienta desconocido %q", domain.ErrInvalidInput, req.Type)
	}
	if req.QuantityKg.IsNegative() || req.ReorderLevelKg.IsNegative() {
		return nil, fmt.Errorf("%w: cantidades negativas", domain.ErrInvalidInput)
	}

	var created *entity.RawMaterial
	err := uc.tx.RunInventory(ctx, func(r TxRepos) error {
		if _, err := r.Materials.GetByType(req.Type); err == nil {
			return fmt.Errorf("%w: ya existe el libro de %s", domain.ErrDuplicate, req.Type)
		}
		rmID, err := sequence.NextRawMaterialID(r.Sequences)
		if err != nil {
			return err
		}
		m := &entity.RawMaterial{
			ID:             uuid.NewString(),
			RawMaterialID:  rmID,
			Type:           req.Type,
			QuantityKg:     req.QuantityKg,
			ReorderLevelKg: req.ReorderLevelKg,
			LowStockStatus: stock.DeriveStatus(req.QuantityKg, req.ReorderLevelKg),
		}
		if err := r.Materials.Create(m); err != nil {
			return err
		}
		created = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	resp := toRawMaterialResponse(created)
	return &resp, nil
}

// GetByID devuelve una fila del libro por su UUID.
func (uc *LedgerUseCase) GetByID(ctx context.Context, id string) (*dto.RawMaterialResponse, error) {
	m, err := uc.materials.GetByID(id)
	if err != nil {
		return nil, err
	}
	resp := toRawMaterialResponse(m)
	return &resp, nil
}

// List devuelve el libro completo.
func (uc *LedgerUseCase) List(ctx context.Context) ([]dto.RawMaterialResponse, error) {
	ms, err := uc.materials.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.RawMaterialResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, toRawMaterialResponse(m))
	}
	return out, nil
}

// ListLowStock devuelve solo las filas en LowStock.
func (uc *LedgerUseCase) ListLowStock(ctx context.Context) ([]dto.RawMaterialResponse, error) {
	ms, err := uc.materials.ListLowStock()
	if err != nil {
		return nil, err
	}
	out := make([]dto.RawMaterialResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, toRawMaterialResponse(m))
	}
	return out, nil
}

// Update ajusta cantidad y/o umbral de una fila. El estado derivado se
// recalcula siempre desde los valores nuevos; nunca se acepta como input.
func (uc *LedgerUseCase) Update(ctx context.Context, id string, req dto.UpdateRawMaterialRequest) (*dto.RawMaterialResponse, error) {
	var updated *entity.RawMaterial
	err := uc.tx.RunInventory(ctx, func(r TxRepos) error {
		m, err := r.Materials.GetByID(id)
		if err != nil {
			return err
		}
		if req.QuantityKg != nil {
			if req.QuantityKg.IsNegative() {
				return fmt.Errorf("%w: la cantidad no puede ser negativa", domain.ErrInvalidInput)
			}
			m.QuantityKg = *req.QuantityKg
		}
		if req.ReorderLevelKg != nil {
			if req.ReorderLevelKg.IsNegative() {
				return fmt.Errorf("%w: el umbral no puede ser negativo", domain.ErrInvalidInput)
			}
			m.ReorderLevelKg = *req.ReorderLevelKg
		}
		m.LowStockStatus = stock.DeriveStatus(m.QuantityKg, m.ReorderLevelKg)
		if err := r.Materials.Update(m); err != nil {
			return err
		}
		updated = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	resp := toRawMaterialResponse(updated)
	return &resp, nil
}

func toRawMaterialResponse(m *entity.RawMaterial) dto.RawMaterialResponse {
	return dto.RawMaterialResponse{
		ID:             m.ID,
		RawMaterialID:  m.RawMaterialID,
		Type:           m.Type,
		QuantityKg:     m.QuantityKg,
		ReorderLevelKg: m.ReorderLevelKg,
		LowStockStatus: m.LowStockStatus,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
