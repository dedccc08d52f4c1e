package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ceylonpepper/pepperworks-api/internal/application/dto"
	"github.com/ceylonpepper/pepperworks-api/internal/application/sequence"
	"github.com/ceylonpepper/pepperworks-api/internal/domain"
	"github.com/ceylonpepper/pepperworks-api/internal/domain/entity"
	"github.com/ceylonpepper/pepperworks-api/internal/domain/repository"
	"github.com/ceylonpepper/pepperworks-api/internal/domain/stock"
	"github.com/ceylonpepper/pepperworks-api/pkg/textutil"
)

// ProductStockUseCase expone el motor de stock de producto terminado.
// Toda mutación corre en transacción: deducción de receta, estado derivado,
// persistencia y entrada de historial se confirman juntos.
type ProductStockUseCase struct {
	products repository.ProductRepository
	history  repository.InventoryHistoryRepository
	tx       TxRunner
}

// NewProductStockUseCase crea el caso de uso de stock de productos.
func NewProductStockUseCase(products repository.ProductRepository, history repository.InventoryHistoryRepository, tx TxRunner) *ProductStockUseCase {
	return &ProductStockUseCase{products: products, history: history, tx: tx}
}

// validateRecipe valida las líneas de receta del request.
func validateRecipe(lines []dto.RecipeLineDTO) error {
	if len(lines) == 0 {
		return fmt.Errorf("%w: la receta necesita al menos una línea", domain.ErrInvalidInput)
	}
	for _, l := range lines {
		if !entity.IsValidPepperType(l.Type) {
			return fmt.Errorf("%w: tipo de pimienta desconocido %q", domain.ErrInvalidInput, l.Type)
		}
		if !l.QtyPerUnitKg.IsPositive() {
			return fmt.Errorf("%w: qtyPerUnitKg debe ser mayor a cero (%s)", domain.ErrInvalidInput, l.Type)
		}
		if l.WastePercentage.IsNegative() {
			return fmt.Errorf("%w: wastePercentage no puede ser negativo (%s)", domain.ErrInvalidInput, l.Type)
		}
	}
	return nil
}

func toRecipe(lines []dto.RecipeLineDTO) []entity.RecipeLine {
	recipe := make([]entity.RecipeLine, 0, len(lines))
	for _, l := range lines {
		recipe = append(recipe, entity.RecipeLine{
			Type:            l.Type,
			QtyPerUnitKg:    l.QtyPerUnitKg,
			WastePercentage: l.WastePercentage,
		})
	}
	return recipe
}

// Create da de alta un producto. Si el stock inicial es mayor a cero, la
// receta se deduce del libro de materia prima en la misma transacción: si no
// alcanza, no se crea producto ni entrada de historial.
func (uc *ProductStockUseCase) Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := validateRecipe(req.Recipe); err != nil {
		return nil, err
	}
	if req.CurrentStock < 0 || req.SafetyStock < 0 || req.ReorderLevel < 0 {
		return nil, fmt.Errorf("%w: los niveles de stock no pueden ser negativos", domain.ErrInvalidInput)
	}
	status := req.Status
	if status == "" {
		status = entity.ProductStatusActive
	}
	if status != entity.ProductStatusActive && status != entity.ProductStatusInactive {
		return nil, fmt.Errorf("%w: estado desconocido %q", domain.ErrInvalidInput, status)
	}

	var created *entity.Product
	err := uc.tx.RunInventory(ctx, func(r TxRepos) error {
		recipe := toRecipe(req.Recipe)
		if err := deductRecipe(r.Materials, recipe, req.CurrentStock); err != nil {
			return err
		}
		pid, err := sequence.NextProductID(r.Sequences)
		if err != nil {
			return err
		}
		p := &entity.Product{
			ID:           uuid.NewString(),
			ProductID:    pid,
			Name:         req.ProductName,
			Description:  req.Description,
			Category:     req.Category,
			Size:         req.Size,
			Unit:         req.Unit,
			Price:        req.Price,
			CurrentStock: req.CurrentStock,
			SafetyStock:  req.SafetyStock,
			ReorderLevel: req.ReorderLevel,
			StockStatus:  stock.DeriveUnitStatus(req.CurrentStock, req.ReorderLevel),
			Status:       status,
			ImageURL:     req.ImageURL,
			ExpiryDate:   req.ExpiryDate,
			Recipe:       recipe,
		}
		if err := r.Products.Create(p); err != nil {
			return err
		}
		if err := recordChange(r.History, p, 0, entity.ChangeTypeAdded); err != nil {
			return err
		}
		created = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	resp := toProductResponse(created)
	return &resp, nil
}

// GetByID devuelve un producto por su UUID.
func (uc *ProductStockUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	p, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	resp := toProductResponse(p)
	return &resp, nil
}

// List devuelve todos los productos (vista de administración).
func (uc *ProductStockUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	ps, err := uc.products.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// ListAvailable devuelve la página de productos Active con disponibilidad
// mayor a cero, con filtros por categoría y búsqueda insensible a acentos.
func (uc *ProductStockUseCase) ListAvailable(ctx context.Context, q dto.AvailableQuery) (*dto.AvailableProductsResponse, error) {
	q.Defaults()
	f := repository.AvailableFilter{
		Category: q.Category,
		Search:   textutil.NormalizeSearch(q.Search),
		Limit:    q.Limit,
		Offset:   q.Offset(),
	}
	ps, total, err := uc.products.ListAvailable(f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(ps))
	for _, p := range ps {
		items = append(items, toProductResponse(p))
	}
	totalPages := 0
	if total > 0 {
		totalPages = (total + q.Limit - 1) / q.Limit
	}
	return &dto.AvailableProductsResponse{
		Products:   items,
		Total:      total,
		Page:       q.Page,
		Limit:      q.Limit,
		TotalPages: totalPages,
	}, nil
}

// CustomerCatalog devuelve los productos disponibles agrupados por categoría
// (vista pública de la tienda).
func (uc *ProductStockUseCase) CustomerCatalog(ctx context.Context) ([]dto.CategoryGroup, error) {
	// Limit <= 0 en el filtro significa sin paginar.
	ps, _, err := uc.products.ListAvailable(repository.AvailableFilter{})
	if err != nil {
		return nil, err
	}
	groups := make([]dto.CategoryGroup, 0)
	index := make(map[string]int)
	for _, p := range ps {
		i, ok := index[p.Category]
		if !ok {
			i = len(groups)
			index[p.Category] = i
			groups = append(groups, dto.CategoryGroup{Category: p.Category})
		}
		groups[i].Products = append(groups[i].Products, toProductResponse(p))
	}
	return groups, nil
}

// Categories devuelve las categorías distintas de productos.
func (uc *ProductStockUseCase) Categories(ctx context.Context) ([]string, error) {
	return uc.products.Categories()
}

// Update actualiza un producto. Un CurrentStock mayor al actual es una corrida
// de producción: se deduce la receta por el delta, en la misma transacción.
// Un CurrentStock menor es corrección administrativa y no deduce. En ambos
// casos se escribe la entrada de historial con el tipo de cambio inferido.
func (uc *ProductStockUseCase) Update(ctx context.Context, id string, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if req.Recipe != nil {
		if err := validateRecipe(req.Recipe); err != nil {
			return nil, err
		}
	}
	var updated *entity.Product
	err := uc.tx.RunInventory(ctx, func(r TxRepos) error {
		p, err := r.Products.GetByIDForUpdate(id)
		if err != nil {
			return err
		}
		previousStock := p.CurrentStock

		if req.ProductName != nil {
			p.Name = *req.ProductName
		}
		if req.Description != nil {
			p.Description = *req.Description
		}
		if req.Category != nil {
			p.Category = *req.Category
		}
		if req.Size != nil {
			p.Size = *req.Size
		}
		if req.Unit != nil {
			p.Unit = *req.Unit
		}
		if req.Price != nil {
			p.Price = *req.Price
		}
		if req.SafetyStock != nil {
			if *req.SafetyStock < 0 {
				return fmt.Errorf("%w: safetyStock no puede ser negativo", domain.ErrInvalidInput)
			}
			p.SafetyStock = *req.SafetyStock
		}
		if req.ReorderLevel != nil {
			if *req.ReorderLevel < 0 {
				return fmt.Errorf("%w: reorderLevel no puede ser negativo", domain.ErrInvalidInput)
			}
			p.ReorderLevel = *req.ReorderLevel
		}
		if req.ImageURL != nil {
			p.ImageURL = *req.ImageURL
		}
		if req.ExpiryDate != nil {
			p.ExpiryDate = req.ExpiryDate
		}
		if req.Status != nil {
			if *req.Status != entity.ProductStatusActive && *req.Status != entity.ProductStatusInactive {
				return fmt.Errorf("%w: estado desconocido %q", domain.ErrInvalidInput, *req.Status)
			}
			p.Status = *req.Status
		}
		if req.Recipe != nil {
			p.Recipe = toRecipe(req.Recipe)
		}
		if req.CurrentStock != nil {
			if *req.CurrentStock < 0 {
				return fmt.Errorf("%w: currentStock no puede ser negativo", domain.ErrInvalidInput)
			}
			if delta := *req.CurrentStock - previousStock; delta > 0 {
				if err := deductRecipe(r.Materials, p.Recipe, delta); err != nil {
					return err
				}
			}
			p.CurrentStock = *req.CurrentStock
		}

		p.StockStatus = stock.DeriveUnitStatus(p.CurrentStock, p.ReorderLevel)
		if err := r.Products.Update(p); err != nil {
			return err
		}
		if err := recordChange(r.History, p, previousStock, ""); err != nil {
			return err
		}
		updated = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	resp := toProductResponse(updated)
	return &resp, nil
}

// Delete elimina un producto y deja la entrada Removed del historial en la
// misma transacción; la entrada conserva el ID humano y el nombre para que la
// auditoría sobreviva al borrado.
func (uc *ProductStockUseCase) Delete(ctx context.Context, id string) error {
	return uc.tx.RunInventory(ctx, func(r TxRepos) error {
		p, err := r.Products.GetByIDForUpdate(id)
		if err != nil {
			return err
		}
		previousStock := p.CurrentStock
		p.CurrentStock = 0
		p.StockStatus = stock.DeriveUnitStatus(0, p.ReorderLevel)
		if err := recordChange(r.History, p, previousStock, entity.ChangeTypeRemoved); err != nil {
			return err
		}
		return r.Products.Delete(id)
	})
}

// HistorySince devuelve el historial de inventario desde la fecha dada.
func (uc *ProductStockUseCase) HistorySince(ctx context.Context, since time.Time) ([]dto.HistoryEntryResponse, error) {
	entries, err := uc.history.ListSince(since)
	if err != nil {
		return nil, err
	}
	out := make([]dto.HistoryEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.HistoryEntryResponse{
			ID:            e.ID,
			ProductRef:    e.ProductRef,
			ProductID:     e.ProductID,
			ProductName:   e.ProductName,
			ChangeType:    e.ChangeType,
			ChangeAmount:  e.ChangeAmount,
			PreviousStock: e.PreviousStock,
			NewStock:      e.NewStock,
			SafetyStock:   e.SafetyStock,
			ReorderLevel:  e.ReorderLevel,
			StockStatus:   e.StockStatus,
			CreatedAt:     e.CreatedAt,
		})
	}
	return out, nil
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	recipe := make([]dto.RecipeLineDTO, 0, len(p.Recipe))
	for _, l := range p.Recipe {
		recipe = append(recipe, dto.RecipeLineDTO{
			Type:            l.Type,
			QtyPerUnitKg:    l.QtyPerUnitKg,
			WastePercentage: l.WastePercentage,
		})
	}
	return dto.ProductResponse{
		ID:             p.ID,
		ProductID:      p.ProductID,
		ProductName:    p.Name,
		Description:    p.Description,
		Category:       p.Category,
		Size:           p.Size,
		Unit:           p.Unit,
		Price:          p.Price,
		CurrentStock:   p.CurrentStock,
		SafetyStock:    p.SafetyStock,
		ReorderLevel:   p.ReorderLevel,
		AvailableStock: stock.Availability(p.CurrentStock, p.SafetyStock),
		StockStatus:    p.StockStatus,
		Status:         p.Status,
		ImageURL:       p.ImageURL,
		ExpiryDate:     p.ExpiryDate,
		Recipe:         recipe,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
