package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecipeLineDTO línea de receta tal como viaja por la API.
type RecipeLineDTO struct {
	Type            string          `json:"type" validate:"required"`
	QtyPerUnitKg    decimal.Decimal `json:"qtyPerUnitKg"`
	WastePercentage decimal.Decimal `json:"wastePercentage"`
}

// CreateProductRequest alta de producto. CurrentStock > 0 dispara la
// deducción de receta sobre el libro de materia prima.
type CreateProductRequest struct {
	ProductName  string          `json:"productName" validate:"required"`
	Description  string          `json:"description"`
	Category     string          `json:"category" validate:"required"`
	Size         string          `json:"size"`
	Unit         string          `json:"unit" validate:"required"`
	Price        decimal.Decimal `json:"price"`
	CurrentStock int             `json:"currentStock" validate:"gte=0"`
	SafetyStock  int             `json:"safetyStock" validate:"gte=0"`
	ReorderLevel int             `json:"reorderLevel" validate:"gte=0"`
	ImageURL     string          `json:"imageUrl"`
	ExpiryDate   *time.Time      `json:"expiryDate"`
	Status       string          `json:"status"`
	Recipe       []RecipeLineDTO `json:"rawMaterialRecipe" validate:"required,min=1,dive"`
}

// UpdateProductRequest actualización parcial de producto. Un CurrentStock
// mayor al actual deduce materia prima por el delta; menor es corrección
// administrativa y no deduce.
type UpdateProductRequest struct {
	ProductName  *string          `json:"productName"`
	Description  *string          `json:"description"`
	Category     *string          `json:"category"`
	Size         *string          `json:"size"`
	Unit         *string          `json:"unit"`
	Price        *decimal.Decimal `json:"price"`
	CurrentStock *int             `json:"currentStock"`
	SafetyStock  *int             `json:"safetyStock"`
	ReorderLevel *int             `json:"reorderLevel"`
	ImageURL     *string          `json:"imageUrl"`
	ExpiryDate   *time.Time       `json:"expiryDate"`
	Status       *string          `json:"status"`
	Recipe       []RecipeLineDTO  `json:"rawMaterialRecipe"`
}

// ProductResponse representación pública de un producto. AvailableStock es
// derivado (no persistido): max(currentStock - safetyStock, 0).
type ProductResponse struct {
	ID             string          `json:"id"`
	ProductID      string          `json:"productId"`
	ProductName    string          `json:"productName"`
	Description    string          `json:"description,omitempty"`
	Category       string          `json:"category"`
	Size           string          `json:"size,omitempty"`
	Unit           string          `json:"unit"`
	Price          decimal.Decimal `json:"price"`
	CurrentStock   int             `json:"currentStock"`
	SafetyStock    int             `json:"safetyStock"`
	ReorderLevel   int             `json:"reorderLevel"`
	AvailableStock int             `json:"availableStock"`
	StockStatus    string          `json:"stockStatus"`
	Status         string          `json:"status"`
	ImageURL       string          `json:"imageUrl,omitempty"`
	ExpiryDate     *time.Time      `json:"expiryDate,omitempty"`
	Recipe         []RecipeLineDTO `json:"rawMaterialRecipe"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// AvailableQuery filtros del listado paginado de productos disponibles.
type AvailableQuery struct {
	Category string `query:"category"`
	Search   string `query:"search"`
	PageRequest
}

// AvailableProductsResponse página de productos disponibles para venta.
type AvailableProductsResponse struct {
	Products   []ProductResponse `json:"products"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"totalPages"`
}

// CategoryGroup grupo del catálogo de cliente.
type CategoryGroup struct {
	Category string            `json:"category"`
	Products []ProductResponse `json:"products"`
}
