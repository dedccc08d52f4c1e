package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ceylonpepper/pepperworks-api/internal/domain/entity"
)

// FarmerFilter filtros del listado de agricultores. Search ya viene
// normalizado y aplica sobre nombre y dirección de la finca.
type FarmerFilter struct {
	Search string
	Status string // vacío o "all" = todos
}

// FarmerRepository define el puerto de persistencia para agricultores.
type FarmerRepository interface {
	Create(f *entity.Farmer) error
	GetByID(id string) (*entity.Farmer, error)
	GetByNIC(nic string) (*entity.Farmer, error)
	List(filter FarmerFilter) ([]*entity.Farmer, error)
	// ListEligible: agricultores Active cuya capacidad mensual del tipo dado
	// cubre minQty (o es > 0 si minQty es cero).
	ListEligible(pepperType string, minQty decimal.Decimal) ([]*entity.Farmer, error)
	Update(f *entity.Farmer) error
	Delete(id string) error
	// TouchLastSupply estampa la última fecha de suministro (al entregar).
	TouchLastSupply(id string, at time.Time) error
}
