package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// FarmLocationDTO ubicación de la finca.
type FarmLocationDTO struct {
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
	Address   string  `json:"address" validate:"required,max=500"`
}

// PepperRatesDTO valores por tipo de pimienta (capacidad o precio).
type PepperRatesDTO struct {
	Green decimal.Decimal `json:"green"`
	Black decimal.Decimal `json:"black"`
}

// CreateFarmerRequest registro de agricultor. El NIC es único
// (9 dígitos + V/X, o 12 dígitos).
type CreateFarmerRequest struct {
	Name             string          `json:"name" validate:"required,max=100"`
	NIC              string          `json:"nic" validate:"required"`
	Phone            string          `json:"phone" validate:"required,min=8,max=15"`
	Email            string          `json:"email" validate:"omitempty,email"`
	Address          string          `json:"address" validate:"required,max=500"`
	FarmLocation     FarmLocationDTO `json:"farm_location" validate:"required"`
	CapacityPerMonth PepperRatesDTO  `json:"pepper_capacitypermonth"`
	PricePerUnit     PepperRatesDTO  `json:"price_per_unit"`
	Status           string          `json:"status"`
}

// UpdateFarmerRequest actualización parcial de agricultor.
type UpdateFarmerRequest struct {
	Name             *string          `json:"name"`
	NIC              *string          `json:"nic"`
	Phone            *string          `json:"phone"`
	Email            *string          `json:"email"`
	Address          *string          `json:"address"`
	FarmLocation     *FarmLocationDTO `json:"farm_location"`
	CapacityPerMonth *PepperRatesDTO  `json:"pepper_capacitypermonth"`
	PricePerUnit     *PepperRatesDTO  `json:"price_per_unit"`
	Status           *string          `json:"status"`
}

// FarmerResponse representación pública de un agricultor.
type FarmerResponse struct {
	ID               string          `json:"id"`
	FarmerID         int64           `json:"farmerId"`
	Name             string          `json:"name"`
	NIC              string          `json:"nic"`
	Phone            string          `json:"phone"`
	Email            string          `json:"email,omitempty"`
	Address          string          `json:"address"`
	FarmLocation     FarmLocationDTO `json:"farm_location"`
	CapacityPerMonth PepperRatesDTO  `json:"pepper_capacitypermonth"`
	PricePerUnit     PepperRatesDTO  `json:"price_per_unit"`
	Status           string          `json:"status"`
	RegistrationDate time.Time       `json:"registrationdate"`
	LastSupplyDate   *time.Time      `json:"lastsupplydate,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

// FarmerStatsResponse métricas del módulo de agricultores.
type FarmerStatsResponse struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
}
