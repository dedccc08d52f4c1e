package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un agricultor proveedor.
const (
	FarmerStatusActive   = "Active"
	FarmerStatusInactive = "Inactive"
)

// FarmLocation ubicación geográfica de la finca.
type FarmLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
}

// PepperRates par de valores por tipo de pimienta (capacidad mensual en kg
// o precio por kg, según el campo que lo use).
type PepperRates struct {
	Green decimal.Decimal `json:"green"`
	Black decimal.Decimal `json:"black"`
}

// For devuelve el valor correspondiente al tipo de pimienta.
func (p PepperRates) For(pepperType string) decimal.Decimal {
	if pepperType == PepperTypeGreen {
		return p.Green
	}
	return p.Black
}

// Farmer es un agricultor proveedor de pimienta. La capacidad mensual por tipo
// decide la elegibilidad para órdenes; el precio por kg se copia al pago en el
// momento de la entrega.
type Farmer struct {
	ID               string // surrogate (UUID)
	FarmerID         int64  // secuencial humano
	Name             string
	NIC              string // único
	Phone            string
	Email            string
	Address          string
	FarmLocation     FarmLocation
	CapacityPerMonth PepperRates // kg por mes, por tipo
	PricePerUnit     PepperRates // precio por kg, por tipo
	Status           string      // Active | Inactive
	RegistrationDate time.Time
	LastSupplyDate   *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
