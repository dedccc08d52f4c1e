package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest alta de orden de materia prima a un agricultor.
type CreateOrderRequest struct {
	RawMaterialType string          `json:"rawMaterialType" validate:"required"`
	RequestedQtyKg  decimal.Decimal `json:"requestedQtyKg"`
	FarmerID        string          `json:"farmerId" validate:"required"`
}

// DeliverOrderRequest marca la entrega de una orden.
type DeliverOrderRequest struct {
	DeliveredQtyKg decimal.Decimal `json:"deliveredQtyKg"`
}

// OrderResponse representación pública de una orden.
type OrderResponse struct {
	RMOrderID       string          `json:"rmOrderId"`
	RawMaterialType string          `json:"rawMaterialType"`
	RequestedQtyKg  decimal.Decimal `json:"requestedQtyKg"`
	DeliveredQtyKg  decimal.Decimal `json:"deliveredQtyKg"`
	FarmerID        string          `json:"farmerId"`
	Status          string          `json:"status"`
	DeliveredAt     *time.Time      `json:"deliveredAt,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
	ID              string          `json:"id"`
}

// EligibleFarmersQuery filtros de la consulta de agricultores elegibles.
type EligibleFarmersQuery struct {
	MaterialType   string          `query:"materialType"`
	RequestedQtyKg decimal.Decimal `query:"requestedQtyKg"`
}

// EligibleFarmerResponse agricultor elegible para una orden.
type EligibleFarmerResponse struct {
	ID               string          `json:"id"`
	FarmerID         int64           `json:"farmerId"`
	Name             string          `json:"name"`
	FarmAddress      string          `json:"farmAddress"`
	CapacityPerMonth decimal.Decimal `json:"capacityPerMonthKg"`
	PricePerKg       decimal.Decimal `json:"pricePerKg"`
}

// PaymentResponse pago generado por una entrega.
type PaymentResponse struct {
	PaymentID      string          `json:"paymentId"`
	FarmerID       string          `json:"farmerId"`
	RMOrderID      string          `json:"rmOrderId"`
	PepperType     string          `json:"pepperType"`
	DeliveredQtyKg decimal.Decimal `json:"deliveredQuantityKg"`
	PricePerKg     decimal.Decimal `json:"pricePerKg"`
	Amount         decimal.Decimal `json:"amount"`
	CreatedAt      time.Time       `json:"createdAt"`
	ID             string          `json:"id"`
}
