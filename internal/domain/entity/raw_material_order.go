package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de una orden de materia prima.
// Pending -> Delivered; Delivered es terminal.
const (
	OrderStatusPending   = "Pending"
	OrderStatusDelivered = "Delivered"
)

// RawMaterialOrder es una orden de compra de pimienta a un agricultor.
// Se crea Pending con la capacidad ya verificada y transiciona exactamente
// una vez a Delivered (la entrega acredita el libro de materia prima y genera
// el pago al agricultor). Solo las órdenes Pending pueden eliminarse.
type RawMaterialOrder struct {
	ID              string // surrogate (UUID)
	RMOrderID       string // humano: RMO-0001
	RawMaterialType string
	RequestedQtyKg  decimal.Decimal // > 0
	DeliveredQtyKg  decimal.Decimal
	FarmerID        string // referencia (no ownership) al agricultor
	Status          string // Pending | Delivered
	DeliveredAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
