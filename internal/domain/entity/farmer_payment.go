package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// FarmerPayment es el registro de pago generado al entregar una orden.
// A lo sumo un pago por orden (verificación de existencia sobre RMOrderID
// antes de crear). PricePerKg se copia de la tarifa vigente del agricultor
// en el momento de la entrega, no se consulta después.
type FarmerPayment struct {
	ID             string // surrogate (UUID)
	PaymentID      string // humano: FP-0001
	FarmerID       string
	RMOrderID      string // referencia a la orden; única por pago
	PepperType     string
	DeliveredQtyKg decimal.Decimal
	PricePerKg     decimal.Decimal
	Amount         decimal.Decimal // DeliveredQtyKg * PricePerKg
	CreatedAt      time.Time
}
