package entity

import "time"

// Estados de cuenta de cliente.
const (
	CustomerStatusActive   = "Active"
	CustomerStatusInactive = "Inactive"
)

// Customer es un cliente de la tienda. Compra del catálogo de productos
// disponibles; su password también es hash bcrypt.
type Customer struct {
	ID              string // surrogate (UUID)
	CustomerID      int64  // secuencial humano
	Name            string
	Email           string // único
	PasswordHash    string
	Phone           string
	DeliveryAddress string
	Status          string // Active | Inactive
	TotalOrders     int
	LastOrderDate   *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
